// Package icon draws the sample icon used by cmd/mkicon: a teal disc with a
// white diamond, on a transparent background. It exists so the converter can
// be exercised without hunting for a real .ico file.
package icon

import (
	"image"
	"image/color"
)

var (
	disc    = color.NRGBA{R: 0x1b, G: 0x9a, B: 0xaa, A: 0xff}
	diamond = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Draw renders the icon at the given square size.
func Draw(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))

	c := float64(size-1) / 2
	r := float64(size) * 0.46
	d := float64(size) * 0.22

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c, float64(y)-c
			switch {
			case abs(dx)+abs(dy) <= d:
				img.SetNRGBA(x, y, diamond)
			case dx*dx+dy*dy <= r*r:
				img.SetNRGBA(x, y, disc)
			}
		}
	}
	return img
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
