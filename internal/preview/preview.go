// Package preview renders a decoded image as truecolor background cells in
// the terminal, scaled down to fit the current window.
package preview

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/term"
)

const (
	defaultTermW = 80
	defaultTermH = 24
)

// Fit returns the pixel grid size for an image scaled into a terminal of
// termW×termH character cells. Each pixel is printed as two characters, so
// a row of pixels costs two columns each and one line.
func Fit(imgW, imgH, termW, termH int) (w, h int) {
	if imgW <= 0 || imgH <= 0 {
		return 0, 0
	}

	h = termH - 1 // leave the prompt line
	if h < 1 {
		h = 1
	}
	w = imgW * h / imgH
	if maxW := termW / 2; w > maxW {
		h = h * maxW / w
		w = maxW
	}
	if w > imgW { // never upscale
		w, h = imgW, imgH
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Render scales img to fit a termW×termH terminal and writes truecolor
// cells to w, one "  " cell per pixel with the pixel color as background.
func Render(w io.Writer, img image.Image, termW, termH int) {
	bounds := img.Bounds()
	cellsW, cellsH := Fit(bounds.Dx(), bounds.Dy(), termW, termH)
	if cellsW == 0 || cellsH == 0 {
		return
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, cellsW, cellsH))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, draw.Src, nil)

	for y := 0; y < cellsH; y++ {
		for x := 0; x < cellsW; x++ {
			c := scaled.NRGBAAt(x, y)
			fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm  ", c.R, c.G, c.B)
		}
		fmt.Fprint(w, "\x1b[0m\n")
	}
}

// Show renders img to stdout sized to the current terminal. When stdout is
// not a terminal the preview is skipped; when the size can't be determined
// an 80×24 window is assumed.
func Show(img image.Image) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	termW, termH, err := term.GetSize(fd)
	if err != nil {
		termW, termH = defaultTermW, defaultTermH
	}
	Render(os.Stdout, img, termW, termH)
}
