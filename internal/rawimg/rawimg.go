// Package rawimg decodes an icon or image file and flattens it into raw
// RGBA8 bytes: four channels per pixel, 8 bits each, non-premultiplied,
// rows top to bottom, pixels left to right.
package rawimg

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeError reports a failure to open or decode an input image.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Path, e.Err) }

func (e *DecodeError) Unwrap() error { return e.Err }

// Raw holds a decoded image flattened to RGBA8 bytes.
// Pix is exactly Width*Height*4 bytes in scan order.
type Raw struct {
	Pix    []byte
	Width  int
	Height int
	Format string // "ico", "png", "jpeg", ...
}

// Convert decodes the image at path and flattens it. Any open or decode
// failure comes back as a *DecodeError wrapping the cause; no output is
// produced on failure.
func Convert(path string) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := decodeFile(f, path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return FromImage(img, format), nil
}

// decodeFile picks the decoder by extension. An .ico goes straight to the
// ICO decoder: image.Decode consumes leading bytes for format sniffing and
// misidentifies some ICO files, notably ones carrying cursor data.
func decodeFile(f *os.File, path string) (image.Image, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".ico") {
		img, err := ico.Decode(f)
		return img, "ico", err
	}
	return image.Decode(f)
}

// FromImage flattens img into RGBA8 scan order. A packed *image.NRGBA is
// copied as-is; anything else is redrawn into one, which fills fully opaque
// alpha for sources that have no alpha channel.
func FromImage(img image.Image, format string) *Raw {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if n, ok := img.(*image.NRGBA); ok && b.Min == image.Pt(0, 0) &&
		n.Stride == 4*w && len(n.Pix) == 4*w*h {
		pix := make([]byte, len(n.Pix))
		copy(pix, n.Pix)
		return &Raw{Pix: pix, Width: w, Height: h, Format: format}
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Raw{Pix: dst.Pix, Width: w, Height: h, Format: format}
}

// Image reconstructs the buffer as an *image.NRGBA sharing the pixel data.
func (r *Raw) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.Pix,
		Stride: 4 * r.Width,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}

// Snippet returns the first n bytes of the buffer as hex text for
// diagnostics, with a trailing ellipsis when the buffer is longer.
func (r *Raw) Snippet(n int) string {
	if n > len(r.Pix) {
		n = len(r.Pix)
	}
	if n == 0 {
		return "(empty)"
	}
	s := fmt.Sprintf("% x", r.Pix[:n])
	if n < len(r.Pix) {
		s += " ..."
	}
	return s
}
