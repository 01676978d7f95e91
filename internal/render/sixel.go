package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/mattn/go-sixel"
	xdraw "golang.org/x/image/draw"
)

// SixelEncoder selects the sixel implementation.
type SixelEncoder int

const (
	// SixelRasterm quantises to the Plan9 palette with Floyd-Steinberg
	// dithering and encodes with rasterm.
	SixelRasterm SixelEncoder = iota
	// SixelGo uses go-sixel's own palette reduction.
	SixelGo
)

// Scale resizes img to fit within maxW×maxH, keeping its aspect ratio. A
// zero bound is ignored; images are never enlarged.
func Scale(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	scale := 1.0
	if maxW > 0 && w > maxW {
		scale = float64(maxW) / float64(w)
	}
	if maxH > 0 && float64(h)*scale > float64(maxH) {
		scale = float64(maxH) / float64(h)
	}
	if scale == 1.0 {
		return img
	}
	nw, nh := int(float64(w)*scale), int(float64(h)*scale)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Over, nil)
	return dst
}

// WriteSixel writes img as a sixel escape sequence.
func WriteSixel(w io.Writer, img image.Image, enc SixelEncoder) error {
	switch enc {
	case SixelGo:
		e := sixel.NewEncoder(w)
		e.Dither = false
		if err := e.Encode(img); err != nil {
			return fmt.Errorf("failed to encode sixel: %w", err)
		}
		return nil
	default:
		b := img.Bounds()
		paletted := image.NewPaletted(b, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, b, img, b.Min)
		if err := rasterm.SixelWriteImage(w, paletted); err != nil {
			return fmt.Errorf("failed to encode sixel: %w", err)
		}
		return nil
	}
}
