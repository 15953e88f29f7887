package pqcal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/nfnt/resize"
)

// PreviewOptions controls curve plot rendering.
type PreviewOptions struct {
	// Size is the width and height of the square plot in pixels.
	Size int
}

var (
	previewBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	previewIdentity   = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	previewCurve      = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
)

// RenderPreview plots the corrected curve against the identity diagonal.
// The plot maps input left to right and output bottom to top.
func RenderPreview(lut LUT, opts ...func(o *PreviewOptions)) (*image.RGBA, error) {
	if len(lut) < 2 {
		return nil, errors.New("lut too small to plot")
	}
	o := PreviewOptions{Size: defaultPreviewSize}
	for _, fn := range opts {
		fn(&o)
	}
	if o.Size < minPreviewSize {
		return nil, fmt.Errorf("preview size must be at least %d, got %d", minPreviewSize, o.Size)
	}

	img := image.NewRGBA(image.Rect(0, 0, o.Size, o.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(previewBackground), image.Point{}, draw.Src)

	xs := make([]float64, len(lut))
	ys := make([]float64, len(lut))
	for i, e := range lut {
		xs[i] = e.Input
		ys[i] = e.Output
	}
	curve := newCurve(xs, ys)

	prevIdent, prevCurve := -1, -1
	for x := 0; x < o.Size; x++ {
		u := float64(x) / float64(o.Size-1)

		yi := plotY(u, o.Size)
		drawRun(img, x, prevIdent, yi, previewIdentity)
		prevIdent = yi

		yc := plotY(curve.At(u), o.Size)
		drawRun(img, x, prevCurve, yc, previewCurve)
		prevCurve = yc
	}
	return img, nil
}

// EncodePreviewPNG renders the plot and PNG-encodes it to w.
func EncodePreviewPNG(w io.Writer, lut LUT, opts ...func(o *PreviewOptions)) error {
	img, err := RenderPreview(lut, opts...)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Thumbnail downscales a rendered plot to the given width, preserving the
// aspect ratio.
func Thumbnail(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Lanczos3)
}

// plotY maps a normalized value to a pixel row, bottom-up.
func plotY(v float64, size int) int {
	y := (size - 1) - int(math.Round(clamp(v, 0, 1)*float64(size-1)))
	if y < 0 {
		y = 0
	}
	if y > size-1 {
		y = size - 1
	}
	return y
}

// drawRun fills column x from the previous column's row to y so the plotted
// line stays connected across steep segments.
func drawRun(img *image.RGBA, x, prev, y int, col color.Color) {
	lo, hi := y, y
	if prev >= 0 {
		if prev < lo {
			lo = prev
		}
		if prev > hi {
			hi = prev
		}
	}
	for yy := lo; yy <= hi; yy++ {
		img.Set(x, yy, col)
	}
}
