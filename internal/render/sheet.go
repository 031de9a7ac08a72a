// Package render draws a selector's palette as a PNG swatch sheet, each
// swatch labelled with its hex value in the selector's contrast colour.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/homecontrol/internal/colour"
)

// SheetOptions defaults and limits.
const (
	DefaultColumns = 8
	DefaultCell    = 64
	MinCell        = 16
	MaxCell        = 512

	// MaxPixels bounds the sheet area.
	MaxPixels = 32 << 20

	borderWidth = 3
)

// SheetOptions controls the swatch sheet layout.
type SheetOptions struct {
	Columns int
	Cell    int
	Labels  bool
}

func (o SheetOptions) withDefaults() SheetOptions {
	if o.Columns <= 0 {
		o.Columns = DefaultColumns
	}
	if o.Cell <= 0 {
		o.Cell = DefaultCell
	}
	return o
}

// Sheet renders every option of sel as a square swatch, row by row. The
// selected option gets a border in its foreground colour.
func Sheet(sel *colour.Selector, opts SheetOptions) (*image.RGBA, error) {
	opts = opts.withDefaults()
	if opts.Cell < MinCell || opts.Cell > MaxCell {
		return nil, fmt.Errorf("cell size %d is outside %d-%d", opts.Cell, MinCell, MaxCell)
	}

	n := sel.Palette().Len()
	if n == 0 {
		return nil, fmt.Errorf("palette is empty")
	}

	cols := min(opts.Columns, n)
	rows := (n + cols - 1) / cols
	if cols*rows*opts.Cell*opts.Cell > MaxPixels {
		return nil, fmt.Errorf("sheet of %dx%d swatches at %dpx exceeds %d pixels", cols, rows, opts.Cell, MaxPixels)
	}
	img := image.NewRGBA(image.Rect(0, 0, cols*opts.Cell, rows*opts.Cell))

	i := 0
	for opt := range sel.Options() {
		x := (i % cols) * opts.Cell
		y := (i / cols) * opts.Cell
		cell := image.Rect(x, y, x+opts.Cell, y+opts.Cell)

		draw.Draw(img, cell, image.NewUniform(toColor(opt.Colour)), image.Point{}, draw.Src)
		if opt.Selected {
			drawBorder(img, cell, toColor(opt.Foreground))
		}
		if opts.Labels {
			drawLabel(img, cell, opt.Colour.Hex(), toColor(opt.Foreground))
		}
		i++
	}
	return img, nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func toColor(c colour.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func drawBorder(img draw.Image, r image.Rectangle, c color.Color) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+borderWidth),
		image.Rect(r.Min.X, r.Max.Y-borderWidth, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+borderWidth, r.Max.Y),
		image.Rect(r.Max.X-borderWidth, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e, src, image.Point{}, draw.Src)
	}
}

// drawLabel centres text in r. Labels wider than the cell are skipped.
func drawLabel(img draw.Image, r image.Rectangle, text string, c color.Color) {
	face := basicfont.Face7x13
	width := font.MeasureString(face, text).Ceil()
	if width > r.Dx()-2*borderWidth {
		return
	}

	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	x := r.Min.X + (r.Dx()-width)/2
	y := r.Min.Y + (r.Dy()-height)/2 + metrics.Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
