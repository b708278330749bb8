// Package termview previews images in a terminal. Every character cell is
// an upper half block whose foreground is one pixel and whose background is
// the pixel below it, so a cell shows two stacked pixels.
package termview

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/pixbuf"
)

const upperHalf = "▀"

// Options controls a preview.
type Options struct {
	// MaxCols limits the preview width in cells. Wider images are sampled
	// with a whole-number step in both directions. Zero means no limit.
	MaxCols int

	// Background is shown under translucent pixels and below the last row
	// of images with an odd sampled height.
	Background pixbuf.Color

	// Renderer styles the cells. Nil uses lipgloss' default renderer.
	Renderer *lipgloss.Renderer
}

// Step returns the sampling step used for an image width pixels wide.
func (o Options) Step(width int) int {
	if o.MaxCols <= 0 || width <= o.MaxCols {
		return 1
	}
	return (width + o.MaxCols - 1) / o.MaxCols
}

// Size returns the preview size in cells.
func Size(img image.Image, opts Options) (cols, rows int) {
	b := img.Bounds()
	step := opts.Step(b.Dx())
	sampled := (b.Dy() + step - 1) / step
	return (b.Dx() + step - 1) / step, (sampled + 1) / 2
}

type cellKey struct{ top, bottom pixbuf.Color }

// Render draws img as rows of half-block cells separated by newlines.
func Render(img image.Image, opts Options) string {
	b := img.Bounds()
	step := opts.Step(b.Dx())
	cols, rows := Size(img, opts)
	newStyle := lipgloss.NewStyle
	if opts.Renderer != nil {
		newStyle = opts.Renderer.NewStyle
	}

	bg := opts.Background
	sample := func(x, y int) pixbuf.Color {
		if y >= b.Max.Y {
			return bg
		}
		return bg.Blend(pixbuf.FromColor(img.At(x, y)))
	}

	cells := make(map[cellKey]string)
	var sb strings.Builder
	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		y := b.Min.Y + row*2*step
		for col := range cols {
			x := b.Min.X + col*step
			key := cellKey{top: sample(x, y), bottom: sample(x, y+step)}
			cell, ok := cells[key]
			if !ok {
				cell = newStyle().
					Foreground(lipgloss.Color(hexRGB(key.top))).
					Background(lipgloss.Color(hexRGB(key.bottom))).
					Render(upperHalf)
				cells[key] = cell
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

func hexRGB(c pixbuf.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
