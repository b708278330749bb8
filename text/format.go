package text

import "github.com/gogpu/pixbuf/geom"

// Format controls how text is wrapped and laid out. The zero value uses
// Standard6x7, no wrapping, the font's default advances and LeftTop.
type Format struct {
	Font        PixelFont
	Wrapping    WrappingStrategy
	Positioning Positioning

	// LineHeight and CharWidth override the font's advances when non-zero.
	// Negative values lay text out upwards or leftwards.
	LineHeight int
	CharWidth  int

	// Adjust is added once per column, so glyph n on a line is shifted by
	// n*Adjust. It slants or spreads text.
	Adjust geom.Coord
}

// NewFormat returns a format for font with the given wrapping.
func NewFormat(font PixelFont, wrapping WrappingStrategy) Format {
	return Format{Font: font, Wrapping: wrapping}
}

// WithFont returns a copy of f using font.
func (f Format) WithFont(font PixelFont) Format {
	f.Font = font
	return f
}

// WithWrapping returns a copy of f using w.
func (f Format) WithWrapping(w WrappingStrategy) Format {
	f.Wrapping = w
	return f
}

// WithPositioning returns a copy of f anchored by p.
func (f Format) WithPositioning(p Positioning) Format {
	f.Positioning = p
	return f
}

// WithSpacing returns a copy of f with explicit advances.
func (f Format) WithSpacing(lineHeight, charWidth int) Format {
	f.LineHeight = lineHeight
	f.CharWidth = charWidth
	return f
}

// LineStep returns the vertical advance between lines.
func (f Format) LineStep() int {
	if f.LineHeight != 0 {
		return f.LineHeight
	}
	return f.Font.LineHeight()
}

// CharStep returns the horizontal advance between glyphs.
func (f Format) CharStep() int {
	if f.CharWidth != 0 {
		return f.CharWidth
	}
	return f.Font.CharWidth()
}
