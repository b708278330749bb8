package pixbuf

import (
	"fmt"

	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/text"
)

// Text is a block of wrapped text ready to draw. Content is wrapped and
// mapped to glyph codes once, when the Text is created.
type Text struct {
	content string
	lines   [][]byte
	pos     text.Pos
	format  text.Format
	color   Color
}

// NewText wraps content with format.Wrapping and places it at pos.
func NewText(content string, pos text.Pos, format text.Format, c Color) *Text {
	return &Text{
		content: content,
		lines:   text.Lines(content, format.Wrapping),
		pos:     pos,
		format:  format,
		color:   c,
	}
}

// Content returns the original string.
func (t *Text) Content() string { return t.content }

// Lines returns the glyph codes of every wrapped line. The slices must not
// be modified.
func (t *Text) Lines() [][]byte { return t.lines }

// Pos returns the position.
func (t *Text) Pos() text.Pos { return t.pos }

// Format returns the format.
func (t *Text) Format() text.Format { return t.format }

// Color returns the color.
func (t *Text) Color() Color { return t.color }

// WithColor returns the same text in c.
func (t *Text) WithColor(c Color) *Text {
	out := *t
	out.color = c
	return &out
}

// WithPos returns the same text at pos.
func (t *Text) WithPos(pos text.Pos) *Text {
	out := *t
	out.pos = pos
	return &out
}

// WithFormat returns the text rewrapped and laid out with format.
func (t *Text) WithFormat(format text.Format) *Text {
	return NewText(t.content, t.pos, format, t.color)
}

// Bounds returns the area the text block occupies once anchored.
func (t *Text) Bounds() geom.Rect {
	w, h := text.Measure(t.lines, t.format)
	origin := t.format.Positioning.Calc(t.pos.Coord(t.format.Font), w, h)
	return geom.RectWH(origin.X, origin.Y, w, h)
}

// Render implements Renderable.
func (t *Text) Render(s *Surface) {
	s.drawLines(t.lines, t.pos, t.format, t.color)
}

// DrawText wraps and draws content in one call.
func (s *Surface) DrawText(content string, pos text.Pos, format text.Format, c Color) {
	s.drawLines(text.Lines(content, format.Wrapping), pos, format, c)
}

func (s *Surface) drawLines(lines [][]byte, pos text.Pos, format text.Format, c Color) {
	for _, g := range text.Layout(lines, pos, format) {
		s.DrawGlyph(g.At, g.Code, format.Font, c)
	}
}

// DrawLetter draws a single character with its top-left corner at xy.
func (s *Surface) DrawLetter(xy geom.Coord, r rune, font text.PixelFont, c Color) {
	s.DrawGlyph(xy, text.GlyphCode(r), font, c)
}

// DrawGlyph draws glyph code with its top-left corner at xy. A custom glyph
// set with SetCustomGlyph takes precedence over the font's own bitmap.
// Space and tab draw nothing.
func (s *Surface) DrawGlyph(xy geom.Coord, code byte, font text.PixelFont, c Color) {
	if text.IsBlank(code) {
		return
	}
	w, h := font.Size()
	px, ok := s.glyphs[glyphKey{code: code, font: font}]
	if !ok {
		px = font.Glyph(code)
	}
	for y := range h {
		for x := range w {
			if px[y*w+x] {
				s.SetPixel(xy.X+x, xy.Y+y, c)
			}
		}
	}
}

// SetCustomGlyph replaces the bitmap of code in font for this surface.
// bitmap is row-major and must match the font's cell size.
func (s *Surface) SetCustomGlyph(code byte, font text.PixelFont, bitmap []bool) error {
	if !font.Valid() {
		return fmt.Errorf("%w: %d", text.ErrUnknownFont, font)
	}
	w, h := font.Size()
	if len(bitmap) != w*h {
		return &GlyphSizeError{Code: code, Font: font, Expected: w * h, Actual: len(bitmap)}
	}
	if s.glyphs == nil {
		s.glyphs = make(map[glyphKey][]bool)
	}
	s.glyphs[glyphKey{code: code, font: font}] = append([]bool(nil), bitmap...)
	return nil
}

// RemoveCustomGlyph restores the font's own bitmap for code.
func (s *Surface) RemoveCustomGlyph(code byte, font text.PixelFont) {
	delete(s.glyphs, glyphKey{code: code, font: font})
}
