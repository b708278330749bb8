package text

import (
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// PixelFont selects a built-in bitmap font. The zero value is Standard6x7.
type PixelFont uint8

const (
	// Standard6x7 is the default 6x7 font with lowercase letters.
	Standard6x7 PixelFont = iota
	// Limited3x5 is a tiny 3x5 font, uppercase only.
	Limited3x5
	// Small4x5 is a 4x5 font, uppercase only.
	Small4x5
	// Basic7x13 is derived from basicfont.Face7x13.
	Basic7x13
	// Inconsolata8x16 is derived from inconsolata.Regular8x16.
	Inconsolata8x16

	fontCount
)

var fontNames = [...]string{
	Standard6x7:     "Standard6x7",
	Limited3x5:      "Limited3x5",
	Small4x5:        "Small4x5",
	Basic7x13:       "Basic7x13",
	Inconsolata8x16: "Inconsolata8x16",
}

// String returns the string representation of the font.
func (f PixelFont) String() string {
	if f < fontCount {
		return fontNames[f]
	}
	return unknownStr
}

// Fonts returns every built-in font.
func Fonts() []PixelFont {
	out := make([]PixelFont, 0, fontCount)
	for f := PixelFont(0); f < fontCount; f++ {
		out = append(out, f)
	}
	return out
}

// ParseFont parses a font name, ignoring case.
func ParseFont(s string) (PixelFont, error) {
	for i, name := range fontNames {
		if strings.EqualFold(name, s) {
			return PixelFont(i), nil
		}
	}
	return Standard6x7, fmt.Errorf("%w: %q", ErrUnknownFont, s)
}

// Valid reports whether f is a built-in font.
func (f PixelFont) Valid() bool { return f < fontCount }

// Size returns the glyph cell size in pixels.
func (f PixelFont) Size() (width, height int) {
	t := f.table()
	return t.width, t.height
}

// Spacing returns the default gap between glyphs and lines in pixels.
func (f PixelFont) Spacing() int {
	return f.table().spacing
}

// CharWidth returns the default horizontal advance (glyph width + spacing).
func (f PixelFont) CharWidth() int {
	t := f.table()
	return t.width + t.spacing
}

// LineHeight returns the default vertical advance (glyph height + spacing).
func (f PixelFont) LineHeight() int {
	t := f.table()
	return t.height + t.spacing
}

// PxToCols converts a pixel width to whole columns.
func (f PixelFont) PxToCols(px int) int {
	return max(px, 0) / f.CharWidth()
}

// MaxCharacters returns how many columns and rows of glyphs fit in a
// width x height pixel area.
func (f PixelFont) MaxCharacters(width, height int) (cols, rows int) {
	t := f.table()
	if width < t.width || height < t.height {
		return 0, 0
	}
	return (width + t.spacing) / f.CharWidth(), (height + t.spacing) / f.LineHeight()
}

// Glyph returns the bitmap for code, row-major, width*height long. Lowercase
// letters fall back to uppercase in fonts without them; unsupported codes
// return the placeholder glyph. The returned slice must not be modified.
func (f PixelFont) Glyph(code byte) []bool {
	t := f.table()
	if px, ok := t.glyphs[code]; ok {
		return px
	}
	if code >= 'a' && code <= 'z' {
		if px, ok := t.glyphs[code-'a'+'A']; ok {
			return px
		}
	}
	return t.unknown
}

// HasGlyph reports whether the font has its own bitmap for code.
func (f PixelFont) HasGlyph(code byte) bool {
	_, ok := f.table().glyphs[code]
	return ok
}

func (f PixelFont) table() *glyphTable {
	if f < fontCount {
		return fontTables[f]
	}
	return fontTables[Standard6x7]
}

// glyphTable is the read-only bitmap data of one font.
type glyphTable struct {
	width, height, spacing int
	glyphs                 map[byte][]bool
	unknown                []bool
}

var fontTables = [fontCount]*glyphTable{
	Standard6x7:     artTable(6, 7, 1, glyphs6x7, glyphs6x7Unknown),
	Limited3x5:      artTable(3, 5, 1, glyphs3x5, glyphs3x5Unknown),
	Small4x5:        artTable(4, 5, 1, glyphs4x5, glyphs4x5Unknown),
	Basic7x13:       faceTable(basicfont.Face7x13),
	Inconsolata8x16: faceTable(inconsolata.Regular8x16),
}

// artTable parses string-art glyphs where '#' marks a set pixel.
func artTable(w, h, spacing int, art map[byte][]string, unknown []string) *glyphTable {
	t := &glyphTable{
		width:   w,
		height:  h,
		spacing: spacing,
		glyphs:  make(map[byte][]bool, len(art)),
		unknown: parseArt(w, h, unknown),
	}
	for code, rows := range art {
		t.glyphs[code] = parseArt(w, h, rows)
	}
	return t
}

func parseArt(w, h int, rows []string) []bool {
	px := make([]bool, w*h)
	for y, row := range rows[:min(len(rows), h)] {
		for x := 0; x < len(row) && x < w; x++ {
			px[y*w+x] = row[x] == '#'
		}
	}
	return px
}

// faceTable rasterizes the printable ASCII range and the symbol codes of a
// fixed-advance face into a glyph table. The cell is one advance wide and
// one line high, so the face's own side bearing acts as spacing.
func faceTable(face *basicfont.Face) *glyphTable {
	t := &glyphTable{
		width:  face.Advance,
		height: face.Ascent + face.Descent,
		glyphs: make(map[byte][]bool),
	}
	dot := fixed.P(0, face.Ascent)

	for r := rune(' ' + 1); r <= '~'; r++ {
		if px, ok := faceGlyph(face, dot, r, t.width, t.height); ok {
			t.glyphs[byte(r)] = px
		}
	}
	for code, r := range codeRunes {
		if px, ok := faceGlyph(face, dot, r, t.width, t.height); ok {
			t.glyphs[code] = px
		}
	}
	if px, ok := faceGlyph(face, dot, '�', t.width, t.height); ok {
		t.unknown = px
	} else {
		t.unknown = boxGlyph(t.width, t.height)
	}
	return t
}

func faceGlyph(face font.Face, dot fixed.Point26_6, r rune, w, h int) ([]bool, bool) {
	dr, mask, maskp, _, ok := face.Glyph(dot, r)
	if !ok || mask == nil {
		return nil, false
	}
	px := make([]bool, w*h)
	cell := image.Rect(0, 0, w, h)
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			if !(image.Point{X: x, Y: y}).In(cell) {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a >= 0x8000 {
				px[y*w+x] = true
			}
		}
	}
	return px, true
}

func boxGlyph(w, h int) []bool {
	px := make([]bool, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			px[y*w+x] = y == 1 || y == h-2 || x == 1 || x == w-2
		}
	}
	return px
}
