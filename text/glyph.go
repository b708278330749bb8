package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Glyph codes outside printable ASCII. Printable ASCII characters are their
// own codes; the control range holds the extra symbols every font may draw.
const (
	// CodeUnknown selects the font's placeholder glyph.
	CodeUnknown byte = 0
	// CodeTab is never drawn.
	CodeTab byte = '\t'
	// CodeSpace is never drawn.
	CodeSpace byte = ' '

	CodeCheck    byte = 24 // ✓
	CodeCent     byte = 25 // ¢
	CodeYen      byte = 26 // ¥
	CodeCurrency byte = 27 // ¤
	CodePound    byte = 28 // £
	CodeDegree   byte = 29 // °
	CodeEuro     byte = 30 // €
	CodeEllipsis byte = 31 // …
)

var symbolCodes = map[rune]byte{
	'✓': CodeCheck,
	'✔': CodeCheck,
	'¢': CodeCent,
	'¥': CodeYen,
	'¤': CodeCurrency,
	'£': CodePound,
	'°': CodeDegree,
	'€': CodeEuro,
	'…': CodeEllipsis,
}

// codeRunes is the inverse of symbolCodes, used to find symbols in
// outline-derived fonts.
var codeRunes = map[byte]rune{
	CodeCheck:    '✓',
	CodeCent:     '¢',
	CodeYen:      '¥',
	CodeCurrency: '¤',
	CodePound:    '£',
	CodeDegree:   '°',
	CodeEuro:     '€',
	CodeEllipsis: '…',
}

// GlyphCode maps a rune to its glyph code. Printable ASCII maps to itself,
// tab stays a tab, the supported symbols map to their reserved codes and
// everything else becomes CodeUnknown.
func GlyphCode(r rune) byte {
	switch {
	case r == '\t':
		return CodeTab
	case r >= ' ' && r <= '~':
		return byte(r)
	}
	if code, ok := symbolCodes[r]; ok {
		return code
	}
	return CodeUnknown
}

// IsBlank reports whether code is never drawn.
func IsBlank(code byte) bool {
	return code == CodeSpace || code == CodeTab
}

// Normalize composes s to NFC and folds full-width and half-width forms to
// their canonical widths.
func Normalize(s string) string {
	return width.Fold.String(norm.NFC.String(s))
}

// Codes converts one display line into glyph codes, one per grapheme
// cluster. Clusters are identified by their first rune.
func Codes(line string) []byte {
	codes := make([]byte, 0, len(line))
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		r, _ := utf8.DecodeRuneInString(g.Str())
		codes = append(codes, GlyphCode(r))
	}
	return codes
}

// Lines normalizes s, wraps it with w and converts every line to glyph
// codes.
func Lines(s string, w WrappingStrategy) [][]byte {
	wrapped := w.Wrap(Normalize(s))
	out := make([][]byte, len(wrapped))
	for i, line := range wrapped {
		out[i] = Codes(line)
	}
	return out
}
