package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// WrapKind selects a wrapping algorithm.
type WrapKind uint8

const (
	// WrapNone keeps lines verbatim; text may overflow.
	WrapNone WrapKind = iota

	// WrapAtCol hard splits every Col columns.
	WrapAtCol

	// WrapSpaceBeforeCol splits at the last whitespace before Col, falling
	// back to a hard split when the line has none. Lines are trimmed.
	WrapSpaceBeforeCol

	// WrapAtColWithHyphen is WrapAtCol with a hyphen added when a split
	// lands inside a word.
	WrapAtColWithHyphen

	// WrapCutoff truncates each line to Col columns.
	WrapCutoff

	// WrapEllipsis truncates like WrapCutoff and appends an ellipsis.
	WrapEllipsis
)

var wrapNames = [...]string{
	WrapNone:            "None",
	WrapAtCol:           "AtCol",
	WrapSpaceBeforeCol:  "SpaceBeforeCol",
	WrapAtColWithHyphen: "AtColWithHyphen",
	WrapCutoff:          "Cutoff",
	WrapEllipsis:        "Ellipsis",
}

// String returns the string representation of the wrap kind.
func (k WrapKind) String() string {
	if int(k) < len(wrapNames) {
		return wrapNames[k]
	}
	return unknownStr
}

// ParseWrapKind parses a wrap kind name, ignoring case.
func ParseWrapKind(s string) (WrapKind, error) {
	for i, name := range wrapNames {
		if strings.EqualFold(name, s) {
			return WrapKind(i), nil
		}
	}
	return WrapNone, fmt.Errorf("%w: %q", ErrUnknownWrap, s)
}

// WrappingStrategy is a policy for splitting text into display lines.
// Columns are counted in grapheme clusters. The zero value does not wrap.
type WrappingStrategy struct {
	Kind WrapKind
	Col  int
}

// NoWrap returns a strategy that only splits on newlines.
func NoWrap() WrappingStrategy { return WrappingStrategy{} }

// AtCol returns a strategy that hard splits every col columns.
func AtCol(col int) WrappingStrategy { return WrappingStrategy{Kind: WrapAtCol, Col: col} }

// SpaceBeforeCol returns a strategy that splits at whitespace before col.
func SpaceBeforeCol(col int) WrappingStrategy {
	return WrappingStrategy{Kind: WrapSpaceBeforeCol, Col: col}
}

// AtColWithHyphen returns a strategy that hard splits every col columns,
// hyphenating split words.
func AtColWithHyphen(col int) WrappingStrategy {
	return WrappingStrategy{Kind: WrapAtColWithHyphen, Col: col}
}

// Cutoff returns a strategy that truncates lines to col columns.
func Cutoff(col int) WrappingStrategy { return WrappingStrategy{Kind: WrapCutoff, Col: col} }

// Ellipsis returns a strategy that truncates lines to col columns and marks
// the cut with "…".
func Ellipsis(col int) WrappingStrategy { return WrappingStrategy{Kind: WrapEllipsis, Col: col} }

// String returns the string representation of the strategy.
func (w WrappingStrategy) String() string {
	if w.Kind == WrapNone {
		return w.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", w.Kind, w.Col)
}

// Wrap splits s into display lines. Every input line (separated by '\n') is
// wrapped on its own; lines are never merged.
func (w WrappingStrategy) Wrap(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		out = append(out, w.wrapLine(graphemes(line))...)
	}
	return out
}

func (w WrappingStrategy) wrapLine(line []string) []string {
	col := w.Col
	switch w.Kind {
	case WrapAtCol:
		if col <= 0 {
			break
		}
		var out []string
		for len(line) > col {
			out = append(out, strings.Join(line[:col], ""))
			line = line[col:]
		}
		return append(out, strings.Join(line, ""))

	case WrapSpaceBeforeCol:
		if col <= 0 {
			break
		}
		return spaceBeforeCol(line, col)

	case WrapAtColWithHyphen:
		if col <= 1 {
			return AtCol(col).wrapLine(line)
		}
		var out []string
		for len(line) > col {
			if isLetter(line[col-1]) && isLetter(line[col]) {
				out = append(out, strings.Join(line[:col-1], "")+"-")
				line = line[col-1:]
				continue
			}
			out = append(out, strings.Join(line[:col], ""))
			line = line[col:]
		}
		return append(out, strings.Join(line, ""))

	case WrapCutoff:
		return []string{strings.Join(line[:min(len(line), max(col, 0))], "")}

	case WrapEllipsis:
		if len(line) >= col {
			return []string{strings.Join(line[:max(col, 0)], "") + "…"}
		}
	}
	return []string{strings.Join(line, "")}
}

// spaceBeforeCol breaks line at the last whitespace inside the first col
// columns. A chunk that ends in, or is followed by, whitespace is taken
// whole; a chunk without usable whitespace is hard split at col.
func spaceBeforeCol(line []string, col int) []string {
	var out []string
	for len(line) > col {
		cut := col
		if !isSpace(line[col-1]) && !isSpace(line[col]) {
			for i := col - 1; i > 0; i-- {
				if isSpace(line[i]) {
					cut = i
					break
				}
			}
		}
		out = append(out, strings.Join(line[:cut], ""))
		line = line[cut:]
	}
	out = append(out, strings.Join(line, ""))
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

// graphemes splits s into user-perceived characters.
func graphemes(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Columns returns the number of grapheme clusters in s.
func Columns(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

func isSpace(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsSpace(r)
}

func isLetter(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsLetter(r)
}
