package text

import "github.com/gogpu/pixbuf/geom"

// PlacedGlyph is one glyph to draw with its top-left pixel.
type PlacedGlyph struct {
	Code byte
	At   geom.Coord
}

// Measure returns the size of the block lines occupy: the widest line times
// the glyph advance, and the line count times the line advance.
func Measure(lines [][]byte, f Format) (width, height int) {
	widest := 0
	for _, line := range lines {
		widest = max(widest, len(line))
	}
	return widest * abs(f.CharStep()), len(lines) * abs(f.LineStep())
}

// Layout positions every drawable glyph of lines. The block is measured,
// anchored at pos using f.Positioning, and glyph (col, row) is placed at
// origin + (col*CharStep, row*LineStep) + col*Adjust. Blank glyphs (space,
// tab) are omitted.
func Layout(lines [][]byte, pos Pos, f Format) []PlacedGlyph {
	if len(lines) == 0 {
		return nil
	}
	w, h := Measure(lines, f)
	origin := f.Positioning.Calc(pos.Coord(f.Font), w, h)
	stepX, stepY := f.CharStep(), f.LineStep()

	var out []PlacedGlyph
	for row, line := range lines {
		for col, code := range line {
			if IsBlank(code) {
				continue
			}
			out = append(out, PlacedGlyph{
				Code: code,
				At: geom.Coord{
					X: origin.X + col*stepX + col*f.Adjust.X,
					Y: origin.Y + row*stepY + col*f.Adjust.Y,
				},
			})
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
