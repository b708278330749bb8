package text

import (
	"fmt"

	"github.com/gogpu/pixbuf/geom"
)

// Pos is where a text block is placed: either a pixel position or a
// column/row cell of the font grid.
type Pos struct {
	X, Y   int
	colRow bool
}

// Px returns a pixel position.
func Px(x, y int) Pos { return Pos{X: x, Y: y} }

// PxCoord returns a pixel position from a Coord.
func PxCoord(c geom.Coord) Pos { return Pos{X: c.X, Y: c.Y} }

// ColRow returns a cell position; see PixelFont.MaxCharacters for the grid
// size of a given area.
func ColRow(col, row int) Pos { return Pos{X: col, Y: row, colRow: true} }

// IsColRow reports whether p is a cell position.
func (p Pos) IsColRow() bool { return p.colRow }

// String returns the string representation of the position.
func (p Pos) String() string {
	if p.colRow {
		return fmt.Sprintf("ColRow(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("Px(%d,%d)", p.X, p.Y)
}

// Coord resolves p to pixels for font. Cells are one CharWidth wide and one
// LineHeight tall.
func (p Pos) Coord(font PixelFont) geom.Coord {
	if p.colRow {
		return geom.Coord{X: p.X * font.CharWidth(), Y: p.Y * font.LineHeight()}
	}
	return geom.Coord{X: p.X, Y: p.Y}
}
