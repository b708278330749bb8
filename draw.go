package pixbuf

import (
	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/internal/raster"
)

// DrawLine draws a one pixel line from start to end, both ends included.
// Swapping start and end touches the same pixels.
func (s *Surface) DrawLine(start, end geom.Coord, c Color) {
	raster.Line(start, end, func(x, y int) { s.SetPixel(x, y, c) })
}

// DrawArc draws the point at radius from center for every whole degree from
// startDeg to endDeg. With closed set, lines from the center to both ends
// are drawn too.
func (s *Surface) DrawArc(center geom.Coord, startDeg, endDeg, radius int, closed bool, c Color) {
	raster.Arc(center, startDeg, endDeg, radius, closed, func(x, y int) { s.SetPixel(x, y, c) })
}

// DrawShape draws any shape.
func (s *Surface) DrawShape(shape geom.Shape, drawType DrawType) {
	NewDrawable(shape, drawType).Render(s)
}

// DrawRect draws r. Both corners are included.
func (s *Surface) DrawRect(r geom.Rect, drawType DrawType) {
	s.DrawShape(r, drawType)
}

// DrawCircle draws c.
func (s *Surface) DrawCircle(c geom.Circle, drawType DrawType) {
	s.DrawShape(c, drawType)
}

// DrawEllipse draws e.
func (s *Surface) DrawEllipse(e geom.Ellipse, drawType DrawType) {
	s.DrawShape(e, drawType)
}

// DrawTriangle draws t.
func (s *Surface) DrawTriangle(t geom.Triangle, drawType DrawType) {
	s.DrawShape(t, drawType)
}

// DrawPolygon draws p.
func (s *Surface) DrawPolygon(p geom.Polygon, drawType DrawType) {
	s.DrawShape(p, drawType)
}
