package geom

import "math"

// Kind identifies one member of the closed set of shapes.
type Kind uint8

const (
	KindLine Kind = iota
	KindRect
	KindTriangle
	KindCircle
	KindEllipse
	KindPolygon
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindRect:
		return "Rect"
	case KindTriangle:
		return "Triangle"
	case KindCircle:
		return "Circle"
	case KindEllipse:
		return "Ellipse"
	case KindPolygon:
		return "Polygon"
	default:
		return "Unknown"
	}
}

// Shape is implemented by Line, Rect, Triangle, Circle, Ellipse and Polygon
// only. The set is closed so callers can exhaustively type switch on it.
type Shape interface {
	// Kind reports which concrete shape this is.
	Kind() Kind
	// Points returns the defining points of the shape (a copy).
	Points() []Coord
	// Bounds returns the smallest Rect containing the shape.
	Bounds() Rect
	// Center returns the center of the shape.
	Center() Coord
	// Contains reports whether c lies inside or on the shape.
	Contains(c Coord) bool
	// Translate returns the shape moved by delta.
	Translate(delta Coord) Shape
	// Scale returns the shape scaled by factor around a pivot.
	Scale(factor float64, around Coord) Shape
	// Rotate returns the shape rotated by degrees around a pivot.
	Rotate(degrees float64, around Coord) Shape

	sealed()
}

// MoveTo returns s translated so that its bounding box starts at xy.
func MoveTo(s Shape, xy Coord) Shape {
	return s.Translate(xy.Sub(s.Bounds().TopLeft))
}

// boundsOf returns the bounding Rect of a non-empty point list.
func boundsOf(points []Coord) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minP, maxP := points[0], points[0]
	for _, p := range points[1:] {
		minP.X = min(minP.X, p.X)
		minP.Y = min(minP.Y, p.Y)
		maxP.X = max(maxP.X, p.X)
		maxP.Y = max(maxP.Y, p.Y)
	}
	return Rect{TopLeft: minP, BottomRight: maxP}
}

// quarterTurn reports whether degrees is a multiple of 90, and if so how many
// quarter turns (0..3) it represents.
func quarterTurn(degrees float64) (int, bool) {
	q := degrees / 90
	if q != math.Trunc(q) {
		return 0, false
	}
	n := int(q) % 4
	if n < 0 {
		n += 4
	}
	return n, true
}

// Line is a straight segment between two inclusive end points.
type Line struct {
	Start, End Coord
}

// NewLine creates a line.
func NewLine(start, end Coord) Line {
	return Line{Start: start, End: end}
}

func (Line) sealed() {}

// Kind implements Shape.
func (Line) Kind() Kind { return KindLine }

// Points implements Shape.
func (l Line) Points() []Coord { return []Coord{l.Start, l.End} }

// Bounds implements Shape.
func (l Line) Bounds() Rect { return NewRect(l.Start, l.End) }

// Center implements Shape.
func (l Line) Center() Coord { return l.Start.MidPoint(l.End) }

// Len returns the truncated length of the line.
func (l Line) Len() int { return l.Start.Distance(l.End) }

// Contains reports whether c lies exactly on the segment.
func (l Line) Contains(c Coord) bool {
	if l.End.Sub(l.Start).Cross(c.Sub(l.Start)) != 0 {
		return false
	}
	return l.Bounds().Contains(c)
}

// Translate implements Shape.
func (l Line) Translate(delta Coord) Shape {
	return Line{Start: l.Start.Add(delta), End: l.End.Add(delta)}
}

// Scale implements Shape.
func (l Line) Scale(factor float64, around Coord) Shape {
	m := Around(Scale(factor, factor), around)
	return Line{Start: m.TransformCoord(l.Start), End: m.TransformCoord(l.End)}
}

// Rotate implements Shape.
func (l Line) Rotate(degrees float64, around Coord) Shape {
	m := Around(Rotate(degrees), around)
	return Line{Start: m.TransformCoord(l.Start), End: m.TransformCoord(l.End)}
}

// Rect is an axis aligned rectangle with inclusive corners.
type Rect struct {
	TopLeft, BottomRight Coord
}

// NewRect creates a rectangle from any two opposite corners.
func NewRect(a, b Coord) Rect {
	return Rect{
		TopLeft:     Coord{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		BottomRight: Coord{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// RectWH creates a rectangle covering w x h pixels starting at (x, y).
// Non-positive sizes collapse to a single pixel row or column.
func RectWH(x, y, w, h int) Rect {
	return NewRect(C(x, y), C(x+max(w, 1)-1, y+max(h, 1)-1))
}

func (Rect) sealed() {}

// Kind implements Shape.
func (Rect) Kind() Kind { return KindRect }

// Points implements Shape; it returns the top-left and bottom-right corners.
func (r Rect) Points() []Coord { return []Coord{r.TopLeft, r.BottomRight} }

// Bounds implements Shape.
func (r Rect) Bounds() Rect { return r }

// Center implements Shape.
func (r Rect) Center() Coord { return r.TopLeft.MidPoint(r.BottomRight) }

// Left returns the leftmost column.
func (r Rect) Left() int { return r.TopLeft.X }

// Top returns the topmost row.
func (r Rect) Top() int { return r.TopLeft.Y }

// Right returns the rightmost column.
func (r Rect) Right() int { return r.BottomRight.X }

// Bottom returns the bottom row.
func (r Rect) Bottom() int { return r.BottomRight.Y }

// Width returns Right - Left.
func (r Rect) Width() int { return r.BottomRight.X - r.TopLeft.X }

// Height returns Bottom - Top.
func (r Rect) Height() int { return r.BottomRight.Y - r.TopLeft.Y }

// Contains reports whether c is inside the rectangle, edges included.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.TopLeft.X && c.X <= r.BottomRight.X &&
		c.Y >= r.TopLeft.Y && c.Y <= r.BottomRight.Y
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		TopLeft:     Coord{X: min(r.TopLeft.X, o.TopLeft.X), Y: min(r.TopLeft.Y, o.TopLeft.Y)},
		BottomRight: Coord{X: max(r.BottomRight.X, o.BottomRight.X), Y: max(r.BottomRight.Y, o.BottomRight.Y)},
	}
}

// Corners returns the four corners clockwise from the top-left.
func (r Rect) Corners() []Coord {
	return []Coord{
		r.TopLeft,
		{X: r.BottomRight.X, Y: r.TopLeft.Y},
		r.BottomRight,
		{X: r.TopLeft.X, Y: r.BottomRight.Y},
	}
}

// ToPolygon converts the rectangle into a four point polygon.
func (r Rect) ToPolygon() Polygon {
	return Polygon{points: r.Corners()}
}

// Translate implements Shape.
func (r Rect) Translate(delta Coord) Shape {
	return Rect{TopLeft: r.TopLeft.Add(delta), BottomRight: r.BottomRight.Add(delta)}
}

// Scale implements Shape.
func (r Rect) Scale(factor float64, around Coord) Shape {
	m := Around(Scale(factor, factor), around)
	return NewRect(m.TransformCoord(r.TopLeft), m.TransformCoord(r.BottomRight))
}

// Rotate implements Shape. Quarter turns keep the result a Rect; any other
// angle yields a Polygon.
func (r Rect) Rotate(degrees float64, around Coord) Shape {
	m := Around(Rotate(degrees), around)
	if _, ok := quarterTurn(degrees); ok {
		return NewRect(m.TransformCoord(r.TopLeft), m.TransformCoord(r.BottomRight))
	}
	return Polygon{points: transformAll(m, r.Corners())}
}

// Circle is defined by its center and radius in pixels.
type Circle struct {
	Origin Coord
	Radius int
}

// NewCircle creates a circle.
func NewCircle(center Coord, radius int) Circle {
	return Circle{Origin: center, Radius: max(radius, 0)}
}

func (Circle) sealed() {}

// Kind implements Shape.
func (Circle) Kind() Kind { return KindCircle }

// Points implements Shape; it returns the center.
func (c Circle) Points() []Coord { return []Coord{c.Origin} }

// Bounds implements Shape.
func (c Circle) Bounds() Rect {
	return Rect{
		TopLeft:     Coord{X: c.Origin.X - c.Radius, Y: c.Origin.Y - c.Radius},
		BottomRight: Coord{X: c.Origin.X + c.Radius, Y: c.Origin.Y + c.Radius},
	}
}

// Center implements Shape.
func (c Circle) Center() Coord { return c.Origin }

// Contains reports whether p is within Radius of the center.
func (c Circle) Contains(p Coord) bool {
	dx, dy := p.X-c.Origin.X, p.Y-c.Origin.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Translate implements Shape.
func (c Circle) Translate(delta Coord) Shape {
	return Circle{Origin: c.Origin.Add(delta), Radius: c.Radius}
}

// Scale implements Shape.
func (c Circle) Scale(factor float64, around Coord) Shape {
	m := Around(Scale(factor, factor), around)
	return NewCircle(m.TransformCoord(c.Origin), int(math.Round(float64(c.Radius)*factor)))
}

// Rotate implements Shape; only the center moves.
func (c Circle) Rotate(degrees float64, around Coord) Shape {
	m := Around(Rotate(degrees), around)
	return Circle{Origin: m.TransformCoord(c.Origin), Radius: c.Radius}
}

// Ellipse is an axis aligned ellipse defined by its center and full
// width/height in pixels.
type Ellipse struct {
	Origin        Coord
	Width, Height int
}

// NewEllipse creates an ellipse.
func NewEllipse(center Coord, width, height int) Ellipse {
	return Ellipse{Origin: center, Width: max(width, 0), Height: max(height, 0)}
}

func (Ellipse) sealed() {}

// Kind implements Shape.
func (Ellipse) Kind() Kind { return KindEllipse }

// Points implements Shape; it returns the center.
func (e Ellipse) Points() []Coord { return []Coord{e.Origin} }

// Radii returns the horizontal and vertical radii.
func (e Ellipse) Radii() (rx, ry int) { return e.Width / 2, e.Height / 2 }

// Bounds implements Shape.
func (e Ellipse) Bounds() Rect {
	rx, ry := e.Radii()
	return Rect{
		TopLeft:     Coord{X: e.Origin.X - rx, Y: e.Origin.Y - ry},
		BottomRight: Coord{X: e.Origin.X + rx, Y: e.Origin.Y + ry},
	}
}

// Center implements Shape.
func (e Ellipse) Center() Coord { return e.Origin }

// Contains tests p against x²·ry² + y²·rx² <= rx²·ry².
func (e Ellipse) Contains(p Coord) bool {
	rx, ry := e.Radii()
	x, y := p.X-e.Origin.X, p.Y-e.Origin.Y
	rx2, ry2 := rx*rx, ry*ry
	if rx == 0 || ry == 0 {
		return e.Bounds().Contains(p)
	}
	return x*x*ry2+y*y*rx2 <= rx2*ry2
}

// Translate implements Shape.
func (e Ellipse) Translate(delta Coord) Shape {
	return Ellipse{Origin: e.Origin.Add(delta), Width: e.Width, Height: e.Height}
}

// Scale implements Shape.
func (e Ellipse) Scale(factor float64, around Coord) Shape {
	m := Around(Scale(factor, factor), around)
	return NewEllipse(m.TransformCoord(e.Origin),
		int(math.Round(float64(e.Width)*factor)),
		int(math.Round(float64(e.Height)*factor)))
}

// Rotate implements Shape. The ellipse stays axis aligned: odd quarter turns
// swap width and height, other angles only move the center.
func (e Ellipse) Rotate(degrees float64, around Coord) Shape {
	m := Around(Rotate(degrees), around)
	out := Ellipse{Origin: m.TransformCoord(e.Origin), Width: e.Width, Height: e.Height}
	if n, ok := quarterTurn(degrees); ok && n%2 == 1 {
		out.Width, out.Height = e.Height, e.Width
	}
	return out
}

// Triangle is defined by three vertices.
type Triangle struct {
	A, B, C Coord
}

// NewTriangle creates a triangle.
func NewTriangle(a, b, c Coord) Triangle {
	return Triangle{A: a, B: b, C: c}
}

func (Triangle) sealed() {}

// Kind implements Shape.
func (Triangle) Kind() Kind { return KindTriangle }

// Points implements Shape.
func (t Triangle) Points() []Coord { return []Coord{t.A, t.B, t.C} }

// Bounds implements Shape.
func (t Triangle) Bounds() Rect { return boundsOf(t.Points()) }

// Center returns the centroid.
func (t Triangle) Center() Coord {
	return Coord{X: (t.A.X + t.B.X + t.C.X) / 3, Y: (t.A.Y + t.B.Y + t.C.Y) / 3}
}

// Contains uses barycentric ratios: p is inside iff s >= 0, t >= 0 and
// s + t <= 1.
func (t Triangle) Contains(p Coord) bool {
	ab := t.B.Sub(t.A)
	ac := t.C.Sub(t.A)
	ap := p.Sub(t.A)
	denom := float64(ab.Cross(ac))
	if denom == 0 {
		return Line{Start: t.A, End: t.B}.Contains(p) ||
			Line{Start: t.B, End: t.C}.Contains(p) ||
			Line{Start: t.A, End: t.C}.Contains(p)
	}
	s := float64(ap.Cross(ac)) / denom
	u := float64(ab.Cross(ap)) / denom
	return s >= 0 && u >= 0 && s+u <= 1
}

// Translate implements Shape.
func (t Triangle) Translate(delta Coord) Shape {
	return Triangle{A: t.A.Add(delta), B: t.B.Add(delta), C: t.C.Add(delta)}
}

// Scale implements Shape.
func (t Triangle) Scale(factor float64, around Coord) Shape {
	p := transformAll(Around(Scale(factor, factor), around), t.Points())
	return Triangle{A: p[0], B: p[1], C: p[2]}
}

// Rotate implements Shape.
func (t Triangle) Rotate(degrees float64, around Coord) Shape {
	p := transformAll(Around(Rotate(degrees), around), t.Points())
	return Triangle{A: p[0], B: p[1], C: p[2]}
}

// Polygon is a closed shape through an ordered list of vertices.
type Polygon struct {
	points []Coord
}

// NewPolygon creates a polygon. The points are copied.
func NewPolygon(points ...Coord) Polygon {
	return Polygon{points: append([]Coord(nil), points...)}
}

func (Polygon) sealed() {}

// Kind implements Shape.
func (Polygon) Kind() Kind { return KindPolygon }

// Points implements Shape.
func (p Polygon) Points() []Coord { return append([]Coord(nil), p.points...) }

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.points) }

// Bounds implements Shape.
func (p Polygon) Bounds() Rect { return boundsOf(p.points) }

// Center returns the average of the vertices.
func (p Polygon) Center() Coord {
	if len(p.points) == 0 {
		return Coord{}
	}
	var sx, sy int
	for _, c := range p.points {
		sx += c.X
		sy += c.Y
	}
	return Coord{X: sx / len(p.points), Y: sy / len(p.points)}
}

// Contains uses the even-odd rule; points on an edge are inside.
func (p Polygon) Contains(c Coord) bool {
	n := len(p.points)
	if n == 0 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		pi, pj := p.points[i], p.points[j]
		if (Line{Start: pi, End: pj}).Contains(c) {
			return true
		}
		if (pi.Y > c.Y) != (pj.Y > c.Y) {
			x := float64(pj.X-pi.X)*float64(c.Y-pi.Y)/float64(pj.Y-pi.Y) + float64(pi.X)
			if float64(c.X) < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Translate implements Shape.
func (p Polygon) Translate(delta Coord) Shape {
	return Polygon{points: transformAll(Translate(float64(delta.X), float64(delta.Y)), p.points)}
}

// Scale implements Shape.
func (p Polygon) Scale(factor float64, around Coord) Shape {
	return Polygon{points: transformAll(Around(Scale(factor, factor), around), p.points)}
}

// Rotate implements Shape.
func (p Polygon) Rotate(degrees float64, around Coord) Shape {
	return Polygon{points: transformAll(Around(Rotate(degrees), around), p.points)}
}
