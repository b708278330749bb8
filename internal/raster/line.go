package raster

import "github.com/gogpu/pixbuf/geom"

// Line plots every pixel of the segment start-end, both ends included.
//
// Endpoints are first put in a canonical order (ascending x, then ascending
// y) so Line(a, b) and Line(b, a) cover exactly the same pixels.
// Horizontal and vertical segments are filled directly; everything else uses
// integer Bresenham stepping along the dominant axis.
func Line(start, end geom.Coord, plot Plot) {
	if start.X > end.X || (start.X == end.X && start.Y > end.Y) {
		start, end = end, start
	}

	switch {
	case start.X == end.X:
		for y := start.Y; y <= end.Y; y++ {
			plot(start.X, y)
		}
		return
	case start.Y == end.Y:
		for x := start.X; x <= end.X; x++ {
			plot(x, start.Y)
		}
		return
	}

	dx := abs(end.X - start.X)
	dy := abs(end.Y - start.Y)
	dx2, dy2 := dx*2, dy*2
	ix, iy := 1, 1
	if start.X > end.X {
		ix = -1
	}
	if start.Y > end.Y {
		iy = -1
	}

	x, y := start.X, start.Y
	delta := 0
	if dx >= dy {
		for {
			plot(x, y)
			if x == end.X {
				return
			}
			x += ix
			delta += dy2
			if delta > dx {
				y += iy
				delta -= dx2
			}
		}
	}
	for {
		plot(x, y)
		if y == end.Y {
			return
		}
		y += iy
		delta += dx2
		if delta > dy {
			x += ix
			delta -= dy2
		}
	}
}

// Outline plots the closed path through points, joining the last point back
// to the first.
func Outline(points []geom.Coord, plot Plot) {
	switch len(points) {
	case 0:
		return
	case 1:
		plot(points[0].X, points[0].Y)
		return
	}
	for i := 0; i < len(points)-1; i++ {
		Line(points[i], points[i+1], plot)
	}
	Line(points[len(points)-1], points[0], plot)
}

// Arc plots the point at radius from center for every whole degree from
// startDeg to endDeg inclusive. With closed set, both radii are drawn too.
func Arc(center geom.Coord, startDeg, endDeg, radius int, closed bool, plot Plot) {
	for deg := startDeg; deg <= endDeg; deg++ {
		p := geom.FromAngle(center, radius, float64(deg))
		plot(p.X, p.Y)
	}
	if closed {
		Line(center, geom.FromAngle(center, radius, float64(startDeg)), plot)
		Line(center, geom.FromAngle(center, radius, float64(endDeg)), plot)
	}
}

// RectStroke plots the perimeter of r.
func RectStroke(r geom.Rect, plot Plot) {
	for x := r.Left(); x <= r.Right(); x++ {
		plot(x, r.Top())
		plot(x, r.Bottom())
	}
	for y := r.Top(); y <= r.Bottom(); y++ {
		plot(r.Left(), y)
		plot(r.Right(), y)
	}
}

// RectFill plots every pixel of r.
func RectFill(r geom.Rect, plot Plot) {
	for y := r.Top(); y <= r.Bottom(); y++ {
		span(r.Left(), r.Right(), y, plot)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
