package raster

import (
	"math"

	"github.com/gogpu/pixbuf/geom"
)

// CircleStroke plots the outline of a circle with the midpoint algorithm,
// emitting the eight symmetric points of each step.
func CircleStroke(center geom.Coord, radius int, plot Plot) {
	cx, cy := center.X, center.Y
	d := (5 - radius*4) / 4
	x, y := 0, radius
	for x <= y {
		plot(cx+x, cy+y)
		plot(cx+x, cy-y)
		plot(cx-x, cy+y)
		plot(cx-x, cy-y)
		plot(cx+y, cy+x)
		plot(cx+y, cy-x)
		plot(cx-y, cy+x)
		plot(cx-y, cy-x)
		if d < 0 {
			d += 2*x + 1
		} else {
			d += 2*(x-y) + 1
			y--
		}
		x++
	}
}

// CircleFill plots a solid circle: the outline, then for each row dy from the
// center the half width round(sqrt(r² - dy²)), mirrored left/right and
// up/down.
func CircleFill(center geom.Coord, radius int, plot Plot) {
	CircleStroke(center, radius, plot)
	cx, cy := center.X, center.Y
	r2 := radius * radius
	for dy := 0; dy <= radius; dy++ {
		half := max(int(math.Round(math.Sqrt(float64(r2-dy*dy)))), 0)
		for dx := 0; dx <= half; dx++ {
			plot(cx-dx, cy-dy)
			plot(cx+dx, cy-dy)
			plot(cx-dx, cy+dy)
			plot(cx+dx, cy+dy)
		}
	}
}

// EllipseStroke plots the outline of an axis aligned ellipse with radii rx
// and ry using the two-region midpoint algorithm. Region 1 covers the part
// where the slope is above -1, region 2 the rest. The center row always
// reaches x = ±rx.
func EllipseStroke(center geom.Coord, rx, ry int, plot Plot) {
	if rx <= 0 || ry <= 0 {
		Line(geom.C(center.X-max(rx, 0), center.Y-max(ry, 0)),
			geom.C(center.X+max(rx, 0), center.Y+max(ry, 0)), plot)
		return
	}
	cx, cy := center.X, center.Y
	frx, fry := float64(rx), float64(ry)
	rx2, ry2 := frx*frx, fry*fry

	rowEnd := -1 // largest x plotted on the center row
	quad := func(x, y int) {
		if y == 0 {
			rowEnd = max(rowEnd, x)
		}
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		plot(cx+x, cy-y)
		plot(cx-x, cy-y)
	}

	x, y := 0, ry
	p1 := ry2 - rx2*fry + rx2*0.25
	dx := 2 * ry2 * float64(x)
	dy := 2 * rx2 * float64(y)
	for dx < dy {
		quad(x, y)
		x++
		if p1 < 0 {
			dx = 2 * ry2 * float64(x)
			p1 += dx + ry2
		} else {
			y--
			dx = 2 * ry2 * float64(x)
			dy = 2 * rx2 * float64(y)
			p1 += dx - dy + ry2
		}
	}

	fx, fy := float64(x)+0.5, float64(y)-1
	p2 := ry2*fx*fx + rx2*fy*fy - rx2*ry2
	for y >= 0 {
		quad(x, y)
		y--
		if p2 > 0 {
			dy = 2 * rx2 * float64(y)
			p2 -= dy - rx2
		} else {
			x++
			dy -= 2 * rx2
			dx += 2 * ry2
			p2 += dx - dy + rx2
		}
	}

	// Very flat ellipses leave region 2 before reaching (±rx, 0).
	for x := rowEnd + 1; x <= rx; x++ {
		quad(x, 0)
	}
}

// EllipseFill plots every pixel of the bounding box that satisfies
// x²·ry² + y²·rx² <= rx²·ry², plus the outline.
func EllipseFill(center geom.Coord, rx, ry int, plot Plot) {
	EllipseStroke(center, rx, ry, plot)
	if rx <= 0 || ry <= 0 {
		return
	}
	rx2, ry2 := rx*rx, ry*ry
	limit := rx2 * ry2
	for y := -ry; y <= ry; y++ {
		yPart := y * y * rx2
		for x := -rx; x <= rx; x++ {
			if x*x*ry2+yPart <= limit {
				plot(center.X+x, center.Y+y)
			}
		}
	}
}
