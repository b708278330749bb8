package raster

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/pixbuf/geom"
)

// TriangleStroke plots the three edges of a triangle.
func TriangleStroke(a, b, c geom.Coord, plot Plot) {
	Outline([]geom.Coord{a, b, c}, plot)
}

// TriangleFill plots a solid triangle: the outline, then horizontal spans.
//
// Vertices are sorted by y. A triangle with a horizontal edge is filled
// directly as flat-bottom or flat-top; any other triangle is split at the
// middle vertex into one of each.
func TriangleFill(a, b, c geom.Coord, plot Plot) {
	TriangleStroke(a, b, c, plot)

	v := []geom.Coord{a, b, c}
	sort.SliceStable(v, func(i, j int) bool { return v[i].Y < v[j].Y })
	v0, v1, v2 := fpoint(v[0]), fpoint(v[1]), fpoint(v[2])

	switch {
	case v0.y == v2.y:
		// degenerate, already covered by the outline
	case v1.y == v2.y:
		fillFlatBottom(v0, v1, v2, plot)
	case v0.y == v1.y:
		fillFlatTop(v0, v1, v2, plot)
	default:
		split := point{
			x: v0.x + (v1.y-v0.y)/(v2.y-v0.y)*(v2.x-v0.x),
			y: v1.y,
		}
		fillFlatBottom(v0, v1, split, plot)
		fillFlatTop(v1, split, v2, plot)
	}
}

type point struct{ x, y float64 }

func fpoint(c geom.Coord) point {
	return point{x: float64(c.X), y: float64(c.Y)}
}

// fillFlatBottom fills a triangle whose two lower vertices share a row,
// stepping both edge slopes downwards from the apex.
func fillFlatBottom(top, left, right point, plot Plot) {
	slope1 := (left.x - top.x) / (left.y - top.y)
	slope2 := (right.x - top.x) / (right.y - top.y)
	x1, x2 := top.x, top.x
	for y := int(top.y); y <= int(left.y); y++ {
		span(roundInt(x1), roundInt(x2), y, plot)
		x1 += slope1
		x2 += slope2
	}
}

// fillFlatTop fills a triangle whose two upper vertices share a row,
// stepping both edge slopes upwards from the bottom vertex.
func fillFlatTop(left, right, bottom point, plot Plot) {
	slope1 := (bottom.x - left.x) / (bottom.y - left.y)
	slope2 := (bottom.x - right.x) / (bottom.y - right.y)
	x1, x2 := bottom.x, bottom.x
	for y := int(bottom.y); y >= int(left.y); y-- {
		span(roundInt(x1), roundInt(x2), y, plot)
		x1 -= slope1
		x2 -= slope2
	}
}

// PolygonStroke plots the closed outline of a polygon.
func PolygonStroke(points []geom.Coord, plot Plot) {
	Outline(points, plot)
}

// PolygonFill plots the outline and the even-odd interior of a polygon.
//
// For every row the x intersections with each edge straddling that row are
// found by linear interpolation, sorted, and the spans between alternate
// pairs are filled.
func PolygonFill(points []geom.Coord, plot Plot) {
	Outline(points, plot)
	if len(points) < 3 {
		return
	}

	top, bottom := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		top = min(top, p.Y)
		bottom = max(bottom, p.Y)
	}

	nodes := make([]float64, 0, len(points))
	for y := top; y <= bottom; y++ {
		nodes = nodes[:0]
		fy := float64(y)
		j := len(points) - 1
		for i := range points {
			pi, pj := fpoint(points[i]), fpoint(points[j])
			if (pi.y < fy && pj.y >= fy) || (pj.y < fy && pi.y >= fy) {
				nodes = append(nodes, pi.x+(fy-pi.y)/(pj.y-pi.y)*(pj.x-pi.x))
			}
			j = i
		}
		slices.Sort(nodes)
		for k := 0; k+1 < len(nodes); k += 2 {
			from := int(math.Ceil(nodes[k]))
			to := int(math.Floor(nodes[k+1]))
			for x := from; x <= to; x++ {
				plot(x, y)
			}
		}
	}
}

func roundInt(v float64) int {
	return int(math.Round(v))
}
