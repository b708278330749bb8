// Package raster enumerates the integer pixels covered by primitive shapes.
//
// Every algorithm reports pixels through a Plot callback and never touches a
// buffer itself, so the caller decides what a "pixel write" means (blend into
// a surface, record into a point list, count, ...). Coordinates may be
// negative or beyond any surface; bounds are the caller's concern.
package raster

import "github.com/gogpu/pixbuf/geom"

// Plot receives one pixel coordinate.
type Plot func(x, y int)

// Collector records plotted pixels in first-seen order, dropping repeats.
// Shapes whose algorithms revisit pixels (symmetric octants, outline plus
// fill) are blended once per pixel when drawn from a collected list.
type Collector struct {
	seen   map[geom.Coord]struct{}
	points []geom.Coord
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[geom.Coord]struct{})}
}

// Plot records (x, y) unless it was already recorded.
func (c *Collector) Plot(x, y int) {
	p := geom.Coord{X: x, Y: y}
	if _, ok := c.seen[p]; ok {
		return
	}
	c.seen[p] = struct{}{}
	c.points = append(c.points, p)
}

// Points returns the recorded pixels in insertion order.
func (c *Collector) Points() []geom.Coord {
	return c.points
}

// Len returns the number of distinct pixels recorded.
func (c *Collector) Len() int {
	return len(c.points)
}

// Collect runs fn against a fresh Collector and returns the distinct pixels.
func Collect(fn func(plot Plot)) []geom.Coord {
	c := NewCollector()
	fn(c.Plot)
	return c.Points()
}

// span plots the inclusive horizontal run [x0, x1] on row y.
func span(x0, x1, y int, plot Plot) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		plot(x, y)
	}
}
