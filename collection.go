package pixbuf

import (
	"slices"

	"github.com/gogpu/pixbuf/geom"
)

// ShapeCollection is an ordered list of Drawables rendered first to last.
// Its bounds are recomputed after every change to the list.
type ShapeCollection struct {
	shapes []*Drawable
	bounds geom.Rect
}

// NewShapeCollection creates a collection holding drawables in order.
func NewShapeCollection(drawables ...*Drawable) *ShapeCollection {
	c := &ShapeCollection{shapes: slices.Clone(drawables)}
	c.updateBounds()
	return c
}

func (c *ShapeCollection) updateBounds() {
	if len(c.shapes) == 0 {
		c.bounds = geom.Rect{}
		return
	}
	b := c.shapes[0].Bounds()
	for _, d := range c.shapes[1:] {
		b = b.Union(d.Bounds())
	}
	c.bounds = b
}

// Len returns the number of drawables.
func (c *ShapeCollection) Len() int { return len(c.shapes) }

// Get returns the drawable at index i.
func (c *ShapeCollection) Get(i int) (*Drawable, bool) {
	if i < 0 || i >= len(c.shapes) {
		return nil, false
	}
	return c.shapes[i], true
}

// All returns the drawables in render order.
func (c *ShapeCollection) All() []*Drawable { return slices.Clone(c.shapes) }

// Push adds d on top of every other drawable.
func (c *ShapeCollection) Push(d *Drawable) {
	c.shapes = append(c.shapes, d)
	c.updateBounds()
}

// PushUnder adds d below every other drawable.
func (c *ShapeCollection) PushUnder(d *Drawable) {
	c.Insert(0, d)
}

// Insert adds d at index i, clamped to the list.
func (c *ShapeCollection) Insert(i int, d *Drawable) {
	i = min(max(i, 0), len(c.shapes))
	c.shapes = slices.Insert(c.shapes, i, d)
	c.updateBounds()
}

// Remove deletes and returns the drawable at index i.
func (c *ShapeCollection) Remove(i int) (*Drawable, bool) {
	if i < 0 || i >= len(c.shapes) {
		return nil, false
	}
	d := c.shapes[i]
	c.shapes = slices.Delete(c.shapes, i, i+1)
	c.updateBounds()
	return d, true
}

// Bounds returns the union of every drawable's bounds. It is the zero Rect
// for an empty collection.
func (c *ShapeCollection) Bounds() geom.Rect { return c.bounds }

// Left returns the left edge of Bounds.
func (c *ShapeCollection) Left() int { return c.bounds.Left() }

// Top returns the top edge of Bounds.
func (c *ShapeCollection) Top() int { return c.bounds.Top() }

// Right returns the right edge of Bounds.
func (c *ShapeCollection) Right() int { return c.bounds.Right() }

// Bottom returns the bottom edge of Bounds.
func (c *ShapeCollection) Bottom() int { return c.bounds.Bottom() }

// Center returns the centre of Bounds.
func (c *ShapeCollection) Center() geom.Coord { return c.bounds.Center() }

// Render implements Renderable.
func (c *ShapeCollection) Render(s *Surface) {
	for _, d := range c.shapes {
		d.Render(s)
	}
}

func (c *ShapeCollection) mapped(fn func(*Drawable) *Drawable) *ShapeCollection {
	out := make([]*Drawable, len(c.shapes))
	for i, d := range c.shapes {
		out[i] = fn(d)
	}
	n := &ShapeCollection{shapes: out}
	n.updateBounds()
	return n
}

// WithDrawType returns a collection with every drawable painted with
// drawType.
func (c *ShapeCollection) WithDrawType(drawType DrawType) *ShapeCollection {
	return c.mapped(func(d *Drawable) *Drawable { return d.WithDrawType(drawType) })
}

// WithTranslation returns a collection moved by delta.
func (c *ShapeCollection) WithTranslation(delta geom.Coord) *ShapeCollection {
	return c.mapped(func(d *Drawable) *Drawable { return d.WithTranslation(delta) })
}

// WithMove returns a collection moved so its bounds start at xy. Shapes
// keep their positions relative to each other.
func (c *ShapeCollection) WithMove(xy geom.Coord) *ShapeCollection {
	return c.WithTranslation(xy.Sub(c.bounds.TopLeft))
}

// WithScale returns a collection scaled by factor around the centre of its
// bounds.
func (c *ShapeCollection) WithScale(factor float64) *ShapeCollection {
	return c.WithScaleAround(factor, c.Center())
}

// WithScaleAround returns a collection scaled by factor around point.
func (c *ShapeCollection) WithScaleAround(factor float64, point geom.Coord) *ShapeCollection {
	return c.mapped(func(d *Drawable) *Drawable { return d.WithScaleAround(factor, point) })
}

// WithRotation returns a collection rotated clockwise by degrees around the
// centre of its bounds.
func (c *ShapeCollection) WithRotation(degrees float64) *ShapeCollection {
	return c.WithRotationAround(degrees, c.Center())
}

// WithRotationAround returns a collection rotated clockwise by degrees
// around point.
func (c *ShapeCollection) WithRotationAround(degrees float64, point geom.Coord) *ShapeCollection {
	return c.mapped(func(d *Drawable) *Drawable { return d.WithRotationAround(degrees, point) })
}
