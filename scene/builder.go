package scene

import (
	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/text"
)

// Builder provides a fluent API for constructing scenes in code. Every
// method appends to the scene and returns the builder.
//
// Example:
//
//	s := NewBuilder(64, 48).
//	    Background(pixbuf.Black).
//	    Rect(geom.NewRect(geom.C(4, 4), geom.C(59, 43)), pixbuf.Stroke(pixbuf.White)).
//	    Text("hi", geom.C(32, 24), text.Format{Positioning: text.Center}, pixbuf.Yellow).
//	    Build()
type Builder struct {
	scene *Scene
}

// NewBuilder creates a builder for an empty width x height scene.
func NewBuilder(width, height int) *Builder {
	return &Builder{scene: &Scene{Width: width, Height: height}}
}

// Background sets the color the whole surface is cleared to.
func (b *Builder) Background(c pixbuf.Color) *Builder {
	b.scene.Background = c.Hex()
	return b
}

// ---------------------------------------------------------------------------
// Clipping
// ---------------------------------------------------------------------------

func (b *Builder) clip(op ClipOpKind, radius int, points ...geom.Coord) *Builder {
	b.scene.Clip = append(b.scene.Clip, ClipOp{Op: op, Points: pointsOf(points), Radius: radius})
	return b
}

// ClipAll makes every pixel drawable again.
func (b *Builder) ClipAll() *Builder { return b.clip(ClipAll, 0) }

// ClipRect restricts drawing to r.
func (b *Builder) ClipRect(r geom.Rect) *Builder {
	return b.clip(ClipRect, 0, r.TopLeft, r.BottomRight)
}

// ClipCircle restricts drawing to c.
func (b *Builder) ClipCircle(c geom.Circle) *Builder {
	return b.clip(ClipCircle, c.Radius, c.Origin)
}

// AddClipRect marks r drawable in a complex clip.
func (b *Builder) AddClipRect(r geom.Rect) *Builder {
	return b.clip(ClipAddRect, 0, r.TopLeft, r.BottomRight)
}

// RemoveClipRect marks r not drawable in a complex clip.
func (b *Builder) RemoveClipRect(r geom.Rect) *Builder {
	return b.clip(ClipRemoveRect, 0, r.TopLeft, r.BottomRight)
}

// AddClipCircle marks c drawable in a complex clip.
func (b *Builder) AddClipCircle(c geom.Circle) *Builder {
	return b.clip(ClipAddCircle, c.Radius, c.Origin)
}

// RemoveClipCircle marks c not drawable in a complex clip.
func (b *Builder) RemoveClipCircle(c geom.Circle) *Builder {
	return b.clip(ClipRemoveCircle, c.Radius, c.Origin)
}

// ---------------------------------------------------------------------------
// Drawing Operations
// ---------------------------------------------------------------------------

func (b *Builder) add(it Item) *Builder {
	b.scene.Items = append(b.scene.Items, it)
	return b
}

func shapeItem(kind Kind, dt pixbuf.DrawType, points ...geom.Coord) Item {
	return Item{
		Kind:   kind,
		Points: pointsOf(points),
		Fill:   dt.Kind == pixbuf.KindFill,
		Color:  dt.Color.Hex(),
	}
}

// Line draws a line from start to end.
func (b *Builder) Line(start, end geom.Coord, c pixbuf.Color) *Builder {
	return b.add(shapeItem(KindLine, pixbuf.Stroke(c), start, end))
}

// Rect draws r.
func (b *Builder) Rect(r geom.Rect, dt pixbuf.DrawType) *Builder {
	return b.add(shapeItem(KindRect, dt, r.TopLeft, r.BottomRight))
}

// Circle draws c.
func (b *Builder) Circle(c geom.Circle, dt pixbuf.DrawType) *Builder {
	it := shapeItem(KindCircle, dt, c.Origin)
	it.Radius = c.Radius
	return b.add(it)
}

// Ellipse draws e.
func (b *Builder) Ellipse(e geom.Ellipse, dt pixbuf.DrawType) *Builder {
	it := shapeItem(KindEllipse, dt, e.Origin)
	it.Width, it.Height = e.Width, e.Height
	return b.add(it)
}

// Triangle draws t.
func (b *Builder) Triangle(t geom.Triangle, dt pixbuf.DrawType) *Builder {
	return b.add(shapeItem(KindTriangle, dt, t.A, t.B, t.C))
}

// Polygon draws p.
func (b *Builder) Polygon(p geom.Polygon, dt pixbuf.DrawType) *Builder {
	return b.add(shapeItem(KindPolygon, dt, p.Points()...))
}

// RoundedRect outlines r with corners of radius corner.
func (b *Builder) RoundedRect(r geom.Rect, corner int, c pixbuf.Color) *Builder {
	it := shapeItem(KindRoundedRect, pixbuf.Stroke(c), r.TopLeft, r.BottomRight)
	it.Radius = corner
	return b.add(it)
}

// Text draws content anchored at at. The format's Adjust is not stored.
func (b *Builder) Text(content string, at geom.Coord, f text.Format, c pixbuf.Color) *Builder {
	return b.add(Item{
		Kind:        KindText,
		Points:      pointsOf([]geom.Coord{at}),
		Color:       c.Hex(),
		Content:     content,
		Font:        f.Font.String(),
		Positioning: f.Positioning.String(),
		Wrap:        f.Wrapping.Kind.String(),
		Col:         f.Wrapping.Col,
		LineHeight:  f.LineHeight,
		CharWidth:   f.CharWidth,
	})
}

// Image draws the image file at path with the given offset (OffsetTopLeft
// or OffsetCenter), enlarged by a whole scale factor.
func (b *Builder) Image(path string, at geom.Coord, offset string, scale int) *Builder {
	return b.add(Item{
		Kind:   KindImage,
		Points: pointsOf([]geom.Coord{at}),
		Path:   path,
		Offset: offset,
		Scale:  scale,
	})
}

// Build returns the scene. The builder must not be used afterwards.
func (b *Builder) Build() *Scene {
	return b.scene
}

func pointsOf(coords []geom.Coord) []Point {
	if len(coords) == 0 {
		return nil
	}
	out := make([]Point, len(coords))
	for i, c := range coords {
		out[i] = P(c)
	}
	return out
}
