package pixbuf

import (
	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/internal/raster"
)

// DrawKind selects between outlining and filling a shape.
type DrawKind uint8

const (
	// KindStroke draws the outline.
	KindStroke DrawKind = iota
	// KindFill draws the outline and the interior.
	KindFill
)

// String returns the string representation of the draw kind.
func (k DrawKind) String() string {
	switch k {
	case KindStroke:
		return "Stroke"
	case KindFill:
		return "Fill"
	default:
		return "Unknown"
	}
}

// DrawType is how a shape is painted: stroked or filled, in a color.
type DrawType struct {
	Kind  DrawKind
	Color Color
}

// Stroke returns a DrawType that outlines in c.
func Stroke(c Color) DrawType { return DrawType{Kind: KindStroke, Color: c} }

// Fill returns a DrawType that fills with c.
func Fill(c Color) DrawType { return DrawType{Kind: KindFill, Color: c} }

// WithColor returns d painted in c.
func (d DrawType) WithColor(c Color) DrawType {
	d.Color = c
	return d
}

// String implements fmt.Stringer.
func (d DrawType) String() string {
	return d.Kind.String() + "(" + d.Color.Hex() + ")"
}

// Drawable is a shape together with how to paint it and the pixels it
// covers. The pixel list is computed once by NewDrawable; every With method
// returns a new Drawable.
type Drawable struct {
	shape    geom.Shape
	drawType DrawType
	points   []geom.Coord
}

// NewDrawable rasterizes shape for drawType.
func NewDrawable(shape geom.Shape, drawType DrawType) *Drawable {
	return &Drawable{
		shape:    shape,
		drawType: drawType,
		points:   rasterize(shape, drawType.Kind),
	}
}

// Shape returns the shape.
func (d *Drawable) Shape() geom.Shape { return d.shape }

// DrawType returns how the shape is painted.
func (d *Drawable) DrawType() DrawType { return d.drawType }

// Points returns the pixels the drawable covers, each once, in drawing
// order. The slice must not be modified.
func (d *Drawable) Points() []geom.Coord { return d.points }

// Bounds returns the bounds of the shape.
func (d *Drawable) Bounds() geom.Rect { return d.shape.Bounds() }

// Render paints every point of d. It implements Renderable.
func (d *Drawable) Render(s *Surface) {
	c := d.drawType.Color
	for _, p := range d.points {
		s.SetPixel(p.X, p.Y, c)
	}
}

// WithDrawType returns the same shape painted with drawType.
func (d *Drawable) WithDrawType(drawType DrawType) *Drawable {
	if drawType.Kind == d.drawType.Kind {
		return &Drawable{shape: d.shape, drawType: drawType, points: d.points}
	}
	return NewDrawable(d.shape, drawType)
}

// WithTranslation returns the shape moved by delta.
func (d *Drawable) WithTranslation(delta geom.Coord) *Drawable {
	return NewDrawable(d.shape.Translate(delta), d.drawType)
}

// WithMove returns the shape moved so its bounding box starts at xy.
func (d *Drawable) WithMove(xy geom.Coord) *Drawable {
	return NewDrawable(geom.MoveTo(d.shape, xy), d.drawType)
}

// WithScale returns the shape scaled by factor around its center.
func (d *Drawable) WithScale(factor float64) *Drawable {
	return d.WithScaleAround(factor, d.shape.Center())
}

// WithScaleAround returns the shape scaled by factor around point.
func (d *Drawable) WithScaleAround(factor float64, point geom.Coord) *Drawable {
	return NewDrawable(d.shape.Scale(factor, point), d.drawType)
}

// WithRotation returns the shape rotated clockwise by degrees around its
// center.
func (d *Drawable) WithRotation(degrees float64) *Drawable {
	return d.WithRotationAround(degrees, d.shape.Center())
}

// WithRotationAround returns the shape rotated clockwise by degrees around
// point.
func (d *Drawable) WithRotationAround(degrees float64, point geom.Coord) *Drawable {
	return NewDrawable(d.shape.Rotate(degrees, point), d.drawType)
}

func rasterize(shape geom.Shape, kind DrawKind) []geom.Coord {
	fill := kind == KindFill
	return raster.Collect(func(plot raster.Plot) {
		switch sh := shape.(type) {
		case geom.Line:
			raster.Line(sh.Start, sh.End, plot)
		case geom.Rect:
			if fill {
				raster.RectFill(sh, plot)
			} else {
				raster.RectStroke(sh, plot)
			}
		case geom.Circle:
			if fill {
				raster.CircleFill(sh.Origin, sh.Radius, plot)
			} else {
				raster.CircleStroke(sh.Origin, sh.Radius, plot)
			}
		case geom.Ellipse:
			rx, ry := sh.Radii()
			if fill {
				raster.EllipseFill(sh.Origin, rx, ry, plot)
			} else {
				raster.EllipseStroke(sh.Origin, rx, ry, plot)
			}
		case geom.Triangle:
			if fill {
				raster.TriangleFill(sh.A, sh.B, sh.C, plot)
			} else {
				raster.TriangleStroke(sh.A, sh.B, sh.C, plot)
			}
		case geom.Polygon:
			if fill {
				raster.PolygonFill(sh.Points(), plot)
			} else {
				raster.PolygonStroke(sh.Points(), plot)
			}
		}
	})
}
