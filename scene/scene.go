// Package scene describes a drawing declaratively so it can be kept in a
// TOML or YAML file and rendered onto a pixbuf.Surface.
//
// A scene has a size, an optional background, a list of clip operations
// applied before drawing and an ordered list of items drawn in painter's
// order:
//
//	width = 64
//	height = 48
//	background = "#101020"
//
//	[[item]]
//	kind = "rect"
//	points = [[4, 4], [59, 43]]
//	color = "#FFFFFF"
//
//	[[item]]
//	kind = "text"
//	points = [[32, 24]]
//	content = "hi"
//	positioning = "Center"
//	color = "#FFFF00"
package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gogpu/pixbuf"
	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/internal/cache"
	"github.com/gogpu/pixbuf/text"
)

// imageCacheSize bounds the decoded images a scene keeps between renders.
const imageCacheSize = 32

// Kind names what an Item draws.
type Kind string

// Item kinds.
const (
	KindLine        Kind = "line"
	KindRect        Kind = "rect"
	KindCircle      Kind = "circle"
	KindEllipse     Kind = "ellipse"
	KindTriangle    Kind = "triangle"
	KindPolygon     Kind = "polygon"
	KindRoundedRect Kind = "rounded_rect"
	KindText        Kind = "text"
	KindImage       Kind = "image"
)

// ClipOpKind names a clip operation.
type ClipOpKind string

// Clip operations. ClipRect and ClipCircle replace the clip with a simple
// shape; the add and remove operations build a complex clip in order.
const (
	ClipAll          ClipOpKind = "all"
	ClipRect         ClipOpKind = "rect"
	ClipCircle       ClipOpKind = "circle"
	ClipAddRect      ClipOpKind = "add_rect"
	ClipRemoveRect   ClipOpKind = "remove_rect"
	ClipAddCircle    ClipOpKind = "add_circle"
	ClipRemoveCircle ClipOpKind = "remove_circle"
)

// Image offsets.
const (
	OffsetTopLeft = "top_left"
	OffsetCenter  = "center"
)

// Point is an x, y pair, written as a two element array.
type Point [2]int

// P returns the Point for c.
func P(c geom.Coord) Point { return Point{c.X, c.Y} }

// Coord converts p to a geom.Coord.
func (p Point) Coord() geom.Coord { return geom.C(p[0], p[1]) }

// Scene is a complete drawing.
type Scene struct {
	Width      int      `toml:"width" yaml:"width"`
	Height     int      `toml:"height" yaml:"height"`
	Background string   `toml:"background,omitempty" yaml:"background,omitempty"`
	Clip       []ClipOp `toml:"clip,omitempty" yaml:"clip,omitempty"`
	Items      []Item   `toml:"item,omitempty" yaml:"items,omitempty"`

	// dir resolves relative image paths. Load sets it to the scene file's
	// directory.
	dir string

	// images holds decoded, scaled images by resolved path and scale.
	images *cache.Cache[imageKey, *pixbuf.Image]
}

type imageKey struct {
	path  string
	scale int
}

// ClipOp is one clip operation. Rect operations use two corner points,
// circle operations a center point and Radius.
type ClipOp struct {
	Op     ClipOpKind `toml:"op" yaml:"op"`
	Points []Point    `toml:"points,omitempty" yaml:"points,omitempty"`
	Radius int        `toml:"radius,omitempty" yaml:"radius,omitempty"`
}

// Item is one drawing. Which fields apply depends on Kind:
//
//	line, rect, rounded_rect  two points
//	triangle                  three points
//	polygon                   three or more points
//	circle                    center point and Radius
//	ellipse                   center point, Width and Height
//	text, image               one point, the anchor
//
// Color is a hex string; an empty color is white.
type Item struct {
	Kind   Kind    `toml:"kind" yaml:"kind"`
	Points []Point `toml:"points,omitempty" yaml:"points,omitempty"`
	Radius int     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Width  int     `toml:"width,omitempty" yaml:"width,omitempty"`
	Height int     `toml:"height,omitempty" yaml:"height,omitempty"`
	Fill   bool    `toml:"fill,omitempty" yaml:"fill,omitempty"`
	Color  string  `toml:"color,omitempty" yaml:"color,omitempty"`

	Content     string `toml:"content,omitempty" yaml:"content,omitempty"`
	Font        string `toml:"font,omitempty" yaml:"font,omitempty"`
	Positioning string `toml:"positioning,omitempty" yaml:"positioning,omitempty"`
	Wrap        string `toml:"wrap,omitempty" yaml:"wrap,omitempty"`
	Col         int    `toml:"col,omitempty" yaml:"col,omitempty"`
	Grid        bool   `toml:"grid,omitempty" yaml:"grid,omitempty"`
	LineHeight  int    `toml:"line_height,omitempty" yaml:"line_height,omitempty"`
	CharWidth   int    `toml:"char_width,omitempty" yaml:"char_width,omitempty"`

	Path   string `toml:"path,omitempty" yaml:"path,omitempty"`
	Offset string `toml:"offset,omitempty" yaml:"offset,omitempty"`
	Scale  int    `toml:"scale,omitempty" yaml:"scale,omitempty"`
}

// wantPoints returns the allowed point count range for k.
func (k Kind) wantPoints() (lo, hi int, ok bool) {
	switch k {
	case KindLine, KindRect, KindRoundedRect:
		return 2, 2, true
	case KindTriangle:
		return 3, 3, true
	case KindPolygon:
		return 3, -1, true
	case KindCircle, KindEllipse, KindText, KindImage:
		return 1, 1, true
	default:
		return 0, 0, false
	}
}

func checkPoints(n, lo, hi int) error {
	if n < lo || (hi >= 0 && n > hi) {
		return fmt.Errorf("%w: have %d", ErrPointCount, n)
	}
	return nil
}

// Validate checks the scene structure without loading any image.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := pixbuf.FromHex(s.Background); err != nil {
			return fmt.Errorf("scene: background: %w", err)
		}
	}
	for i, op := range s.Clip {
		if err := op.validate(); err != nil {
			return &ClipError{Index: i, Op: op.Op, Err: err}
		}
	}
	for i, it := range s.Items {
		if err := it.validate(); err != nil {
			return &ItemError{Index: i, Kind: it.Kind, Err: err}
		}
	}
	return nil
}

func (op ClipOp) validate() error {
	switch op.Op {
	case ClipAll:
		return nil
	case ClipRect, ClipAddRect, ClipRemoveRect:
		return checkPoints(len(op.Points), 2, 2)
	case ClipCircle, ClipAddCircle, ClipRemoveCircle:
		return checkPoints(len(op.Points), 1, 1)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownClipOp, op.Op)
	}
}

func (it Item) validate() error {
	lo, hi, ok := it.Kind.wantPoints()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, it.Kind)
	}
	if err := checkPoints(len(it.Points), lo, hi); err != nil {
		return err
	}
	if _, err := it.color(); err != nil {
		return err
	}
	switch it.Kind {
	case KindText:
		_, err := it.format()
		return err
	case KindImage:
		_, err := it.offset()
		return err
	}
	return nil
}

func (it Item) color() (pixbuf.Color, error) {
	if it.Color == "" {
		return pixbuf.White, nil
	}
	return pixbuf.FromHex(it.Color)
}

func (it Item) drawType() (pixbuf.DrawType, error) {
	c, err := it.color()
	if err != nil {
		return pixbuf.DrawType{}, err
	}
	if it.Fill {
		return pixbuf.Fill(c), nil
	}
	return pixbuf.Stroke(c), nil
}

func (it Item) format() (text.Format, error) {
	var f text.Format
	var err error
	if it.Font != "" {
		if f.Font, err = text.ParseFont(it.Font); err != nil {
			return f, err
		}
	}
	if it.Positioning != "" {
		if f.Positioning, err = text.ParsePositioning(it.Positioning); err != nil {
			return f, err
		}
	}
	if it.Wrap != "" {
		kind, err := text.ParseWrapKind(it.Wrap)
		if err != nil {
			return f, err
		}
		f.Wrapping = text.WrappingStrategy{Kind: kind, Col: it.Col}
	}
	f.LineHeight, f.CharWidth = it.LineHeight, it.CharWidth
	return f, nil
}

func (it Item) offset() (pixbuf.ImageOffset, error) {
	switch strings.ToLower(it.Offset) {
	case "", OffsetTopLeft:
		return pixbuf.OffsetTopLeft, nil
	case OffsetCenter:
		return pixbuf.OffsetCenter, nil
	default:
		return pixbuf.ImageOffset{}, fmt.Errorf("%w: %q", ErrUnknownOffset, it.Offset)
	}
}

// shape returns the geometric shape of a shape item.
func (it Item) shape() geom.Shape {
	p := make([]geom.Coord, len(it.Points))
	for i, pt := range it.Points {
		p[i] = pt.Coord()
	}
	switch it.Kind {
	case KindLine:
		return geom.NewLine(p[0], p[1])
	case KindRect:
		return geom.NewRect(p[0], p[1])
	case KindCircle:
		return geom.NewCircle(p[0], it.Radius)
	case KindEllipse:
		return geom.NewEllipse(p[0], it.Width, it.Height)
	case KindTriangle:
		return geom.NewTriangle(p[0], p[1], p[2])
	default:
		return geom.NewPolygon(p...)
	}
}

// renderable converts a validated item into something a Surface can draw.
func (s *Scene) renderable(it Item) (pixbuf.Renderable, error) {
	c, err := it.color()
	if err != nil {
		return nil, err
	}
	switch it.Kind {
	case KindRoundedRect:
		return pixbuf.RoundedRect(geom.NewRect(it.Points[0].Coord(), it.Points[1].Coord()), it.Radius, c), nil

	case KindText:
		f, err := it.format()
		if err != nil {
			return nil, err
		}
		pos := text.PxCoord(it.Points[0].Coord())
		if it.Grid {
			pos = text.ColRow(it.Points[0][0], it.Points[0][1])
		}
		return pixbuf.NewText(it.Content, pos, f, c), nil

	case KindImage:
		offset, err := it.offset()
		if err != nil {
			return nil, err
		}
		img, err := s.image(it.Path, it.Scale)
		if err != nil {
			return nil, err
		}
		return pixbuf.NewRenderableImage(img, it.Points[0].Coord(), offset), nil

	default:
		dt, err := it.drawType()
		if err != nil {
			return nil, err
		}
		return pixbuf.NewDrawable(it.shape(), dt), nil
	}
}

// image loads path, enlarged by scale. Images are shared between items and
// renders and must not be modified.
func (s *Scene) image(path string, scale int) (*pixbuf.Image, error) {
	if s.images == nil {
		s.images = cache.New[imageKey, *pixbuf.Image](imageCacheSize)
	}
	key := imageKey{path: s.resolve(path), scale: max(scale, 1)}
	return s.images.GetOrLoad(key, func() (*pixbuf.Image, error) {
		img, err := pixbuf.LoadImage(key.path)
		if err != nil {
			return nil, err
		}
		if key.scale > 1 {
			img = img.Scale(pixbuf.NearestNeighbour(key.scale, key.scale))
		}
		pixbuf.Logger().Debug("scene: image loaded", "path", key.path, "scale", key.scale)
		return img, nil
	})
}

func (s *Scene) resolve(path string) string {
	if filepath.IsAbs(path) || s.dir == "" {
		return path
	}
	return filepath.Join(s.dir, path)
}

func (s *Scene) applyClip(clip *pixbuf.Clip) {
	for _, op := range s.Clip {
		var a geom.Coord
		if len(op.Points) > 0 {
			a = op.Points[0].Coord()
		}
		switch op.Op {
		case ClipAll:
			clip.SetAllValid()
		case ClipRect:
			clip.SetValidRect(geom.NewRect(a, op.Points[1].Coord()))
		case ClipCircle:
			clip.SetValidCircle(geom.NewCircle(a, op.Radius))
		case ClipAddRect:
			clip.AddRect(geom.NewRect(a, op.Points[1].Coord()))
		case ClipRemoveRect:
			clip.RemoveRect(geom.NewRect(a, op.Points[1].Coord()))
		case ClipAddCircle:
			clip.AddCircle(geom.NewCircle(a, op.Radius))
		case ClipRemoveCircle:
			clip.RemoveCircle(geom.NewCircle(a, op.Radius))
		}
	}
	if clip.IsComplex() {
		clip.UpdatePixelMap()
	}
}

// Render draws the scene onto dst: the background fills the whole buffer,
// the clip operations are applied to dst's clip, then every item is drawn
// in order. The surface need not match the scene size.
func (s *Scene) Render(dst *pixbuf.Surface) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Background != "" {
		bg, _ := pixbuf.FromHex(s.Background)
		dst.Clear(bg)
	}
	s.applyClip(dst.Clip())
	for i, it := range s.Items {
		r, err := s.renderable(it)
		if err != nil {
			return &ItemError{Index: i, Kind: it.Kind, Err: err}
		}
		dst.Draw(r)
	}
	log := pixbuf.Logger()
	if s.images != nil {
		st := s.images.Stats()
		log = log.With("images", st.Len, "image_hits", st.Hits, "image_misses", st.Misses,
			"image_evictions", st.Evictions)
	}
	log.Debug("scene: rendered", "items", len(s.Items), "clip_ops", len(s.Clip))
	return nil
}

// ForgetImages drops every decoded image, so the next render reads image
// files from disk again.
func (s *Scene) ForgetImages() {
	if s.images != nil {
		s.images.Clear()
	}
}

// NewSurface allocates a surface of the scene's size and renders the scene
// onto it.
func (s *Scene) NewSurface(opts ...pixbuf.SurfaceOption) (*pixbuf.Surface, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	dst, err := pixbuf.AllocSurface(s.Width, s.Height, opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Render(dst); err != nil {
		return nil, err
	}
	return dst, nil
}
