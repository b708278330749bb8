package pixbuf

import "github.com/gogpu/pixbuf/geom"

const (
	offsetTopLeft uint8 = iota
	offsetCenter
	offsetCustom
)

// ImageOffset selects which point of an image is placed at its position.
type ImageOffset struct {
	kind   uint8
	custom geom.Coord
}

var (
	// OffsetTopLeft places the top-left corner at the position.
	OffsetTopLeft = ImageOffset{kind: offsetTopLeft}
	// OffsetCenter places the centre at the position.
	OffsetCenter = ImageOffset{kind: offsetCenter}
)

// CustomOffset shifts the image by offset from its position.
func CustomOffset(offset geom.Coord) ImageOffset {
	return ImageOffset{kind: offsetCustom, custom: offset}
}

func (o ImageOffset) delta(width, height int) geom.Coord {
	switch o.kind {
	case offsetCenter:
		return geom.Coord{X: -(width / 2), Y: -(height / 2)}
	case offsetCustom:
		return o.custom
	default:
		return geom.Coord{}
	}
}

// RenderableImage is an Image at a position, drawn through the pixel
// pipeline.
type RenderableImage struct {
	Image  *Image
	Pos    geom.Coord
	Offset ImageOffset
}

// NewRenderableImage creates a RenderableImage.
func NewRenderableImage(img *Image, pos geom.Coord, offset ImageOffset) *RenderableImage {
	return &RenderableImage{Image: img, Pos: pos, Offset: offset}
}

// UpdatePosition moves the image by delta.
func (r *RenderableImage) UpdatePosition(delta geom.Coord) {
	r.Pos = r.Pos.Add(delta)
}

// Render implements Renderable.
func (r *RenderableImage) Render(s *Surface) {
	s.DrawImage(r.Pos.Add(r.Offset.delta(r.Image.width, r.Image.height)), r.Image)
}

// RenderableIndexedImage is an IndexedImage at a position.
type RenderableIndexedImage struct {
	Image *IndexedImage
	Pos   geom.Coord
}

// Render implements Renderable.
func (r *RenderableIndexedImage) Render(s *Surface) {
	s.DrawIndexedImage(r.Pos, r.Image)
}

// RenderableAnimatedImage is an AnimatedImage at a position.
type RenderableAnimatedImage struct {
	Image *AnimatedImage
	Pos   geom.Coord
}

// Render implements Renderable.
func (r *RenderableAnimatedImage) Render(s *Surface) {
	s.DrawAnimatedImage(r.Pos, r.Image)
}
