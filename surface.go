package pixbuf

import (
	"image"
	"image/color"

	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/internal/blend"
	"github.com/gogpu/pixbuf/internal/imageio"
	"github.com/gogpu/pixbuf/text"
)

// bytesPerPixel is the size of one RGBA pixel in a surface buffer.
const bytesPerPixel = 4

// Renderable is anything that can draw itself onto a Surface.
type Renderable interface {
	Render(s *Surface)
}

type glyphKey struct {
	code byte
	font text.PixelFont
}

// Surface draws into a borrowed RGBA buffer.
//
// Every drawing call ends in SetPixel, which translates the coordinate,
// silently drops pixels outside the buffer or outside the clip, and then
// writes or composites the color. Later calls are painted over earlier ones.
//
// A Surface is not safe for concurrent use.
type Surface struct {
	buf       []byte
	width     int
	height    int
	translate geom.Coord
	clip      *Clip
	glyphs    map[glyphKey][]bool
}

// NewSurface wraps buf, which must hold exactly width*height*4 bytes in
// RGBA order. The surface writes into buf directly; the caller must not
// modify it while drawing.
func NewSurface(buf []byte, width, height int, opts ...SurfaceOption) (*Surface, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if want := width * height * bytesPerPixel; len(buf) != want {
		return nil, &BufferSizeError{Expected: want, Actual: len(buf)}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	clip := o.clip
	if clip == nil {
		clip = NewClip(width, height)
	} else if cw, ch := clip.Size(); cw != width || ch != height {
		return nil, &MaskSizeError{Expected: width * height, Actual: cw * ch}
	}
	if o.autoBuild != nil {
		clip.SetAutoBuild(*o.autoBuild)
	}

	return &Surface{
		buf:       buf,
		width:     width,
		height:    height,
		translate: o.translate,
		clip:      clip,
	}, nil
}

// AllocSurface creates a surface over a newly allocated, fully transparent
// buffer.
func AllocSurface(width, height int, opts ...SurfaceOption) (*Surface, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	return NewSurface(make([]byte, width*height*bytesPerPixel), width, height, opts...)
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Buffer returns the underlying RGBA buffer.
func (s *Surface) Buffer() []byte { return s.buf }

// Clip returns the surface clip. Changes to it apply to later draw calls.
func (s *Surface) Clip() *Clip { return s.clip }

// Index returns the byte offset of pixel (x, y), ignoring translate.
func (s *Surface) Index(x, y int) int {
	return (y*s.width + x) * bytesPerPixel
}

// IsOnScreen reports whether p lands inside the buffer once the translate
// offset is applied.
func (s *Surface) IsOnScreen(p geom.Coord) bool {
	x, y := p.X+s.translate.X, p.Y+s.translate.Y
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// Translate returns the offset added to every drawing coordinate.
func (s *Surface) Translate() geom.Coord { return s.translate }

// SetTranslate replaces the translate offset and returns the old one.
func (s *Surface) SetTranslate(offset geom.Coord) geom.Coord {
	old := s.translate
	s.translate = offset
	return old
}

// UpdateTranslate adds delta to the translate offset.
func (s *Surface) UpdateTranslate(delta geom.Coord) {
	s.translate = s.translate.Add(delta)
}

// WithTranslate runs fn with the translate offset set to offset and
// restores the previous offset afterwards.
func (s *Surface) WithTranslate(offset geom.Coord, fn func(s *Surface)) {
	old := s.SetTranslate(offset)
	defer s.SetTranslate(old)
	fn(s)
}

// SetPixel writes c at (x, y) through the pixel pipeline. The translate
// offset is added first; pixels outside the buffer or rejected by the clip
// are ignored. Opaque colors overwrite the pixel, fully transparent colors
// do nothing, anything else is composited over the existing pixel.
func (s *Surface) SetPixel(x, y int, c Color) {
	x += s.translate.X
	y += s.translate.Y
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	if !s.clip.IsValid(x, y) {
		return
	}
	i := (y*s.width + x) * bytesPerPixel
	px := s.buf[i : i+bytesPerPixel : i+bytesPerPixel]
	switch c.A {
	case 255:
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, 255
	case 0:
	default:
		px[0], px[1], px[2], px[3] = blend.Over(c.R, c.G, c.B, c.A, px[0], px[1], px[2], px[3])
	}
}

// GetPixel returns the stored color at (x, y). When useTranslate is set the
// translate offset is applied first. It reports false outside the buffer.
func (s *Surface) GetPixel(x, y int, useTranslate bool) (Color, bool) {
	if useTranslate {
		x += s.translate.X
		y += s.translate.Y
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Color{}, false
	}
	i := s.Index(x, y)
	return Color{R: s.buf[i], G: s.buf[i+1], B: s.buf[i+2], A: s.buf[i+3]}, true
}

// Clear fills the whole buffer with c, ignoring translate, clip and
// blending.
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.buf); i += bytesPerPixel {
		s.buf[i+0] = c.R
		s.buf[i+1] = c.G
		s.buf[i+2] = c.B
		s.buf[i+3] = c.A
	}
}

// ClearAware fills every pixel through SetPixel, so translate, clip and
// blending apply.
func (s *Surface) ClearAware(c Color) {
	for y := range s.height {
		for x := range s.width {
			s.SetPixel(x, y, c)
		}
	}
}

// Draw renders r.
func (s *Surface) Draw(r Renderable) {
	r.Render(s)
}

// DrawOffset renders r with offset added to the translate offset.
func (s *Surface) DrawOffset(offset geom.Coord, r Renderable) {
	s.WithTranslate(s.translate.Add(offset), r.Render)
}

// CopyToImage returns a copy of the buffer as an Image.
func (s *Surface) CopyToImage() *Image {
	img, _ := NewImage(append([]byte(nil), s.buf...), s.width, s.height)
	return img
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	c, _ := s.GetPixel(x, y, false)
	return c.NRGBA()
}

// Save encodes the surface to path, choosing PNG, JPEG, GIF or BMP from the
// extension.
func (s *Surface) Save(path string) error {
	return imageio.Save(path, s)
}
