package pixbuf

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"github.com/gogpu/pixbuf/geom"
	"github.com/gogpu/pixbuf/internal/blend"
	"github.com/gogpu/pixbuf/internal/imageio"
)

// Image is an RGBA pixel array that can be drawn onto a Surface.
type Image struct {
	pixels      []byte
	width       int
	height      int
	transparent bool
}

// NewImage wraps pixels, which must hold width*height*4 bytes in RGBA
// order. The image takes ownership of pixels.
func NewImage(pixels []byte, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if want := width * height * bytesPerPixel; len(pixels) != want {
		return nil, &ImageSizeError{Width: width, Height: height, Expected: want, Actual: len(pixels)}
	}
	img := &Image{pixels: pixels, width: width, height: height}
	img.updateTransparency()
	return img, nil
}

// NewImageFromColors creates an image from one Color per pixel.
func NewImageFromColors(colors []Color, width, height int) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, ErrInvalidDimensions
	}
	if want := width * height; len(colors) != want {
		return nil, &ImageSizeError{
			Width: width, Height: height,
			Expected: want * bytesPerPixel, Actual: len(colors) * bytesPerPixel,
		}
	}
	pixels := make([]byte, 0, len(colors)*bytesPerPixel)
	for _, c := range colors {
		pixels = append(pixels, c.R, c.G, c.B, c.A)
	}
	return NewImage(pixels, width, height)
}

// NewBlankImage creates a fully transparent image.
func NewBlankImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		pixels:      make([]byte, width*height*bytesPerPixel),
		width:       width,
		height:      height,
		transparent: width*height > 0,
	}
}

// ImageFromStd converts any image.Image.
func ImageFromStd(src image.Image) *Image {
	n := imageio.ToNRGBA(src)
	b := n.Bounds()
	pixels := append([]byte(nil), n.Pix[:b.Dx()*b.Dy()*bytesPerPixel]...)
	img := &Image{pixels: pixels, width: b.Dx(), height: b.Dy()}
	img.updateTransparency()
	return img
}

// LoadImage decodes a PNG, JPEG, GIF or BMP file.
func LoadImage(path string) (*Image, error) {
	n, _, err := imageio.Load(path)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: load image: %w", err)
	}
	return ImageFromStd(n), nil
}

// DecodeImage decodes PNG, JPEG, GIF or BMP data, detected from its content.
func DecodeImage(data []byte) (*Image, error) {
	n, _, err := imageio.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("pixbuf: decode image: %w", err)
	}
	return ImageFromStd(n), nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image) Height() int { return img.height }

// Size returns the image dimensions.
func (img *Image) Size() (width, height int) { return img.width, img.height }

// Pixels returns the underlying RGBA bytes. Callers that modify them must
// not rely on IsTransparent afterwards.
func (img *Image) Pixels() []byte { return img.pixels }

// Colors returns one Color per pixel in row-major order.
func (img *Image) Colors() []Color {
	out := make([]Color, 0, img.width*img.height)
	for i := 0; i < len(img.pixels); i += bytesPerPixel {
		out = append(out, Color{R: img.pixels[i], G: img.pixels[i+1], B: img.pixels[i+2], A: img.pixels[i+3]})
	}
	return out
}

// IsTransparent reports whether any pixel is not fully opaque.
func (img *Image) IsTransparent() bool { return img.transparent }

func (img *Image) updateTransparency() {
	img.transparent = false
	for i := 3; i < len(img.pixels); i += bytesPerPixel {
		if img.pixels[i] != 255 {
			img.transparent = true
			return
		}
	}
}

func (img *Image) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// GetPixel returns the color at (x, y). It reports false outside the image.
func (img *Image) GetPixel(x, y int) (Color, bool) {
	if !img.inside(x, y) {
		return Color{}, false
	}
	i := (y*img.width + x) * bytesPerPixel
	return Color{R: img.pixels[i], G: img.pixels[i+1], B: img.pixels[i+2], A: img.pixels[i+3]}, true
}

// SetPixel overwrites the color at (x, y). Pixels outside the image are
// ignored.
func (img *Image) SetPixel(x, y int, c Color) {
	if !img.inside(x, y) {
		return
	}
	img.put(x, y, c)
	if c.A != 255 {
		img.transparent = true
	} else if img.transparent {
		img.updateTransparency()
	}
}

// put writes c without updating the transparency flag.
func (img *Image) put(x, y int, c Color) {
	i := (y*img.width + x) * bytesPerPixel
	img.pixels[i], img.pixels[i+1], img.pixels[i+2], img.pixels[i+3] = c.R, c.G, c.B, c.A
}

// BlendPixel composites c over the color at (x, y).
func (img *Image) BlendPixel(x, y int, c Color) {
	cur, ok := img.GetPixel(x, y)
	if !ok {
		return
	}
	img.SetPixel(x, y, cur.Blend(c))
}

// Blend composites other over img in place. Both images must be the same
// size.
func (img *Image) Blend(other *Image) error {
	if img.width != other.width || img.height != other.height {
		return &ImageBlendSizeError{
			Width: img.width, Height: img.height,
			OtherWidth: other.width, OtherHeight: other.height,
		}
	}
	p, o := img.pixels, other.pixels
	for i := 0; i < len(p); i += bytesPerPixel {
		p[i], p[i+1], p[i+2], p[i+3] = blend.Over(o[i], o[i+1], o[i+2], o[i+3], p[i], p[i+1], p[i+2], p[i+3])
	}
	img.updateTransparency()
	return nil
}

// ToNRGBA returns a copy of the image as *image.NRGBA.
func (img *Image) ToNRGBA() *image.NRGBA {
	n := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	copy(n.Pix, img.pixels)
	return n
}

func (img *Image) transform(fn func(image.Image) *image.NRGBA, quarterTurn bool) *Image {
	if img.width == 0 || img.height == 0 {
		if quarterTurn {
			return NewBlankImage(img.height, img.width)
		}
		return NewBlankImage(img.width, img.height)
	}
	return ImageFromStd(fn(img.ToNRGBA()))
}

// FlipHorizontal returns the image mirrored left to right.
func (img *Image) FlipHorizontal() *Image {
	return img.transform(imaging.FlipH, false)
}

// FlipVertical returns the image mirrored top to bottom.
func (img *Image) FlipVertical() *Image {
	return img.transform(imaging.FlipV, false)
}

// RotateCW returns the image rotated a quarter turn clockwise.
func (img *Image) RotateCW() *Image {
	return img.transform(imaging.Rotate270, true)
}

// RotateCCW returns the image rotated a quarter turn counter-clockwise.
func (img *Image) RotateCCW() *Image {
	return img.transform(imaging.Rotate90, true)
}

// TintAdd returns a copy with a signed offset added to every channel.
func (img *Image) TintAdd(r, g, b, a int) *Image {
	return img.mapColors(func(c Color) Color { return c.TintAdd(r, g, b, a) })
}

// TintMul returns a copy with every channel multiplied by a factor.
func (img *Image) TintMul(r, g, b, a float64) *Image {
	return img.mapColors(func(c Color) Color { return c.TintMul(r, g, b, a) })
}

func (img *Image) mapColors(fn func(Color) Color) *Image {
	out := &Image{pixels: make([]byte, len(img.pixels)), width: img.width, height: img.height}
	p := img.pixels
	for i := 0; i < len(p); i += bytesPerPixel {
		c := fn(Color{R: p[i], G: p[i+1], B: p[i+2], A: p[i+3]})
		out.pixels[i], out.pixels[i+1], out.pixels[i+2], out.pixels[i+3] = c.R, c.G, c.B, c.A
	}
	out.updateTransparency()
	return out
}

// Encode writes the image to w. format is a file extension such as "png"
// or ".bmp".
func (img *Image) Encode(w io.Writer, format string) error {
	f, err := imageio.FormatFromExt(format)
	if err != nil {
		return err
	}
	return imageio.Encode(w, img.ToNRGBA(), f)
}

// Save writes the image to path, choosing the format from the extension.
func (img *Image) Save(path string) error {
	return imageio.Save(path, img.ToNRGBA())
}

// DrawImage draws img with its top-left corner at xy. Every pixel goes
// through SetPixel, so translate, clip and blending apply.
func (s *Surface) DrawImage(xy geom.Coord, img *Image) {
	p := img.pixels
	for y := range img.height {
		for x := range img.width {
			i := (y*img.width + x) * bytesPerPixel
			s.SetPixel(xy.X+x, xy.Y+y, Color{R: p[i], G: p[i+1], B: p[i+2], A: p[i+3]})
		}
	}
}

// DrawImageUnchecked copies the rows of an opaque img straight into the
// buffer at xy plus the translate offset, skipping the clip and blending.
// Images with any transparency, or that would not fit entirely inside the
// buffer, are drawn with DrawImage instead.
func (s *Surface) DrawImageUnchecked(xy geom.Coord, img *Image) {
	x, y := xy.X+s.translate.X, xy.Y+s.translate.Y
	if img.transparent {
		Logger().Debug("pixbuf: unchecked image has transparency, blending instead")
		s.DrawImage(xy, img)
		return
	}
	if x < 0 || y < 0 || x+img.width > s.width || y+img.height > s.height {
		Logger().Debug("pixbuf: unchecked image is not fully on the surface, clipping instead",
			"x", x, "y", y, "width", img.width, "height", img.height)
		s.DrawImage(xy, img)
		return
	}
	row := img.width * bytesPerPixel
	for r := range img.height {
		dst := s.Index(x, y+r)
		copy(s.buf[dst:dst+row], img.pixels[r*row:(r+1)*row])
	}
}
