package pixbuf

import (
	"time"

	"github.com/gogpu/pixbuf/geom"
)

// MaxIndexedSize is the largest width or height of an indexed image.
const MaxIndexedSize = 255

// MaxPaletteSize is the largest number of colors in an indexed palette.
const MaxPaletteSize = 255

// IndexedImage is a palette plus one palette index per pixel.
type IndexedImage struct {
	width, height int
	palette       []Color
	pixels        []byte
}

func checkIndexed(width, height int, palette []Color, frames ...[]byte) error {
	if width < 0 || height < 0 {
		return ErrInvalidDimensions
	}
	if width > MaxIndexedSize || height > MaxIndexedSize {
		return &IndexedSizeError{Width: width, Height: height}
	}
	if len(palette) > MaxPaletteSize {
		return ErrTooManyColors
	}
	for _, pixels := range frames {
		if len(pixels) != width*height {
			return &ImageSizeError{Width: width, Height: height, Expected: width * height, Actual: len(pixels)}
		}
		for _, idx := range pixels {
			if int(idx) >= len(palette) {
				return ErrPaletteIndex
			}
		}
	}
	return nil
}

// NewIndexedImage creates an indexed image. Dimensions are limited to
// MaxIndexedSize and the palette to MaxPaletteSize colors; every pixel must
// index into the palette. palette and pixels are copied.
func NewIndexedImage(width, height int, palette []Color, pixels []byte) (*IndexedImage, error) {
	if err := checkIndexed(width, height, palette, pixels); err != nil {
		return nil, err
	}
	return &IndexedImage{
		width:   width,
		height:  height,
		palette: append([]Color(nil), palette...),
		pixels:  append([]byte(nil), pixels...),
	}, nil
}

// Width returns the image width in pixels.
func (img *IndexedImage) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *IndexedImage) Height() int { return img.height }

// Size returns the image dimensions.
func (img *IndexedImage) Size() (width, height int) { return img.width, img.height }

// Palette returns a copy of the palette.
func (img *IndexedImage) Palette() []Color { return append([]Color(nil), img.palette...) }

// Pixels returns the palette indices in row-major order. The slice must not
// be modified.
func (img *IndexedImage) Pixels() []byte { return img.pixels }

// ColorAt returns the color of pixel (x, y). It reports false outside the
// image.
func (img *IndexedImage) ColorAt(x, y int) (Color, bool) {
	if x < 0 || y < 0 || x >= img.width || y >= img.height {
		return Color{}, false
	}
	return img.palette[img.pixels[y*img.width+x]], true
}

// ToImage resolves every index to its color.
func (img *IndexedImage) ToImage() *Image {
	return resolveIndexed(img.width, img.height, img.palette, img.pixels)
}

func resolveIndexed(width, height int, palette []Color, pixels []byte) *Image {
	out := NewBlankImage(width, height)
	for i, idx := range pixels {
		out.put(i%width, i/width, palette[idx])
	}
	out.updateTransparency()
	return out
}

// AnimatedImage is a sequence of indexed frames sharing a palette. The
// current frame advances as Update is fed elapsed time.
type AnimatedImage struct {
	width, height int
	palette       []Color
	frames        [][]byte
	frameDuration time.Duration
	loop          bool

	current int
	elapsed time.Duration
}

// NewAnimatedImage creates an animation showing each frame for
// frameDuration. With loop set the animation restarts after the last frame,
// otherwise it stops there.
func NewAnimatedImage(width, height int, palette []Color, frames [][]byte, frameDuration time.Duration, loop bool) (*AnimatedImage, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}
	if err := checkIndexed(width, height, palette, frames...); err != nil {
		return nil, err
	}
	copied := make([][]byte, len(frames))
	for i, f := range frames {
		copied[i] = append([]byte(nil), f...)
	}
	return &AnimatedImage{
		width:         width,
		height:        height,
		palette:       append([]Color(nil), palette...),
		frames:        copied,
		frameDuration: frameDuration,
		loop:          loop,
	}, nil
}

// Width returns the image width in pixels.
func (a *AnimatedImage) Width() int { return a.width }

// Height returns the image height in pixels.
func (a *AnimatedImage) Height() int { return a.height }

// FrameCount returns the number of frames.
func (a *AnimatedImage) FrameCount() int { return len(a.frames) }

// CurrentFrame returns the index of the frame being shown.
func (a *AnimatedImage) CurrentFrame() int { return a.current }

// SetFrame shows frame i, clamped to the valid range, and resets the frame
// timer.
func (a *AnimatedImage) SetFrame(i int) {
	a.current = min(max(i, 0), len(a.frames)-1)
	a.elapsed = 0
}

// Reset shows the first frame again.
func (a *AnimatedImage) Reset() { a.SetFrame(0) }

// Done reports whether a non-looping animation has reached its last frame.
func (a *AnimatedImage) Done() bool {
	return !a.loop && a.current == len(a.frames)-1
}

// Update advances the animation by delta.
func (a *AnimatedImage) Update(delta time.Duration) {
	if a.frameDuration <= 0 || delta <= 0 {
		return
	}
	a.elapsed += delta
	for a.elapsed >= a.frameDuration {
		a.elapsed -= a.frameDuration
		switch {
		case a.current < len(a.frames)-1:
			a.current++
		case a.loop:
			a.current = 0
		default:
			a.elapsed = 0
			return
		}
	}
}

// Frame returns frame i as an IndexedImage.
func (a *AnimatedImage) Frame(i int) (*IndexedImage, bool) {
	if i < 0 || i >= len(a.frames) {
		return nil, false
	}
	return &IndexedImage{width: a.width, height: a.height, palette: a.palette, pixels: a.frames[i]}, true
}

// DrawIndexedImage draws img with its top-left corner at xy through the
// pixel pipeline.
func (s *Surface) DrawIndexedImage(xy geom.Coord, img *IndexedImage) {
	s.drawIndexed(xy, img.width, img.palette, img.pixels)
}

// DrawAnimatedImage draws the current frame of img with its top-left corner
// at xy through the pixel pipeline.
func (s *Surface) DrawAnimatedImage(xy geom.Coord, img *AnimatedImage) {
	s.drawIndexed(xy, img.width, img.palette, img.frames[img.current])
}

func (s *Surface) drawIndexed(xy geom.Coord, width int, palette []Color, pixels []byte) {
	for i, idx := range pixels {
		s.SetPixel(xy.X+i%width, xy.Y+i/width, palette[idx])
	}
}

// CopyToIndexedImage converts the buffer into an IndexedImage. Surfaces
// wider or taller than MaxIndexedSize fail with *IndexedSizeError. With more
// than MaxPaletteSize distinct colors it fails with ErrTooManyColors unless
// simplify is set, in which case channel precision is reduced one bit at a
// time until the colors fit.
func (s *Surface) CopyToIndexedImage(simplify bool) (*IndexedImage, error) {
	if s.width > MaxIndexedSize || s.height > MaxIndexedSize {
		return nil, &IndexedSizeError{Width: s.width, Height: s.height}
	}
	palette, pixels, ok := indexColors(s.buf, 0)
	if !ok && !simplify {
		return nil, ErrTooManyColors
	}
	for bits := 1; !ok && bits < 8; bits++ {
		palette, pixels, ok = indexColors(s.buf, bits)
		Logger().Debug("pixbuf: simplified palette", "dropped_bits", bits, "fits", ok)
	}
	if !ok {
		return nil, ErrTooManyColors
	}
	return &IndexedImage{width: s.width, height: s.height, palette: palette, pixels: pixels}, nil
}

// indexColors builds a palette in first-seen order, dropping the low
// dropBits bits of every channel. It reports false when the palette would
// exceed MaxPaletteSize.
func indexColors(buf []byte, dropBits int) ([]Color, []byte, bool) {
	mask := byte(0xff << dropBits)
	seen := make(map[Color]byte)
	var palette []Color
	pixels := make([]byte, 0, len(buf)/bytesPerPixel)
	for i := 0; i < len(buf); i += bytesPerPixel {
		c := Color{R: buf[i] & mask, G: buf[i+1] & mask, B: buf[i+2] & mask, A: buf[i+3] & mask}
		if buf[i+3] == 255 {
			c.A = 255
		}
		idx, ok := seen[c]
		if !ok {
			if len(palette) == MaxPaletteSize {
				return nil, nil, false
			}
			idx = byte(len(palette))
			seen[c] = idx
			palette = append(palette, c)
		}
		pixels = append(pixels, idx)
	}
	return palette, pixels, true
}
