package pixbuf

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/pixbuf/geom"
)

func TestNewIndexedImageErrors(t *testing.T) {
	palette := []Color{Red, Green}
	bigPalette := make([]Color, MaxPaletteSize+1)

	tests := []struct {
		name    string
		w, h    int
		palette []Color
		pixels  []byte
		check   func(error) bool
	}{
		{"too wide", 256, 1, palette, make([]byte, 256), func(err error) bool {
			var e *IndexedSizeError
			return errors.As(err, &e) && e.Width == 256
		}},
		{"too many colors", 1, 1, bigPalette, []byte{0}, func(err error) bool {
			return errors.Is(err, ErrTooManyColors)
		}},
		{"index outside palette", 2, 1, palette, []byte{0, 2}, func(err error) bool {
			return errors.Is(err, ErrPaletteIndex)
		}},
		{"pixel count", 2, 2, palette, []byte{0, 1, 0}, func(err error) bool {
			var e *ImageSizeError
			return errors.As(err, &e) && e.Expected == 4 && e.Actual == 3
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndexedImage(tt.w, tt.h, tt.palette, tt.pixels)
			if !tt.check(err) {
				t.Errorf("NewIndexedImage() error = %v", err)
			}
		})
	}
}

func TestIndexedImage(t *testing.T) {
	palette := []Color{Transparent, Red, Blue}
	pixels := []byte{1, 0, 2, 2}
	img, err := NewIndexedImage(2, 2, palette, pixels)
	if err != nil {
		t.Fatalf("NewIndexedImage() error = %v", err)
	}
	pixels[0] = 2
	palette[1] = Green

	if c, ok := img.ColorAt(0, 0); !ok || c != Red {
		t.Errorf("ColorAt(0, 0) = %v, want Red", c)
	}
	if _, ok := img.ColorAt(2, 0); ok {
		t.Error("ColorAt(2, 0) reported ok")
	}
	assertColors(t, img.ToImage(), 2, 2, []Color{Red, Transparent, Blue, Blue})

	s := newTestSurface(t, 3, 3)
	s.Clear(White)
	s.Draw(&RenderableIndexedImage{Image: img, Pos: geom.C(1, 1)})
	for _, tt := range []struct {
		x, y int
		want Color
	}{
		{1, 1, Red},
		{2, 1, White},
		{1, 2, Blue},
		{0, 0, White},
	} {
		if got := mustPixel(t, s, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAnimatedImage(t *testing.T) {
	palette := []Color{Red, Green, Blue}
	frames := [][]byte{{0}, {1}, {2}}

	if _, err := NewAnimatedImage(1, 1, palette, nil, time.Second, true); !errors.Is(err, ErrNoFrames) {
		t.Errorf("NewAnimatedImage(no frames) error = %v, want ErrNoFrames", err)
	}

	anim, err := NewAnimatedImage(1, 1, palette, frames, 100*time.Millisecond, true)
	if err != nil {
		t.Fatalf("NewAnimatedImage() error = %v", err)
	}
	steps := []struct {
		delta time.Duration
		want  int
	}{
		{50 * time.Millisecond, 0},
		{50 * time.Millisecond, 1},
		{250 * time.Millisecond, 0},
		{0, 0},
	}
	for i, step := range steps {
		anim.Update(step.delta)
		if got := anim.CurrentFrame(); got != step.want {
			t.Errorf("step %d: CurrentFrame() = %d, want %d", i, got, step.want)
		}
	}
	if anim.Done() {
		t.Error("looping animation reported Done()")
	}

	s := newTestSurface(t, 1, 1)
	anim.SetFrame(2)
	s.Draw(&RenderableAnimatedImage{Image: anim, Pos: geom.C(0, 0)})
	if got := mustPixel(t, s, 0, 0); got != Blue {
		t.Errorf("drawn frame = %v, want Blue", got)
	}

	once, err := NewAnimatedImage(1, 1, palette, frames, 100*time.Millisecond, false)
	if err != nil {
		t.Fatalf("NewAnimatedImage() error = %v", err)
	}
	once.Update(time.Second)
	if once.CurrentFrame() != 2 || !once.Done() {
		t.Errorf("non looping animation at frame %d, Done() = %v", once.CurrentFrame(), once.Done())
	}
	once.Reset()
	if once.CurrentFrame() != 0 || once.Done() {
		t.Error("Reset() did not rewind")
	}

	if f, ok := once.Frame(1); !ok || f.Pixels()[0] != 1 {
		t.Error("Frame(1) wrong")
	}
	if _, ok := once.Frame(3); ok {
		t.Error("Frame(3) reported ok")
	}
}

func TestCopyToIndexedImage(t *testing.T) {
	s := newTestSurface(t, 3, 1)
	s.SetPixel(0, 0, Red)
	s.SetPixel(1, 0, Blue)
	s.SetPixel(2, 0, Red)
	img, err := s.CopyToIndexedImage(false)
	if err != nil {
		t.Fatalf("CopyToIndexedImage() error = %v", err)
	}
	if got := img.Palette(); len(got) != 2 || got[0] != Red || got[1] != Blue {
		t.Errorf("Palette() = %v, want [Red Blue]", got)
	}
	if got := img.Pixels(); got[0] != 0 || got[1] != 1 || got[2] != 0 {
		t.Errorf("Pixels() = %v, want [0 1 0]", got)
	}

	big := newTestSurface(t, 256, 1)
	if _, err := big.CopyToIndexedImage(true); !errors.As(err, new(*IndexedSizeError)) {
		t.Errorf("oversized CopyToIndexedImage() error = %v, want *IndexedSizeError", err)
	}
}

func TestCopyToIndexedImageSimplify(t *testing.T) {
	s := newTestSurface(t, 16, 16)
	for i := range 256 {
		s.SetPixel(i%16, i/16, RGB(uint8(i), 0, 0))
	}
	if _, err := s.CopyToIndexedImage(false); !errors.Is(err, ErrTooManyColors) {
		t.Fatalf("CopyToIndexedImage(false) error = %v, want ErrTooManyColors", err)
	}

	img, err := s.CopyToIndexedImage(true)
	if err != nil {
		t.Fatalf("CopyToIndexedImage(true) error = %v", err)
	}
	if got := len(img.Palette()); got != 128 {
		t.Errorf("simplified palette has %d colors, want 128", got)
	}
	for _, c := range img.Palette() {
		if c.A != 255 || c.R&1 != 0 {
			t.Errorf("simplified color %v keeps low bits or loses opacity", c)
		}
	}
}

func TestRenderableImageOffset(t *testing.T) {
	img := mustImage(t, []Color{
		Red, Green, Blue,
		Yellow, Cyan, Magenta,
		Orange, Purple, Brown,
	}, 3, 3)

	tests := []struct {
		name    string
		offset  ImageOffset
		topLeft geom.Coord
	}{
		{"top left", OffsetTopLeft, geom.C(5, 5)},
		{"center", OffsetCenter, geom.C(4, 4)},
		{"custom", CustomOffset(geom.C(-5, 1)), geom.C(0, 6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(t, 10, 10)
			r := NewRenderableImage(img, geom.C(5, 5), tt.offset)
			s.Draw(r)
			if got := mustPixel(t, s, tt.topLeft.X, tt.topLeft.Y); got != Red {
				t.Errorf("top-left pixel %v = %v, want Red", tt.topLeft, got)
			}
			if got := mustPixel(t, s, tt.topLeft.X+2, tt.topLeft.Y+2); got != Brown {
				t.Errorf("bottom-right pixel = %v, want Brown", got)
			}
		})
	}

	r := NewRenderableImage(img, geom.C(0, 0), OffsetTopLeft)
	r.UpdatePosition(geom.C(2, 1))
	if r.Pos != geom.C(2, 1) {
		t.Errorf("UpdatePosition() Pos = %v, want (2,1)", r.Pos)
	}
}
