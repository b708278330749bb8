package pixbuf

import (
	"bytes"
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/gogpu/pixbuf/geom"
)

// Verify at compile time that Surface implements image.Image.
var _ image.Image = (*Surface)(nil)

func newTestSurface(t *testing.T, w, h int, opts ...SurfaceOption) *Surface {
	t.Helper()
	s, err := AllocSurface(w, h, opts...)
	if err != nil {
		t.Fatalf("AllocSurface(%d, %d) error = %v", w, h, err)
	}
	return s
}

func mustPixel(t *testing.T, s *Surface, x, y int) Color {
	t.Helper()
	c, ok := s.GetPixel(x, y, false)
	if !ok {
		t.Fatalf("GetPixel(%d, %d) out of range", x, y)
	}
	return c
}

func TestNewSurfaceBufferSize(t *testing.T) {
	_, err := NewSurface(make([]byte, 10), 2, 2)
	var sizeErr *BufferSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("NewSurface() error = %v, want *BufferSizeError", err)
	}
	if sizeErr.Expected != 16 || sizeErr.Actual != 10 {
		t.Errorf("BufferSizeError = %+v, want Expected 16 Actual 10", sizeErr)
	}

	if _, err := NewSurface(nil, -1, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewSurface(-1, -1) error = %v, want ErrInvalidDimensions", err)
	}

	buf := make([]byte, 3*2*4)
	s, err := NewSurface(buf, 3, 2)
	if err != nil {
		t.Fatalf("NewSurface() error = %v", err)
	}
	s.SetPixel(2, 1, Red)
	if buf[s.Index(2, 1)] != 255 {
		t.Error("surface does not write into the borrowed buffer")
	}
}

func TestNewSurfaceOptions(t *testing.T) {
	s := newTestSurface(t, 4, 4, WithTranslate(geom.C(1, 2)), WithClipAutoBuild(false))
	if got := s.Translate(); got != geom.C(1, 2) {
		t.Errorf("Translate() = %v, want (1,2)", got)
	}
	if s.Clip().AutoBuild() {
		t.Error("WithClipAutoBuild(false) not applied")
	}

	clip := NewClip(4, 4)
	clip.SetAutoBuild(false)
	s = newTestSurface(t, 4, 4, WithClip(clip))
	if s.Clip() != clip {
		t.Error("WithClip() clip not installed")
	}
	if clip.AutoBuild() {
		t.Error("NewSurface() overrode the clip auto build setting")
	}

	_, err := AllocSurface(5, 5, WithClip(NewClip(4, 4)))
	var maskErr *MaskSizeError
	if !errors.As(err, &maskErr) {
		t.Errorf("AllocSurface() with mismatched clip error = %v, want *MaskSizeError", err)
	}
}

func TestSetPixelAlpha(t *testing.T) {
	t.Run("transparent never writes", func(t *testing.T) {
		s := newTestSurface(t, 2, 2)
		s.Clear(RGBA(1, 2, 3, 4))
		before := bytes.Clone(s.Buffer())
		s.SetPixel(0, 0, Transparent)
		s.SetPixel(1, 1, RGBA(255, 255, 255, 0))
		if !bytes.Equal(before, s.Buffer()) {
			t.Error("SetPixel() with alpha 0 modified the buffer")
		}
	})

	t.Run("opaque overwrites", func(t *testing.T) {
		s := newTestSurface(t, 2, 2)
		s.Clear(RGBA(1, 2, 3, 4))
		s.SetPixel(1, 0, Cyan)
		if got := mustPixel(t, s, 1, 0); got != Cyan {
			t.Errorf("pixel = %v, want %v", got, Cyan)
		}
	})

	tests := []struct {
		name       string
		background Color
		src        Color
		want       Color
	}{
		{"half red over white", White, RGBA(255, 0, 0, 128), RGBA(255, 127, 127, 255)},
		{"half red over half blue", RGBA(0, 0, 255, 128), RGBA(255, 0, 0, 128), RGBA(170, 0, 85, 192)},
		{"over transparent", Transparent, RGBA(10, 20, 30, 40), RGBA(10, 20, 30, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSurface(t, 1, 1)
			s.Clear(tt.background)
			s.SetPixel(0, 0, tt.src)
			if got := mustPixel(t, s, 0, 0); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	s := newTestSurface(t, 3, 3)
	before := bytes.Clone(s.Buffer())
	for _, p := range []geom.Coord{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 3}, {X: 1 << 30, Y: 1 << 30}, {X: -3, Y: 1}} {
		s.SetPixel(p.X, p.Y, Red)
	}
	if !bytes.Equal(before, s.Buffer()) {
		t.Error("out of range SetPixel() modified the buffer")
	}
	if _, ok := s.GetPixel(3, 0, false); ok {
		t.Error("GetPixel(3, 0) reported in range")
	}
}

func TestTranslateInvariance(t *testing.T) {
	translates := []geom.Coord{{X: 0, Y: 0}, {X: 2, Y: 3}, {X: -1, Y: 4}, {X: -5, Y: -5}}
	points := []geom.Coord{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 3, Y: -2}, {X: 6, Y: 6}}
	for _, tr := range translates {
		for _, p := range points {
			a := newTestSurface(t, 8, 8, WithTranslate(tr))
			b := newTestSurface(t, 8, 8)
			a.SetPixel(p.X, p.Y, Green)
			b.SetPixel(p.X+tr.X, p.Y+tr.Y, Green)
			if !bytes.Equal(a.Buffer(), b.Buffer()) {
				t.Errorf("translate %v point %v: buffers differ", tr, p)
			}
		}
	}
}

func TestIsOnScreen(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	for _, tt := range []struct {
		p    geom.Coord
		want bool
	}{
		{geom.C(0, 0), true},
		{geom.C(9, 9), true},
		{geom.C(10, 10), false},
		{geom.C(4, -1), false},
		{geom.C(-1, 4), false},
	} {
		if got := s.IsOnScreen(tt.p); got != tt.want {
			t.Errorf("IsOnScreen(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	s.SetTranslate(geom.C(2, -1))
	for _, tt := range []struct {
		p    geom.Coord
		want bool
	}{
		{geom.C(4, 4), true},
		{geom.C(7, 10), true},
		{geom.C(8, 0), false},
		{geom.C(-3, 5), false},
	} {
		if got := s.IsOnScreen(tt.p); got != tt.want {
			t.Errorf("translated IsOnScreen(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestTranslateHelpers(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	if old := s.SetTranslate(geom.C(1, 1)); old != (geom.Coord{}) {
		t.Errorf("SetTranslate() old = %v, want (0,0)", old)
	}
	s.UpdateTranslate(geom.C(1, -2))
	if got := s.Translate(); got != geom.C(2, -1) {
		t.Errorf("Translate() = %v, want (2,-1)", got)
	}

	s.WithTranslate(geom.C(0, 0), func(s *Surface) {
		s.SetPixel(0, 0, Red)
	})
	if got := s.Translate(); got != geom.C(2, -1) {
		t.Errorf("WithTranslate() did not restore, Translate() = %v", got)
	}
	if got := mustPixel(t, s, 0, 0); got != Red {
		t.Errorf("pixel (0,0) = %v, want Red", got)
	}
	if got, _ := s.GetPixel(-2, 1, true); got != Red {
		t.Errorf("GetPixel(-2, 1, translated) = %v, want Red", got)
	}
}

func TestDrawOffset(t *testing.T) {
	s := newTestSurface(t, 6, 6, WithTranslate(geom.C(1, 0)))
	d := NewDrawable(geom.NewLine(geom.C(0, 0), geom.C(0, 0)), Stroke(Yellow))
	s.DrawOffset(geom.C(2, 3), d)
	if got := mustPixel(t, s, 3, 3); got != Yellow {
		t.Errorf("pixel (3,3) = %v, want Yellow", got)
	}
	if got := s.Translate(); got != geom.C(1, 0) {
		t.Errorf("DrawOffset() changed Translate() to %v", got)
	}
}

func TestClearAndClip(t *testing.T) {
	s := newTestSurface(t, 4, 4)
	s.Clip().SetValidRect(geom.NewRect(geom.C(1, 1), geom.C(2, 2)))

	s.ClearAware(Red)
	for y := range 4 {
		for x := range 4 {
			want := Transparent
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				want = Red
			}
			if got := mustPixel(t, s, x, y); got != want {
				t.Errorf("after ClearAware pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	s.Clear(Blue)
	for y := range 4 {
		for x := range 4 {
			if got := mustPixel(t, s, x, y); got != Blue {
				t.Fatalf("Clear() ignored pixel (%d,%d) = %v", x, y, got)
			}
		}
	}
}

func TestEndToEndStrokeRect(t *testing.T) {
	s := newTestSurface(t, 10, 10)
	s.Clear(Blue)
	s.DrawRect(geom.NewRect(geom.C(1, 1), geom.C(8, 8)), Stroke(Red))

	img := s.CopyToImage()
	for _, tt := range []struct {
		x, y int
		want Color
	}{
		{1, 1, Red},
		{8, 8, Red},
		{4, 1, Red},
		{1, 6, Red},
		{4, 4, Blue},
		{0, 0, Blue},
		{9, 9, Blue},
	} {
		got, ok := img.GetPixel(tt.x, tt.y)
		if !ok || got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	s.Clear(Black)
	if got, _ := img.GetPixel(1, 1); got != Red {
		t.Error("CopyToImage() shares memory with the surface")
	}
}

func TestDrawLineSymmetric(t *testing.T) {
	pairs := [][2]geom.Coord{
		{geom.C(0, 0), geom.C(9, 3)},
		{geom.C(2, 9), geom.C(7, 0)},
		{geom.C(0, 5), geom.C(9, 5)},
		{geom.C(4, 0), geom.C(4, 9)},
		{geom.C(1, 8), geom.C(8, 1)},
		{geom.C(-3, 2), geom.C(12, 7)},
	}
	for _, p := range pairs {
		a := newTestSurface(t, 10, 10)
		b := newTestSurface(t, 10, 10)
		a.DrawLine(p[0], p[1], White)
		b.DrawLine(p[1], p[0], White)
		if !bytes.Equal(a.Buffer(), b.Buffer()) {
			t.Errorf("DrawLine(%v, %v) differs from reversed", p[0], p[1])
		}
	}
}

func TestSurfaceSave(t *testing.T) {
	s := newTestSurface(t, 3, 2)
	s.Clear(Orange)
	s.SetPixel(2, 1, RGBA(1, 2, 3, 200))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if !bytes.Equal(img.Pixels(), s.Buffer()) {
		t.Errorf("round trip pixels = %v, want %v", img.Pixels(), s.Buffer())
	}
}
