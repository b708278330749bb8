package pixbuf

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/gogpu/pixbuf/geom"
)

const (
	on  = true
	off = false
)

func TestClipNothing(t *testing.T) {
	c := NewClip(4, 4)
	if !c.IsNothing() {
		t.Fatalf("Mode() = %v, want Nothing", c.Mode())
	}
	for _, v := range c.PixelMap() {
		if !v {
			t.Fatal("PixelMap() has an invalid pixel in Nothing mode")
		}
	}
	for y := range 4 {
		for x := range 4 {
			if !c.IsValid(x, y) {
				t.Errorf("IsValid(%d, %d) = false", x, y)
			}
		}
	}
}

func TestClipSimpleRect(t *testing.T) {
	tests := []struct {
		name string
		rect geom.Rect
		want []bool
	}{
		{
			name: "square",
			rect: geom.NewRect(geom.C(1, 1), geom.C(2, 2)),
			want: []bool{
				off, off, off, off,
				off, on, on, off,
				off, on, on, off,
				off, off, off, off,
			},
		},
		{
			name: "right half",
			rect: geom.NewRect(geom.C(2, 0), geom.C(3, 3)),
			want: []bool{
				off, off, on, on,
				off, off, on, on,
				off, off, on, on,
				off, off, on, on,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClip(4, 4)
			c.SetValidRect(tt.rect)
			if !c.IsSimple() {
				t.Fatalf("Mode() = %v, want Simple", c.Mode())
			}
			got := c.PixelMap()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PixelMap() = %v, want %v", got, tt.want)
			}
			for i, want := range tt.want {
				if v := c.IsValid(i%4, i/4); v != want {
					t.Errorf("IsValid(%d, %d) = %v, want %v", i%4, i/4, v, want)
				}
			}
		})
	}
}

func TestClipSimpleCircle(t *testing.T) {
	c := NewClip(5, 5)
	circle := geom.NewCircle(geom.C(2, 2), 1)
	c.SetValidCircle(circle)
	for y := range 5 {
		for x := range 5 {
			want := circle.Contains(geom.C(x, y))
			if got := c.IsValid(x, y); got != want {
				t.Errorf("IsValid(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestClipComplexOrdering(t *testing.T) {
	c := NewClip(4, 4)

	c.AddRect(geom.NewRect(geom.C(0, 0), geom.C(3, 3)))
	if !c.IsComplex() {
		t.Fatalf("Mode() = %v, want Complex", c.Mode())
	}
	if got := c.PixelMap(); !reflect.DeepEqual(got, make16(on)) {
		t.Errorf("after Add(full) PixelMap() = %v", got)
	}

	c.RemoveRect(geom.NewRect(geom.C(2, 0), geom.C(3, 3)))
	want := []bool{
		on, on, off, off,
		on, on, off, off,
		on, on, off, off,
		on, on, off, off,
	}
	if got := c.PixelMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("after Remove(right half) PixelMap() = %v, want %v", got, want)
	}

	c.AddRect(geom.NewRect(geom.C(3, 0), geom.C(3, 3)))
	want = []bool{
		on, on, off, on,
		on, on, off, on,
		on, on, off, on,
		on, on, off, on,
	}
	if got := c.PixelMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("after Add(last column) PixelMap() = %v, want %v", got, want)
	}
}

func TestClipComplexCircles(t *testing.T) {
	c := NewClip(5, 5)
	c.RemoveRect(geom.NewRect(geom.C(0, 0), geom.C(4, 4)))
	c.AddCircle(geom.NewCircle(geom.C(2, 2), 2))
	c.RemoveCircle(geom.NewCircle(geom.C(2, 2), 0))
	if c.IsValid(0, 0) {
		t.Error("IsValid(0, 0) = true, corner is outside the added circle")
	}
	if !c.IsValid(2, 0) {
		t.Error("IsValid(2, 0) = false, want inside the added circle")
	}
	if c.IsValid(2, 2) {
		t.Error("IsValid(2, 2) = true, center was removed last")
	}
}

func TestClipComplexUnbuiltFailsOpen(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	c := NewClip(4, 4)
	c.SetAutoBuild(false)
	c.RemoveRect(geom.NewRect(geom.C(0, 0), geom.C(3, 3)))

	if !c.IsValid(1, 1) {
		t.Error("IsValid() on unbuilt complex clip = false, want true")
	}
	if !strings.Contains(buf.String(), "pixel map") {
		t.Errorf("expected a warning about the unbuilt pixel map, got %q", buf.String())
	}

	c.UpdatePixelMap()
	if c.IsValid(1, 1) {
		t.Error("IsValid() after UpdatePixelMap = true, want false")
	}
}

func TestClipComplexUnbuiltWarnsOncePerChange(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	warnings := func() int { return strings.Count(buf.String(), "pixel map was built") }

	s := newTestSurface(t, 8, 8, WithClipAutoBuild(false))
	s.Clip().RemoveRect(geom.NewRect(geom.C(0, 0), geom.C(3, 3)))
	s.DrawRect(geom.NewRect(geom.C(0, 0), geom.C(7, 7)), Fill(Red))
	if got := warnings(); got != 1 {
		t.Errorf("warnings after one filled rect = %d, want 1", got)
	}
	if c := mustPixel(t, s, 1, 1); c != Red {
		t.Errorf("pixel (1,1) = %v, want %v from the fail-open clip", c, Red)
	}

	s.Clip().AddRect(geom.NewRect(geom.C(1, 1), geom.C(2, 2)))
	s.DrawLine(geom.C(0, 5), geom.C(7, 5), Blue)
	if got := warnings(); got != 2 {
		t.Errorf("warnings after another clip change = %d, want 2", got)
	}

	s.Clip().UpdatePixelMap()
	s.ClearAware(Green)
	if got := warnings(); got != 2 {
		t.Errorf("warnings after UpdatePixelMap = %d, want 2", got)
	}
}

func TestClipPixelMapBuildsComplex(t *testing.T) {
	c := NewClip(2, 2)
	c.SetAutoBuild(false)
	c.RemoveRect(geom.NewRect(geom.C(0, 0), geom.C(0, 1)))
	want := []bool{off, on, off, on}
	if got := c.PixelMap(); !reflect.DeepEqual(got, want) {
		t.Errorf("PixelMap() = %v, want %v", got, want)
	}
	if c.IsValid(0, 0) {
		t.Error("PixelMap() should leave the built mask in place")
	}
}

func TestClipCustom(t *testing.T) {
	c := NewClip(2, 2)
	mask := []bool{on, off, off, on}
	if err := c.SetCustom(mask); err != nil {
		t.Fatalf("SetCustom() error = %v", err)
	}
	mask[0] = false
	if !c.IsValid(0, 0) {
		t.Error("SetCustom() should copy the mask")
	}
	if c.IsValid(1, 0) || c.IsValid(5, 5) {
		t.Error("IsValid() = true for a masked or out of range pixel")
	}

	err := c.SetCustom([]bool{on, on, on})
	var sizeErr *MaskSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("SetCustom(short) error = %v, want *MaskSizeError", err)
	}
	if sizeErr.Expected != 4 || sizeErr.Actual != 3 {
		t.Errorf("MaskSizeError = %+v", sizeErr)
	}
	if !c.IsCustom() {
		t.Error("failed SetCustom() changed the mode")
	}
}

func TestClipRestore(t *testing.T) {
	c := NewClip(4, 4)
	if c.Restore() {
		t.Error("Restore() on a fresh clip = true")
	}

	c.SetValidRect(geom.NewRect(geom.C(0, 0), geom.C(1, 1)))
	c.SetValidCircle(geom.NewCircle(geom.C(3, 3), 0))
	if !c.Restore() {
		t.Fatal("Restore() = false")
	}
	if !c.IsSimple() || !c.IsValid(1, 1) || c.IsValid(3, 3) {
		t.Error("Restore() did not bring back the rectangle")
	}
	if c.Restore() {
		t.Error("second Restore() = true, only one level is kept")
	}

	c.AddRect(geom.NewRect(geom.C(0, 0), geom.C(0, 0)))
	c.AddRect(geom.NewRect(geom.C(1, 1), geom.C(1, 1)))
	c.SetAllValid()
	if !c.Restore() || !c.IsComplex() {
		t.Fatalf("Restore() mode = %v, want Complex", c.Mode())
	}
	if !c.IsValid(2, 2) {
		t.Error("restored complex clip lost its mask")
	}
}

func make16(v bool) []bool {
	out := make([]bool, 16)
	for i := range out {
		out[i] = v
	}
	return out
}
