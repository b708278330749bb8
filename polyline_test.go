package pixbuf

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/pixbuf/geom"
)

func TestPolylineErrors(t *testing.T) {
	var zero Polyline
	err := zero.LineTo(geom.C(1, 1))
	if !errors.Is(err, ErrPolylineInvalid) {
		t.Fatalf("zero LineTo() error = %v, want ErrPolylineInvalid", err)
	}
	var plErr *PolylineError
	if !errors.As(err, &plErr) || plErr.Op != "line to" {
		t.Errorf("error = %#v, want *PolylineError with Op line to", err)
	}

	p := NewPolyline(geom.C(0, 0), Red)
	if err := p.LineTo(geom.C(5, 0)); err != nil {
		t.Fatalf("LineTo() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !p.IsClosed() {
		t.Error("IsClosed() = false after Close()")
	}
	for name, fn := range map[string]func() error{
		"line to":    func() error { return p.LineTo(geom.C(1, 1)) },
		"arc around": func() error { return p.ArcAround(geom.C(0, 0), 3, 0, 90) },
		"close":      p.Close,
	} {
		if err := fn(); !errors.Is(err, ErrPolylineClosed) {
			t.Errorf("%s after Close() error = %v, want ErrPolylineClosed", name, err)
		}
	}
	if p.Len() != 3 {
		t.Errorf("Len() = %d, want 3", p.Len())
	}
}

func TestPolylineRender(t *testing.T) {
	p := NewPolyline(geom.C(1, 1), Green)
	if err := p.LineTo(geom.C(5, 1)); err != nil {
		t.Fatal(err)
	}
	if err := p.LineTo(geom.C(5, 4)); err != nil {
		t.Fatal(err)
	}

	s := newTestSurface(t, 8, 8)
	s.Draw(p)
	for _, on := range []geom.Coord{geom.C(1, 1), geom.C(3, 1), geom.C(5, 1), geom.C(5, 3), geom.C(5, 4)} {
		if got := mustPixel(t, s, on.X, on.Y); got != Green {
			t.Errorf("pixel %v = %v, want Green", on, got)
		}
	}
	if got := mustPixel(t, s, 1, 4); got != Transparent {
		t.Errorf("pixel (1,4) = %v, want untouched", got)
	}
}

func TestPolylineArcContinues(t *testing.T) {
	p := NewPolyline(geom.C(5, 0), White)
	if err := p.ArcAround(geom.C(5, 5), 5, 270, 90); err != nil {
		t.Fatal(err)
	}
	if err := p.LineTo(geom.C(10, 9)); err != nil {
		t.Fatal(err)
	}

	s := newTestSurface(t, 12, 12)
	s.Draw(p)
	for _, on := range []geom.Coord{geom.C(5, 0), geom.C(10, 5), geom.C(10, 7), geom.C(10, 9)} {
		if got := mustPixel(t, s, on.X, on.Y); got != White {
			t.Errorf("pixel %v = %v, want White", on, got)
		}
	}
}

func TestPolylineRenderEmptyWarns(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	s := newTestSurface(t, 2, 2)
	s.Draw(&Polyline{})
	if !strings.Contains(buf.String(), "no start") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestRoundedRect(t *testing.T) {
	r := geom.NewRect(geom.C(2, 2), geom.C(17, 17))
	p := RoundedRect(r, 4, Red)
	if !p.IsClosed() {
		t.Error("RoundedRect() is not closed")
	}
	if err := p.LineTo(geom.C(0, 0)); !errors.Is(err, ErrPolylineClosed) {
		t.Errorf("LineTo() on rounded rect error = %v, want ErrPolylineClosed", err)
	}

	s := newTestSurface(t, 20, 20)
	s.Draw(p)
	for _, on := range []geom.Coord{geom.C(9, 2), geom.C(17, 9), geom.C(9, 17), geom.C(2, 9), geom.C(17, 6), geom.C(13, 2)} {
		if got := mustPixel(t, s, on.X, on.Y); got != Red {
			t.Errorf("edge pixel %v = %v, want Red", on, got)
		}
	}
	for _, off := range []geom.Coord{geom.C(2, 2), geom.C(17, 17), geom.C(9, 9)} {
		if got := mustPixel(t, s, off.X, off.Y); got != Transparent {
			t.Errorf("pixel %v = %v, want untouched", off, got)
		}
	}

	huge := RoundedRect(geom.NewRect(geom.C(0, 0), geom.C(4, 10)), 50, Red)
	if huge.Len() != 9 {
		t.Errorf("Len() = %d, want 9", huge.Len())
	}
}
