package pixbuf

import (
	"slices"
	"testing"

	"github.com/gogpu/pixbuf/geom"
)

func pointSet(points []geom.Coord) map[geom.Coord]bool {
	set := make(map[geom.Coord]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

func TestDrawablePoints(t *testing.T) {
	rect := geom.NewRect(geom.C(0, 0), geom.C(3, 3))
	tests := []struct {
		name  string
		shape geom.Shape
		kind  DrawType
		want  int
	}{
		{"rect stroke", rect, Stroke(Red), 12},
		{"rect fill", rect, Fill(Red), 16},
		{"single pixel line", geom.NewLine(geom.C(2, 2), geom.C(2, 2)), Stroke(Red), 1},
		{"horizontal line", geom.NewLine(geom.C(0, 0), geom.C(4, 0)), Stroke(Red), 5},
		{"zero circle", geom.NewCircle(geom.C(5, 5), 0), Fill(Red), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrawable(tt.shape, tt.kind)
			if got := len(d.Points()); got != tt.want {
				t.Errorf("len(Points()) = %d, want %d", got, tt.want)
			}
			if len(pointSet(d.Points())) != len(d.Points()) {
				t.Error("Points() contains duplicates")
			}
		})
	}
}

func TestDrawableFillCoversStroke(t *testing.T) {
	shapes := []geom.Shape{
		geom.NewCircle(geom.C(10, 10), 6),
		geom.NewEllipse(geom.C(10, 10), 14, 8),
		geom.NewTriangle(geom.C(0, 0), geom.C(12, 3), geom.C(4, 11)),
		geom.NewPolygon(geom.C(0, 0), geom.C(10, 0), geom.C(10, 10), geom.C(5, 4), geom.C(0, 10)),
	}
	for _, shape := range shapes {
		t.Run(shape.Kind().String(), func(t *testing.T) {
			stroke := NewDrawable(shape, Stroke(Red))
			fill := pointSet(NewDrawable(shape, Fill(Red)).Points())
			for _, p := range stroke.Points() {
				if !fill[p] {
					t.Errorf("stroke point %v missing from fill", p)
				}
			}
		})
	}
}

func TestDrawableWithDrawType(t *testing.T) {
	rect := geom.NewRect(geom.C(0, 0), geom.C(3, 3))
	d := NewDrawable(rect, Stroke(Red))

	recolored := d.WithDrawType(Stroke(Blue))
	if recolored.DrawType().Color != Blue {
		t.Errorf("WithDrawType() color = %v, want Blue", recolored.DrawType().Color)
	}
	if !slices.Equal(recolored.Points(), d.Points()) {
		t.Error("same kind should keep the points")
	}

	filled := d.WithDrawType(Fill(Blue))
	if got := len(filled.Points()); got != 16 {
		t.Errorf("fill points = %d, want 16", got)
	}
	if d.DrawType() != Stroke(Red) {
		t.Error("WithDrawType() modified the receiver")
	}
}

func TestDrawableTransforms(t *testing.T) {
	line := NewDrawable(geom.NewLine(geom.C(0, 0), geom.C(4, 0)), Stroke(Red))

	moved := line.WithTranslation(geom.C(2, 3))
	want := pointSet(nil)
	for _, p := range line.Points() {
		want[p.Add(geom.C(2, 3))] = true
	}
	got := pointSet(moved.Points())
	for p := range want {
		if !got[p] {
			t.Errorf("WithTranslation() missing %v", p)
		}
	}

	if b := line.WithMove(geom.C(7, 8)).Bounds(); b.TopLeft != geom.C(7, 8) {
		t.Errorf("WithMove() bounds start at %v, want (7,8)", b.TopLeft)
	}

	rotated := line.WithRotationAround(90, geom.C(0, 0))
	if l, ok := rotated.Shape().(geom.Line); !ok || l.End != geom.C(0, 4) {
		t.Errorf("WithRotationAround(90) = %v, want line ending at (0,4)", rotated.Shape())
	}

	rect := NewDrawable(geom.NewRect(geom.C(0, 0), geom.C(2, 2)), Fill(Red))
	if b := rect.WithScale(2).Bounds(); b != geom.NewRect(geom.C(-1, -1), geom.C(3, 3)) {
		t.Errorf("WithScale(2) bounds = %v, want (-1,-1)-(3,3)", b)
	}
}

func TestDrawableRender(t *testing.T) {
	s := newTestSurface(t, 9, 9)
	s.Draw(NewDrawable(geom.NewCircle(geom.C(4, 4), 3), Fill(Magenta)))
	if got := mustPixel(t, s, 4, 4); got != Magenta {
		t.Errorf("centre = %v, want Magenta", got)
	}
	if got := mustPixel(t, s, 0, 0); got != Transparent {
		t.Errorf("corner = %v, want untouched", got)
	}

	s.Clear(Transparent)
	s.Draw(NewDrawable(geom.NewCircle(geom.C(4, 4), 3), Stroke(Magenta)))
	if got := mustPixel(t, s, 4, 4); got != Transparent {
		t.Errorf("stroke centre = %v, want untouched", got)
	}
	if got := mustPixel(t, s, 4, 1); got != Magenta {
		t.Errorf("stroke top = %v, want Magenta", got)
	}
}

func TestDrawableTranslucentBlendsOnce(t *testing.T) {
	s := newTestSurface(t, 12, 12)
	s.Clear(White)
	s.Draw(NewDrawable(geom.NewCircle(geom.C(6, 6), 5), Stroke(RGBA(0, 0, 0, 128))))
	want := RGBA(127, 127, 127, 255)
	for y := range 12 {
		for x := range 12 {
			if got := mustPixel(t, s, x, y); got != White && got != want {
				t.Errorf("pixel (%d,%d) = %v, blended more than once", x, y, got)
			}
		}
	}
}
