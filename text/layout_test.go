package text

import (
	"testing"

	"github.com/gogpu/pixbuf/geom"
)

func TestPositioningCalc(t *testing.T) {
	origin := geom.C(100, 50)
	tests := []struct {
		p    Positioning
		want geom.Coord
	}{
		{LeftTop, geom.C(100, 50)},
		{CenterTop, geom.C(90, 50)},
		{RightTop, geom.C(80, 50)},
		{LeftCenter, geom.C(100, 45)},
		{Center, geom.C(90, 45)},
		{RightCenter, geom.C(80, 45)},
		{LeftBottom, geom.C(100, 40)},
		{CenterBottom, geom.C(90, 40)},
		{RightBottom, geom.C(80, 40)},
	}
	for _, tt := range tests {
		if got := tt.p.Calc(origin, 20, 10); got != tt.want {
			t.Errorf("%v.Calc() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPosCoord(t *testing.T) {
	if got := Px(3, 4).Coord(Standard6x7); got != geom.C(3, 4) {
		t.Errorf("Px(3,4).Coord() = %v, want (3,4)", got)
	}
	if got := ColRow(2, 3).Coord(Standard6x7); got != geom.C(14, 24) {
		t.Errorf("ColRow(2,3).Coord() = %v, want (14,24)", got)
	}
}

func TestMeasure(t *testing.T) {
	lines := [][]byte{[]byte("abc"), []byte("abcde")}
	w, h := Measure(lines, Format{})
	if w != 35 || h != 16 {
		t.Errorf("Measure() = %d, %d, want 35, 16", w, h)
	}
}

func TestLayout(t *testing.T) {
	lines := [][]byte{[]byte("a b"), []byte("c")}
	got := Layout(lines, Px(10, 20), Format{})
	want := []PlacedGlyph{
		{Code: 'a', At: geom.C(10, 20)},
		{Code: 'b', At: geom.C(24, 20)},
		{Code: 'c', At: geom.C(10, 28)},
	}
	if len(got) != len(want) {
		t.Fatalf("Layout() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Layout()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLayoutAnchoredAndAdjusted(t *testing.T) {
	f := Format{Positioning: RightBottom, Adjust: geom.C(1, 2), CharWidth: 10, LineHeight: 10}
	got := Layout([][]byte{[]byte("ab")}, Px(20, 10), f)
	if len(got) != 2 {
		t.Fatalf("Layout() = %v, want 2 glyphs", got)
	}
	if got[0].At != geom.C(0, 0) {
		t.Errorf("first glyph at %v, want (0,0)", got[0].At)
	}
	if got[1].At != geom.C(11, 2) {
		t.Errorf("second glyph at %v, want (11,2)", got[1].At)
	}
}
