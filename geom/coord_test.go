package geom

import "testing"

func TestCoordArithmetic(t *testing.T) {
	a, b := C(3, 4), C(1, -2)
	if got := a.Add(b); got != C(4, 2) {
		t.Errorf("Add() = %v, want (4,2)", got)
	}
	if got := a.Sub(b); got != C(2, 6) {
		t.Errorf("Sub() = %v, want (2,6)", got)
	}
	if got := C(0, 0).Distance(a); got != 5 {
		t.Errorf("Distance() = %d, want 5", got)
	}
	if got := C(0, 0).MidPoint(C(4, 6)); got != C(2, 3) {
		t.Errorf("MidPoint() = %v, want (2,3)", got)
	}
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want Coord
	}{
		{0, C(15, 10)},
		{90, C(10, 15)},
		{180, C(5, 10)},
		{270, C(10, 5)},
	}
	for _, tt := range tests {
		if got := FromAngle(C(10, 10), 5, tt.deg); got != tt.want {
			t.Errorf("FromAngle(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		start, end int
		t          float64
		want       int
	}{
		{0, 10, 0, 0},
		{0, 10, 0.5, 5},
		{0, 10, 1, 10},
		{10, 0, 0.25, 8},
	}
	for _, tt := range tests {
		if got := Lerp(tt.start, tt.end, tt.t); got != tt.want {
			t.Errorf("Lerp(%d, %d, %v) = %d, want %d", tt.start, tt.end, tt.t, got, tt.want)
		}
	}
}

func TestMatrixAround(t *testing.T) {
	m := Around(Rotate(90), C(5, 5))
	if got := m.TransformCoord(C(6, 5)); got != C(5, 6) {
		t.Errorf("Around(Rotate(90)).TransformCoord((6,5)) = %v, want (5,6)", got)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if !Translate(3, 4).IsTranslation() {
		t.Error("Translate().IsTranslation() = false")
	}
}
