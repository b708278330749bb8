package text

import (
	"slices"
	"testing"
)

func TestGlyphCode(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'A', 'A'},
		{'z', 'z'},
		{' ', CodeSpace},
		{'\t', CodeTab},
		{'~', '~'},
		{'…', CodeEllipsis},
		{'£', CodePound},
		{'€', CodeEuro},
		{'°', CodeDegree},
		{'✓', CodeCheck},
		{'\x01', CodeUnknown},
		{'\x7f', CodeUnknown},
		{'漢', CodeUnknown},
	}
	for _, tt := range tests {
		if got := GlyphCode(tt.r); got != tt.want {
			t.Errorf("GlyphCode(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ＡＢＣ", "ABC"},
		{"e\u0301", "\u00e9"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLines(t *testing.T) {
	got := Lines("ＡＢ c…", AtCol(3))
	want := [][]byte{{'A', 'B', ' '}, {'c', CodeEllipsis}}
	if len(got) != len(want) {
		t.Fatalf("Lines() = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("Lines()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !IsBlank(' ') || !IsBlank('\t') {
		t.Error("IsBlank(space/tab) = false, want true")
	}
	if IsBlank('A') || IsBlank(CodeUnknown) {
		t.Error("IsBlank(A/unknown) = true, want false")
	}
}
