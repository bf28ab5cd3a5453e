package xenon

import (
	"testing"

	"github.com/vovakirdan/xenon/internal/core"
)

func TestGlyphRect(t *testing.T) {
	tests := []struct {
		name string
		ch   rune
		want core.FRect
	}{
		{"space", ' ', core.NewFRect(0, 0, 8, 8)},
		{"A", 'A', core.NewFRect(8, 16, 8, 8)},   // index 33: row 2, col 1
		{"zero", '0', core.NewFRect(0, 8, 8, 8)}, // index 16: row 1, col 0
		{"tilde", '~', core.NewFRect(14*8, 5*8, 8, 8)},
		{"control clamps", '\n', core.NewFRect(0, 0, 8, 8)},
		{"del clamps", 0x7F, core.NewFRect(0, 0, 8, 8)},
		{"non-ascii clamps", 'é', core.NewFRect(0, 0, 8, 8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := glyphRect(tc.ch, 8, 8, 16); got != tc.want {
				t.Errorf("glyphRect(%q) = %+v, expected %+v", tc.ch, got, tc.want)
			}
		})
	}
}
