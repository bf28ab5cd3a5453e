package core

import "testing"

func TestFRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     FRect
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching right edge counts",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "touching bottom edge counts",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "contained box",
			a:        NewFRect(0, 0, 20, 20),
			b:        NewFRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "just past the edge",
			a:        NewFRect(0, 0, 10, 10),
			b:        NewFRect(10.5, 0, 10, 10),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFRectEdges(t *testing.T) {
	r := NewFRect(5, 10, 20, 16)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 26 {
		t.Errorf("Bottom() = %v, expected 26", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 18 {
		t.Errorf("Center() = (%v, %v), expected (15, 18)", cx, cy)
	}

	c := CenteredAt(cx, cy, 64, 64)
	if c.X != -17 || c.Y != -14 {
		t.Errorf("CenteredAt() origin = (%v, %v), expected (-17, -14)", c.X, c.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 736, 5.5},
		{-12, 0, 736, 0},
		{900, 0, 736, 736},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
