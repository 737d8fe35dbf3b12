package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{0, 0, 10, 10},
			b:        Box{5, 5, 10, 10},
			expected: true,
		},
		{
			name:     "separated horizontally",
			a:        Box{0, 0, 10, 10},
			b:        Box{15, 0, 10, 10},
			expected: false,
		},
		{
			name:     "separated vertically",
			a:        Box{0, 0, 10, 10},
			b:        Box{0, 15, 10, 10},
			expected: false,
		},
		{
			name:     "touching edges",
			a:        Box{0, 0, 10, 10},
			b:        Box{10, 0, 10, 10},
			expected: true,
		},
		{
			name:     "contained box",
			a:        Box{0, 0, 20, 20},
			b:        Box{5, 5, 5, 5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() is not symmetric: got %v", got)
			}
		})
	}
}

func TestBoxCircleIntersects(t *testing.T) {
	box := Box{X: 100, Y: 100, W: 70, H: 26}

	tests := []struct {
		name     string
		cx, cy   float64
		r        float64
		expected bool
	}{
		{"centre inside", 130, 110, 10, true},
		{"just below", 130, 90, 10, true},
		{"gap below", 130, 89, 10, false},
		{"left edge tangent", 90, 110, 10, true},
		{"corner inside radius", 95, 95, 10, true},
		{"corner outside radius", 92, 92, 10, false},
		{"above top", 130, 137, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := box.CircleIntersects(tc.cx, tc.cy, tc.r); got != tc.expected {
				t.Errorf("CircleIntersects(%v, %v, %v) = %v, expected %v", tc.cx, tc.cy, tc.r, got, tc.expected)
			}
		})
	}
}

func TestBoxCenter(t *testing.T) {
	x, y := Box{X: 10, Y: 20, W: 70, H: 26}.Center()
	if x != 45 || y != 33 {
		t.Errorf("Center() = (%v, %v), expected (45, 33)", x, y)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 30)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %d, expected 40", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampFAndSign(t *testing.T) {
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %v, expected 0", got)
	}
	if got := ClampF(2.5, 0, 1); got != 1 {
		t.Errorf("ClampF(2.5, 0, 1) = %v, expected 1", got)
	}
	if Sign(-3) != -1 || Sign(0) != 1 || Sign(4) != 1 {
		t.Error("Sign() should return -1 for negatives and 1 otherwise")
	}
}
