package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
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
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxInset(t *testing.T) {
	b := NewBox(10, 20, 50, 100).Inset(0.2)

	const eps = 1e-9
	if math.Abs(b.X-20) > eps || math.Abs(b.Y-40) > eps {
		t.Errorf("Inset origin = (%v, %v), expected (20, 40)", b.X, b.Y)
	}
	if math.Abs(b.W-30) > eps || math.Abs(b.H-60) > eps {
		t.Errorf("Inset size = %vx%v, expected 30x60", b.W, b.H)
	}

	// Center must not move
	if math.Abs((b.X+b.W/2)-35) > eps || math.Abs((b.Y+b.H/2)-70) > eps {
		t.Error("Inset should shrink symmetrically around the center")
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
		{"touching edges", NewBox(0, 0, 10, 10), NewBox(10, 0, 10, 10), false},
		{"apart vertically", NewBox(0, 0, 10, 10), NewBox(0, 10.1, 10, 10), false},
		{"contained", NewBox(0, 0, 10, 10), NewBox(2, 2, 1, 1), true},
		{"zero-size box inside", NewBox(0, 0, 10, 10), NewBox(5, 5, 0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxRect(t *testing.T) {
	r := NewBox(1.4, 2.6, 3.2, 1.0).Rect()
	// x: 1.4->1, right 4.6->5; y: 2.6->3, bottom 3.6->4
	if r != NewRect(1, 3, 4, 1) {
		t.Errorf("Rect() = %+v, expected {1 3 4 1}", r)
	}

	if got := NewBox(5, 5, -2, 1).Rect(); got.W != 0 {
		t.Errorf("negative width should snap to 0, got %d", got.W)
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

	if ClampF(-1.5, 0, 1) != 0 || ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clamp to bounds")
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return the larger value")
	}
}
