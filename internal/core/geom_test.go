package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "adjacent vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single pixel overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
	if r.Top() != 10 {
		t.Errorf("Top() = %d, expected 10", r.Top())
	}

	if r.CenterX() != 15 {
		t.Errorf("CenterX() = %d, expected 15", r.CenterX())
	}

	// Odd widths round the center down, like the pixel grid does
	odd := NewRect(80, 390, 61, 60)
	if odd.CenterX() != 110 {
		t.Errorf("CenterX() = %d, expected 110", odd.CenterX())
	}
}

func TestTriangleContains(t *testing.T) {
	// Apex up, base on y=110
	tri := Triangle{
		A: Vec2{X: 100, Y: 50},
		B: Vec2{X: 70, Y: 110},
		C: Vec2{X: 130, Y: 110},
	}

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"center", Vec2{X: 100, Y: 90}, true},
		{"apex", Vec2{X: 100, Y: 50}, true},
		{"on base", Vec2{X: 80, Y: 110}, true},
		{"above apex", Vec2{X: 100, Y: 40}, false},
		{"outside left slope", Vec2{X: 75, Y: 60}, false},
		{"below base", Vec2{X: 100, Y: 115}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tri.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
			// Winding order must not matter
			rev := Triangle{A: tri.C, B: tri.B, C: tri.A}
			if got := rev.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) reversed = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := Triangle{
		A: Vec2{X: 100, Y: 50},
		B: Vec2{X: 70, Y: 110},
		C: Vec2{X: 130, Y: 110},
	}
	minX, minY, maxX, maxY := tri.Bounds()
	if minX != 70 || minY != 50 || maxX != 130 || maxY != 110 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), expected (70, 50, 130, 110)", minX, minY, maxX, maxY)
	}
}
