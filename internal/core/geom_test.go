package core

import "testing"

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Direction
		expected bool
	}{
		{name: "right vs left", a: DirRight, b: DirLeft, expected: true},
		{name: "up vs down", a: DirUp, b: DirDown, expected: true},
		{name: "right vs up", a: DirRight, b: DirUp, expected: false},
		{name: "same direction", a: DirDown, b: DirDown, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Opposite(tc.b); got != tc.expected {
				t.Errorf("Opposite() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	p := Point{X: 5, Y: 5}

	if got := p.Add(DirUp); got != (Point{X: 5, Y: 4}) {
		t.Errorf("Add(up) = %v", got)
	}
	if got := p.Add(DirRight); got != (Point{X: 6, Y: 5}) {
		t.Errorf("Add(right) = %v", got)
	}
}

func TestPointIn(t *testing.T) {
	tests := []struct {
		p        Point
		expected bool
	}{
		{Point{0, 0}, true},
		{Point{39, 29}, true},
		{Point{40, 0}, false},
		{Point{0, 30}, false},
		{Point{-1, 3}, false},
		{Point{3, -1}, false},
	}

	for _, tc := range tests {
		if got := tc.p.In(40, 30); got != tc.expected {
			t.Errorf("%v.In(40, 30) = %v, expected %v", tc.p, got, tc.expected)
		}
	}
}

func TestPointAdjacent(t *testing.T) {
	p := Point{X: 2, Y: 2}
	if !p.Adjacent(Point{X: 2, Y: 3}) {
		t.Error("vertical neighbour should be adjacent")
	}
	if p.Adjacent(Point{X: 3, Y: 3}) {
		t.Error("diagonal cell should not be adjacent")
	}
	if p.Adjacent(p) {
		t.Error("a cell is not adjacent to itself")
	}
}

func TestDirectionString(t *testing.T) {
	if DirLeft.String() != "left" {
		t.Errorf("String() = %q, expected left", DirLeft.String())
	}
	if (Direction{DX: 2}).String() != "unknown" {
		t.Error("non-unit vector should be unknown")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	if !r.Contains(10, 10) {
		t.Error("top-left corner should be inside")
	}
	if r.Contains(30, 30) {
		t.Error("right/bottom edges are exclusive")
	}
	if r.Right() != 30 || r.Bottom() != 30 {
		t.Errorf("Right/Bottom = %d/%d, expected 30/30", r.Right(), r.Bottom())
	}
}
