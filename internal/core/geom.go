// Package core provides fundamental types and utilities shared by the game,
// the renderers and the terminal platform. It contains no external
// dependencies (especially no Bubble Tea) to keep game logic pure and testable.
package core

// Point is a grid cell coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Add returns the cell reached by moving one step in direction d.
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// In reports whether p lies inside a w x h grid anchored at the origin.
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

// Adjacent reports whether p and q are orthogonal neighbours.
func (p Point) Adjacent(q Point) bool {
	return Abs(p.X-q.X)+Abs(p.Y-q.Y) == 1
}

// Direction is a cardinal unit vector.
type Direction struct {
	DX, DY int
}

// The four cardinal directions.
var (
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// Dot returns the dot product of two directions.
func (d Direction) Dot(o Direction) int {
	return d.DX*o.DX + d.DY*o.DY
}

// Opposite reports whether o points the exact reverse way of d.
func (d Direction) Opposite(o Direction) bool {
	return d.Dot(o) == -1
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Rect represents an axis-aligned area on a screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
