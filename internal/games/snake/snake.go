package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// Snake owns the ordered body (head first) and the direction state.
type Snake struct {
	body        *Deque[core.Point]
	direction   core.Direction // Applied on the last move
	pending     core.Direction // Applied on the next move
	growPending int
	width       int
	height      int
}

// NewSnake creates a three-segment snake centered on a width x height grid,
// heading right with the body trailing to the left.
func NewSnake(width, height int) *Snake {
	s := &Snake{
		body:      NewDeque[core.Point](width * height),
		direction: core.DirRight,
		pending:   core.DirRight,
		width:     width,
		height:    height,
	}
	head := core.Point{X: width / 2, Y: height / 2}
	for i := 0; i < InitialLength; i++ {
		s.body.PushBack(core.Point{X: head.X - i, Y: head.Y})
	}
	return s
}

// SetDirection buffers d for the next move. A request for the exact reverse
// of the last applied direction is ignored.
func (s *Snake) SetDirection(d core.Direction) {
	if d.Opposite(s.direction) {
		return
	}
	s.pending = d
}

// Move applies the pending direction and advances the head by one cell.
// The tail is kept while a growth is pending, dropped otherwise.
// The new head is not clamped to the grid.
func (s *Snake) Move() {
	s.direction = s.pending
	s.body.PushFront(s.body.Front().Add(s.direction))

	if s.growPending > 0 {
		s.growPending--
		return
	}
	s.body.PopBack()
}

// Grow schedules one move during which the tail is kept.
func (s *Snake) Grow() {
	s.growPending++
}

// HitsWall reports whether the head is outside the grid.
func (s *Snake) HitsWall() bool {
	return !s.Head().In(s.width, s.height)
}

// HitsSelf reports whether the head overlaps any other segment.
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.body.Front()
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []core.Point {
	return s.body.Slice()
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[core.Point]struct{} {
	cells := make(map[core.Point]struct{}, s.body.Len())
	for i := 0; i < s.body.Len(); i++ {
		cells[s.body.At(i)] = struct{}{}
	}
	return cells
}

// Occupies reports whether p is one of the segments.
func (s *Snake) Occupies(p core.Point) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i) == p {
			return true
		}
	}
	return false
}

// Direction returns the direction applied on the last move.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// PendingDirection returns the direction the next move will use.
func (s *Snake) PendingDirection() core.Direction {
	return s.pending
}

// GrowPending returns the number of moves that will keep the tail.
func (s *Snake) GrowPending() int {
	return s.growPending
}
