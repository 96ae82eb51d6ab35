package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is the renderable state of a game at one frame.
type Snapshot struct {
	Width            int
	Height           int
	Segments         []core.Point // Head first
	Direction        core.Direction
	GrowPending      int // moves that keep the tail in place
	Food             core.Point
	HasFood          bool
	Score            int
	HighScore        int
	FoodsEaten       int
	FrameRate        int
	Status           Status
	ShowInstructions bool
	Elapsed          time.Duration
	Frame            uint64
}

// Head returns the head cell of the captured snake.
func (s Snapshot) Head() core.Point {
	if len(s.Segments) == 0 {
		return core.Point{}
	}
	return s.Segments[0]
}

// Snapshot captures the current renderable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:            g.width,
		Height:           g.height,
		Segments:         g.snake.Segments(),
		Direction:        g.snake.Direction(),
		GrowPending:      g.snake.GrowPending(),
		Food:             g.food,
		HasFood:          g.hasFood,
		Score:            g.score,
		HighScore:        g.highScore,
		FoodsEaten:       g.foodsEaten,
		FrameRate:        g.FrameRate(),
		Status:           g.Status(),
		ShowInstructions: g.showInstructions,
		Elapsed:          g.elapsed,
		Frame:            g.frames,
	}
}
