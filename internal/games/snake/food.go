package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Chooser picks an index in [0, n). *rand.Rand satisfies it.
type Chooser interface {
	Intn(n int) int
}

// PlaceFood returns a uniformly random cell of the width x height grid that is
// not in occupied. The second result is false when every cell is taken.
func PlaceFood(width, height int, occupied map[core.Point]struct{}, rng Chooser) (core.Point, bool) {
	free := make([]core.Point, 0, max(width*height-len(occupied), 0))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Point{X: x, Y: y}
			if _, taken := occupied[p]; !taken {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		return core.Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
