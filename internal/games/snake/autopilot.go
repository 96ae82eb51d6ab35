package snake

import "github.com/vovakirdan/tui-snake/internal/core"

var steering = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Autopilot picks a greedy move for headless play: the safe direction that
// gets closest to the food, or ActionNone when the snake cannot avoid a crash.
// Safe means inside the board and not onto the body. The tail cell counts as
// free unless a pending growth keeps it in place.
func Autopilot(s Snapshot) core.Action {
	if len(s.Segments) == 0 {
		return core.ActionNone
	}
	head := s.Head()

	body := s.Segments
	if s.GrowPending == 0 {
		body = body[:len(body)-1]
	}
	blocked := make(map[core.Point]struct{}, len(body))
	for _, p := range body {
		blocked[p] = struct{}{}
	}

	best := core.ActionNone
	bestDist := -1
	for _, a := range steering {
		d, _ := a.Direction()
		if d.Opposite(s.Direction) {
			continue
		}
		next := head.Add(d)
		if !next.In(s.Width, s.Height) {
			continue
		}
		if _, hit := blocked[next]; hit {
			continue
		}

		dist := 0
		if s.HasFood {
			dist = core.Abs(next.X-s.Food.X) + core.Abs(next.Y-s.Food.Y)
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = a, dist
		}
	}
	return best
}
