package core

// Signal is a discrete event the round emits for the audio/UI collaborators.
type Signal int

const (
	SignalNone Signal = iota
	SignalFoodEaten
	SignalRoundOver
)

func (s Signal) String() string {
	switch s {
	case SignalFoodEaten:
		return "food_eaten"
	case SignalRoundOver:
		return "round_over"
	default:
		return "none"
	}
}
