package snake

import "time"

// Speed describes how the frame rate grows with the food eaten.
type Speed struct {
	StartFPS        int
	MaxFPS          int
	FoodsPerSpeedup int
}

// DefaultSpeed returns 10 fps, +1 every 5 foods, capped at 20.
func DefaultSpeed() Speed {
	return Speed{
		StartFPS:        10,
		MaxFPS:          20,
		FoodsPerSpeedup: 5,
	}
}

// FrameRate returns min(MaxFPS, StartFPS + foodsEaten/FoodsPerSpeedup).
// A non-positive FoodsPerSpeedup turns progression off.
func (s Speed) FrameRate(foodsEaten int) int {
	fps := s.StartFPS
	if s.FoodsPerSpeedup > 0 && foodsEaten > 0 {
		fps += foodsEaten / s.FoodsPerSpeedup
	}
	return min(s.MaxFPS, fps)
}

// FrameInterval converts a frame rate to the duration of one frame.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 1
	}
	return time.Second / time.Duration(fps)
}
