// Package audio plays the game's sound effects: short sine beeps synthesized
// as 16-bit mono PCM.
package audio

import (
	"io"
	"math"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	SampleRate    = 44100
	ChannelCount  = 1
	BytesPerFrame = 2 // signed 16-bit little endian
	Volume        = 0.4
)

// Tone is a plain sine beep.
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
}

// Tones maps each audible signal to its beep.
var Tones = map[core.Signal]Tone{
	core.SignalFoodEaten: {Frequency: 440, Duration: 80 * time.Millisecond},
	core.SignalRoundOver: {Frequency: 180, Duration: 300 * time.Millisecond},
}

// ToneFor returns the beep for a signal.
func ToneFor(sig core.Signal) (Tone, bool) {
	t, ok := Tones[sig]
	return t, ok
}

// Samples returns the number of sample frames in the tone.
func (t Tone) Samples() int {
	return int(int64(t.Duration) * SampleRate / int64(time.Second))
}

// Synthesize renders the tone as PCM at the given volume (0..1).
func Synthesize(t Tone, volume float64) []byte {
	n := t.Samples()
	if n <= 0 {
		return nil
	}
	volume = math.Max(0, math.Min(1, volume))

	buf := make([]byte, n*BytesPerFrame)
	for i := 0; i < n; i++ {
		v := int16(32767 * volume * math.Sin(2*math.Pi*t.Frequency*(float64(i)/SampleRate)))
		buf[i*2] = byte(v)
		buf[i*2+1] = byte(uint16(v) >> 8)
	}
	return buf
}

// soundReader streams a finished buffer to a player.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// Sink receives game signals and turns them into sound.
type Sink interface {
	Play(sig core.Signal)
	Close() error
}

// Nop is a silent sink.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Signal) {}

// Close does nothing.
func (Nop) Close() error { return nil }
