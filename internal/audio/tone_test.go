package audio

import (
	"encoding/binary"
	"io"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func sampleAt(buf []byte, i int) int {
	return int(int16(binary.LittleEndian.Uint16(buf[i*2:])))
}

func TestToneSamples(t *testing.T) {
	eat, _ := ToneFor(core.SignalFoodEaten)
	over, _ := ToneFor(core.SignalRoundOver)

	if eat.Samples() != 3528 {
		t.Errorf("eat tone has %d samples, expected 3528", eat.Samples())
	}
	if over.Samples() != 13230 {
		t.Errorf("game over tone has %d samples, expected 13230", over.Samples())
	}
	if _, ok := ToneFor(core.SignalNone); ok {
		t.Error("SignalNone should have no tone")
	}
}

func TestSynthesizeSine(t *testing.T) {
	tone := Tone{Frequency: 440, Duration: 80 * time.Millisecond}
	buf := Synthesize(tone, Volume)

	if len(buf) != 3528*BytesPerFrame {
		t.Fatalf("len = %d, expected %d", len(buf), 3528*BytesPerFrame)
	}

	tests := []struct {
		index    int
		expected int
	}{
		{0, 0},
		{1, 821},
		{25, 13106}, // near the first peak
		{100, -186},
	}
	for _, tc := range tests {
		got := sampleAt(buf, tc.index)
		if got < tc.expected-1 || got > tc.expected+1 {
			t.Errorf("sample %d = %d, expected %d", tc.index, got, tc.expected)
		}
	}

	peak := 0
	for i := 0; i < len(buf)/2; i++ {
		peak = max(peak, abs(sampleAt(buf, i)))
	}
	vol := Volume
	bound := int(32767 * vol)
	if peak > bound {
		t.Errorf("peak %d exceeds volume bound %d", peak, bound)
	}
}

func TestSynthesizeClampsVolume(t *testing.T) {
	tone := Tone{Frequency: 440, Duration: 10 * time.Millisecond}

	loud := Synthesize(tone, 5)
	if got := sampleAt(loud, 25); got < 32760 {
		t.Errorf("full scale peak = %d, expected about 32767", got)
	}

	silent := Synthesize(tone, -1)
	for i := 0; i < len(silent)/2; i++ {
		if sampleAt(silent, i) != 0 {
			t.Fatalf("negative volume should be silent, sample %d = %d", i, sampleAt(silent, i))
		}
	}

	if Synthesize(Tone{Frequency: 440}, Volume) != nil {
		t.Error("zero duration should produce no data")
	}
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if len(out) != 5 || out[4] != 5 {
		t.Errorf("read %v", out)
	}
}

func TestNewDisabledIsNop(t *testing.T) {
	sink := New(false, nil)
	if _, ok := sink.(Nop); !ok {
		t.Fatalf("New(false) = %T, expected Nop", sink)
	}
	sink.Play(core.SignalFoodEaten)
	if err := sink.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
