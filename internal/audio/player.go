//go:build !noaudio

package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/oto/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxVoices limits overlapping beeps.
const maxVoices = 4

// Player plays signal beeps on the default output device.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	pcm    map[core.Signal][]byte
	volume float64
	active atomic.Int32
	wg     sync.WaitGroup
	logger *log.Logger
}

// New returns a device-backed sink, or Nop when audio is disabled or the
// device cannot be opened.
func New(enabled bool, logger *log.Logger) Sink {
	if logger == nil {
		logger = log.Default()
	}
	if !enabled {
		return Nop{}
	}

	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, oto.FormatSignedInt16LE)
	if err != nil {
		logger.Warn("audio disabled", "error", err)
		return Nop{}
	}

	p := &Player{
		ctx:    ctx,
		ready:  ready,
		pcm:    make(map[core.Signal][]byte, len(Tones)),
		volume: Volume,
		logger: logger,
	}
	for sig, tone := range Tones {
		// Volume is applied by the player so the synthesized PCM is full scale.
		p.pcm[sig] = Synthesize(tone, 1)
	}
	return p
}

// Play starts the beep for sig without blocking. Signals without a tone,
// signals before the device is ready and signals beyond maxVoices are dropped.
func (p *Player) Play(sig core.Signal) {
	data, ok := p.pcm[sig]
	if !ok {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	if p.active.Add(1) > maxVoices {
		p.active.Add(-1)
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.active.Add(-1)

		player := p.ctx.NewPlayer(&soundReader{data: data})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.logger.Debug("closing audio player", "error", err)
		}
	}()
}

// Close waits for playing beeps to finish.
func (p *Player) Close() error {
	p.wg.Wait()
	return nil
}
