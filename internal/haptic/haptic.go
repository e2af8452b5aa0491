// Package haptic plays short tones standing in for the watch crown's
// detent clicks and the confirmation tap.
package haptic

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	stepspiral "github.com/gogpu/stepspiral"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a sine burst.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	// TickTone plays on every goal detent.
	TickTone = Tone{Freq: 1760, Duration: 12 * time.Millisecond}

	// ConfirmTone plays once when the goal is confirmed.
	ConfirmTone = Tone{Freq: 880, Duration: 80 * time.Millisecond}
)

// Player gives audible feedback for goal input.
type Player interface {
	Tick()
	Confirm()
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Tick()    {}
func (Nop) Confirm() {}
func (Nop) Close()   {}

// speakerPlayer plays tones through the default audio device.
type speakerPlayer struct{}

// New returns a Player using the speaker when enabled. If audio is disabled
// or the device cannot be opened it returns Nop; the watch face works
// without sound.
func New(enabled bool) Player {
	if !enabled {
		return Nop{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		stepspiral.Logger().Warn("haptic: audio initialization failed", "error", err)
		return Nop{}
	}
	stepspiral.Logger().Info("haptic: audio enabled", "sample_rate", int(sampleRate))
	return speakerPlayer{}
}

// Stream returns a finite streamer playing t.
func (t Tone) Stream() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

func (speakerPlayer) play(t Tone) {
	s, err := t.Stream()
	if err != nil {
		stepspiral.Logger().Debug("haptic: tone unavailable", "freq", t.Freq, "error", err)
		return
	}
	speaker.Play(s)
}

func (p speakerPlayer) Tick()    { p.play(TickTone) }
func (p speakerPlayer) Confirm() { p.play(ConfirmTone) }
func (speakerPlayer) Close()     { speaker.Close() }
