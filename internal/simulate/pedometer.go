// Package simulate provides an in-memory step source for demos and tests.
package simulate

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	stepspiral "github.com/gogpu/stepspiral"
)

// Waking hours during which the simulated wearer walks.
const (
	wakeMinute  = 7 * 60
	sleepMinute = 22 * 60
)

var errNoInterval = errors.New("simulate: observe interval must be positive")

// noiseFrequency controls how quickly the walking rate drifts, per minute.
const noiseFrequency = 1.0 / 45

// Pedometer is a deterministic stepspiral.StepSource. For a given seed the
// same day always yields the same per-minute cadence, so counts only grow
// as the clock advances.
type Pedometer struct {
	// Cadence is the peak walking rate in steps per minute.
	Cadence float64

	// Interval is how often Observe reports new samples.
	Interval time.Duration

	// Now replaces time.Now.
	Now func() time.Time

	noise opensimplex.Noise

	mu  sync.Mutex
	err error
}

var _ stepspiral.StepSource = (*Pedometer)(nil)

// NewPedometer returns a pedometer walking at up to cadence steps per minute.
func NewPedometer(seed int64, cadence float64, interval time.Duration) *Pedometer {
	return &Pedometer{
		Cadence:  cadence,
		Interval: interval,
		Now:      time.Now,
		noise:    opensimplex.NewNormalized(seed),
	}
}

// Fail makes subsequent fetches return err. Pass nil to recover.
func (p *Pedometer) Fail(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

// rate returns the simulated steps walked during minute m of a day.
// The noise is shaped so the wearer is idle most of the time with
// occasional walks.
func (p *Pedometer) rate(dayIndex int64, m int) float64 {
	if m < wakeMinute || m >= sleepMinute {
		return 0
	}
	n := p.noise.Eval2(float64(m)*noiseFrequency, float64(dayIndex)*7.3)
	walking := math.Max(0, (n-0.45)/0.55)
	return p.Cadence * walking
}

// FetchCumulativeCount sums the simulated steps from day up to now,
// or over the whole day when day is in the past.
func (p *Pedometer) FetchCumulativeCount(ctx context.Context, day time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	p.mu.Lock()
	err := p.err
	p.mu.Unlock()
	if err != nil {
		return 0, err
	}

	start := stepspiral.StartOfDay(day)
	now := p.Now()
	if now.Before(start) {
		return 0, nil
	}
	minutes := int(now.Sub(start) / time.Minute)
	minutes = min(minutes, 24*60)

	dayIndex := start.Unix() / (24 * 60 * 60)
	total := 0.0
	for m := 0; m < minutes; m++ {
		total += p.rate(dayIndex, m)
	}
	return int(total), nil
}

// Observe calls onChange every Interval until ctx is done.
func (p *Pedometer) Observe(ctx context.Context, onChange func()) error {
	if p.Interval <= 0 {
		return errNoInterval
	}
	go func() {
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				onChange()
			}
		}
	}()
	return nil
}
