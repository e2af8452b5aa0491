package stepspiral

import (
	"context"
	"math"
	"sync"
	"time"
)

// StepSource is the health-data collaborator that owns sensor access,
// permissions and storage.
type StepSource interface {
	// FetchCumulativeCount returns the steps counted from day (local
	// midnight) up to now, or up to the end of day for past days.
	FetchCumulativeCount(ctx context.Context, day time.Time) (int, error)

	// Observe registers onChange to be called, from any goroutine, whenever
	// new samples arrive. Notifications stop once ctx is done.
	Observe(ctx context.Context, onChange func()) error
}

// StartOfDay returns local midnight of the day containing t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RingState is the progress ring shown after the goal is set.
type RingState struct {
	Steps int
	Goal  int

	// Fraction is the ring fill in [0, 1].
	Fraction float64

	// Percent is the whole-number share of the goal; it keeps counting past 100.
	Percent int
}

// DeriveRing computes ring progress for steps against goal.
func DeriveRing(steps, goal int) RingState {
	r := RingState{Steps: steps, Goal: goal}
	if goal <= 0 || steps <= 0 {
		return r
	}
	ratio := float64(steps) / float64(goal)
	r.Fraction = math.Min(ratio, 1)
	r.Percent = int(ratio * 100)
	return r
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithGoal sets the initial daily goal.
func WithGoal(goal int) TrackerOption {
	return func(t *Tracker) {
		t.goal = goal
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithOnUpdate registers a callback invoked after every successful refresh.
func WithOnUpdate(f func(steps int)) TrackerOption {
	return func(t *Tracker) {
		t.onUpdate = f
	}
}

// Tracker keeps today's step count in sync with a StepSource.
// Collaborator failures are logged and leave the last known count in place.
//
// Tracker is safe for concurrent use.
type Tracker struct {
	src      StepSource
	now      func() time.Time
	onUpdate func(int)

	mu    sync.RWMutex
	steps int
	goal  int
}

// DefaultDailyGoal is the goal a Tracker starts with when none is given.
const DefaultDailyGoal = 10000

// NewTracker returns a Tracker reading from src.
func NewTracker(src StepSource, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		src:  src,
		now:  time.Now,
		goal: DefaultDailyGoal,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Steps returns the last fetched count.
func (t *Tracker) Steps() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.steps
}

// Goal returns the daily goal.
func (t *Tracker) Goal() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.goal
}

// SetGoal replaces the daily goal.
func (t *Tracker) SetGoal(goal int) {
	t.mu.Lock()
	t.goal = goal
	t.mu.Unlock()
	Logger().Debug("daily goal set", "goal", goal)
}

// Ring returns the current progress ring.
func (t *Tracker) Ring() RingState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return DeriveRing(t.steps, t.goal)
}

// Refresh fetches today's count and returns the count now held.
func (t *Tracker) Refresh(ctx context.Context) int {
	day := StartOfDay(t.now())
	n, err := t.src.FetchCumulativeCount(ctx, day)
	if err != nil {
		Logger().Warn("fetch step count failed", "day", day.Format(time.DateOnly), "error", err)
		return t.Steps()
	}

	t.mu.Lock()
	t.steps = n
	t.mu.Unlock()

	Logger().Debug("step count refreshed", "steps", n)
	if t.onUpdate != nil {
		t.onUpdate(n)
	}
	return n
}

// Start fetches the current count and subscribes to updates until ctx is done.
// If the source cannot be observed the tracker keeps the initial count.
func (t *Tracker) Start(ctx context.Context) {
	t.Refresh(ctx)
	err := t.src.Observe(ctx, func() {
		if ctx.Err() != nil {
			return
		}
		t.Refresh(ctx)
	})
	if err != nil {
		Logger().Warn("observe steps failed", "error", err)
		return
	}
	Logger().Info("observing step count")
}
