package stepspiral

import (
	"math"
	"sync"
	"time"
)

// Timer is the subset of *time.Timer used to cancel a pending idle reset.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// InputOption configures a GoalInput.
type InputOption func(*GoalInput)

// WithIdleWindow overrides Config.IdleWindow.
func WithIdleWindow(d time.Duration) InputOption {
	return func(g *GoalInput) {
		g.idle = d
	}
}

// WithOnChange registers a callback invoked with each new goal value.
func WithOnChange(f func(goal float64)) InputOption {
	return func(g *GoalInput) {
		g.onChange = f
	}
}

// WithOnActive registers a callback invoked whenever the active flag flips.
// When the flag drops after the idle window the callback runs on the timer goroutine.
func WithOnActive(f func(active bool)) InputOption {
	return func(g *GoalInput) {
		g.onActive = f
	}
}

// WithOnConfirmed registers the callback fired once when the goal is confirmed.
func WithOnConfirmed(f func(goal int)) InputOption {
	return func(g *GoalInput) {
		g.onConfirmed = f
	}
}

// WithAfterFunc replaces the timer used for the idle reset.
func WithAfterFunc(f AfterFunc) InputOption {
	return func(g *GoalInput) {
		g.afterFunc = f
	}
}

// GoalInput turns rotary and drag gestures into goal updates.
//
// Each detent moves the goal by one StepSize, quantized and clamped to
// [MinGoal, MaxGoal]. A change marks the input active until IdleWindow passes
// without further changes; renderers use that flag for the ripple on the
// spiral tip. Once confirmed the goal is frozen.
//
// GoalInput is safe for concurrent use.
type GoalInput struct {
	mu sync.Mutex

	min, max, step float64
	confirmDrag    float64
	idle           time.Duration

	goal      float64
	active    bool
	drag      float64
	confirmed bool

	timer Timer
	gen   uint64

	afterFunc   AfterFunc
	onChange    func(float64)
	onActive    func(bool)
	onConfirmed func(int)
}

// NewGoalInput returns an input positioned at cfg.InitialGoal.
func NewGoalInput(cfg Config, opts ...InputOption) *GoalInput {
	g := &GoalInput{
		min:         cfg.MinGoal,
		max:         cfg.MaxGoal,
		step:        cfg.StepSize,
		confirmDrag: cfg.ConfirmDrag,
		idle:        cfg.IdleWindow,
		afterFunc:   realAfterFunc,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.goal = g.quantize(cfg.InitialGoal)
	return g
}

// quantize snaps v to the step grid and clamps it into range.
func (g *GoalInput) quantize(v float64) float64 {
	if g.step > 0 {
		v = math.Round(v/g.step) * g.step
	}
	return clamp(v, g.min, g.max)
}

// Goal returns the current goal.
func (g *GoalInput) Goal() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.goal
}

// Active reports whether the goal changed within the idle window.
func (g *GoalInput) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// Confirmed reports whether the goal has been confirmed.
func (g *GoalInput) Confirmed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.confirmed
}

// Rotate moves the goal by delta detents and returns the new goal.
func (g *GoalInput) Rotate(delta float64) float64 {
	g.mu.Lock()
	return g.setLocked(g.goal + delta*g.step)
}

// SetGoal moves the goal to v, quantized and clamped, and returns the new goal.
func (g *GoalInput) SetGoal(v float64) float64 {
	g.mu.Lock()
	return g.setLocked(v)
}

// setLocked applies a new goal and releases g.mu before running callbacks.
func (g *GoalInput) setLocked(v float64) float64 {
	if g.confirmed {
		goal := g.goal
		g.mu.Unlock()
		return goal
	}

	next := g.quantize(v)
	if next == g.goal {
		g.mu.Unlock()
		return next
	}
	g.goal = next

	becameActive := !g.active
	g.active = true
	g.scheduleIdleLocked()

	onChange, onActive := g.onChange, g.onActive
	g.mu.Unlock()

	Logger().Debug("goal changed", "goal", next)
	if onChange != nil {
		onChange(next)
	}
	if becameActive && onActive != nil {
		onActive(true)
	}
	return next
}

// scheduleIdleLocked supersedes any pending idle reset with a fresh one.
func (g *GoalInput) scheduleIdleLocked() {
	if g.timer != nil {
		g.timer.Stop()
	}
	g.gen++
	gen := g.gen
	g.timer = g.afterFunc(g.idle, func() { g.expire(gen) })
}

// expire clears the active flag if no input arrived since generation gen.
func (g *GoalInput) expire(gen uint64) {
	g.mu.Lock()
	if gen != g.gen || !g.active {
		g.mu.Unlock()
		return
	}
	g.active = false
	g.timer = nil
	onActive := g.onActive
	g.mu.Unlock()

	Logger().Debug("goal input idle")
	if onActive != nil {
		onActive(false)
	}
}

// Drag records the current vertical drag translation in points.
func (g *GoalInput) Drag(translation float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.confirmed {
		g.drag = translation
	}
}

// ContinueVisible reports whether the drag has passed the confirm threshold.
func (g *GoalInput) ContinueVisible() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.confirmed && g.drag > g.confirmDrag
}

// EndDrag finishes a drag gesture. Releasing past the threshold confirms
// the goal. It reports whether the goal was confirmed by this call.
func (g *GoalInput) EndDrag() bool {
	g.mu.Lock()
	past := !g.confirmed && g.drag > g.confirmDrag
	g.drag = 0
	g.mu.Unlock()

	if !past {
		return false
	}
	return g.Confirm()
}

// Confirm freezes the goal and fires the confirmation callback. Only the
// first call has any effect; it reports whether this call confirmed.
func (g *GoalInput) Confirm() bool {
	g.mu.Lock()
	if g.confirmed {
		g.mu.Unlock()
		return false
	}
	g.confirmed = true
	g.drag = 0
	g.gen++
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	wasActive := g.active
	g.active = false
	goal := int(math.Round(g.goal))
	onConfirmed, onActive := g.onConfirmed, g.onActive
	g.mu.Unlock()

	Logger().Info("goal confirmed", "goal", goal)
	if wasActive && onActive != nil {
		onActive(false)
	}
	if onConfirmed != nil {
		onConfirmed(goal)
	}
	return true
}
