// Package tui runs the watch face in a terminal.
//
// The goal-setting screen draws the spiral with one character per dot;
// the mouse wheel or arrow keys turn the crown. Dragging downward past the
// confirm threshold, or pressing Enter, confirms the goal and switches to
// the tracking screen fed by a stepspiral.Tracker.
package tui

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	stepspiral "github.com/gogpu/stepspiral"
	"github.com/gogpu/stepspiral/internal/haptic"
)

// frameInterval paces redraws, about 30 frames per second.
const frameInterval = 33 * time.Millisecond

// Screen is the drawing surface the app needs; tcell.Screen satisfies it.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

type mode int

const (
	modeGoal mode = iota
	modeTracking
)

// Options configures an App.
type Options struct {
	// CellHeight is how many points one terminal row spans.
	CellHeight float64

	// Locale formats the step counts.
	Locale language.Tag

	// Player gives audible crown feedback. Nil is silent.
	Player haptic.Player
}

// App is the terminal watch face. Events and drawing happen on the goroutine
// running Run; callbacks from timers and the step source only request redraws.
type App struct {
	model   *stepspiral.Model
	input   *stepspiral.GoalInput
	tracker *stepspiral.Tracker
	opts    Options

	ctx   context.Context
	state stepspiral.SpiralState
	mode  mode

	dragging   bool
	dragStartY int

	dirty atomic.Bool
}

// New returns an App selecting a goal with cfg and tracking steps from src.
func New(cfg stepspiral.Config, src stepspiral.StepSource, opts Options) (*App, error) {
	model, err := stepspiral.NewModel(cfg)
	if err != nil {
		return nil, err
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 8
	}
	if opts.Player == nil {
		opts.Player = haptic.Nop{}
	}

	a := &App{
		model: model,
		opts:  opts,
		ctx:   context.Background(),
	}
	a.tracker = stepspiral.NewTracker(src, stepspiral.WithOnUpdate(func(int) { a.requestRedraw() }))
	a.input = stepspiral.NewGoalInput(cfg,
		stepspiral.WithOnChange(a.goalChanged),
		stepspiral.WithOnActive(func(bool) { a.requestRedraw() }),
		stepspiral.WithOnConfirmed(a.goalConfirmed),
	)
	a.state = model.DeriveState(a.input.Goal())
	a.dirty.Store(true)
	return a, nil
}

// Goal returns the goal input.
func (a *App) Goal() *stepspiral.GoalInput {
	return a.input
}

// Tracker returns the step tracker.
func (a *App) Tracker() *stepspiral.Tracker {
	return a.tracker
}

// Tracking reports whether the goal was confirmed and steps are shown.
func (a *App) Tracking() bool {
	return a.mode == modeTracking
}

// State returns the spiral for the current goal.
func (a *App) State() stepspiral.SpiralState {
	return a.state
}

func (a *App) requestRedraw() {
	a.dirty.Store(true)
}

func (a *App) goalChanged(goal float64) {
	a.state = a.model.DeriveState(goal)
	a.opts.Player.Tick()
	a.requestRedraw()
}

func (a *App) goalConfirmed(goal int) {
	a.opts.Player.Confirm()
	a.tracker.SetGoal(goal)
	a.mode = modeTracking
	a.tracker.Start(a.ctx)
	a.requestRedraw()
}

// Run shows the watch face on ts until ctx is done or the user quits.
// Run takes ownership of ts and finalizes it before returning.
func (a *App) Run(ctx context.Context, ts tcell.Screen) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.ctx = ctx

	ts.EnableMouse()
	events := make(chan tcell.Event, 64)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			ev := ts.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer ts.Fini()
		defer cancel()
		return a.loop(gctx, ts, events)
	})
	return g.Wait()
}

func (a *App) loop(ctx context.Context, ts tcell.Screen, events <-chan tcell.Event) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Draw(ts)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				ts.Sync()
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if a.dirty.Swap(false) {
				a.Draw(ts)
			}
		}
	}
}
