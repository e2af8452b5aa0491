package stepspiral

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate and NewModel for unusable constants.
var ErrInvalidConfig = errors.New("stepspiral: invalid config")

// Config holds the constants of the goal spiral and its rotary input.
// Lengths are in points; the renderer decides how points map to pixels or cells.
type Config struct {
	// MinGoal and MaxGoal bound the selectable goal.
	MinGoal float64 `yaml:"min_goal" env:"MIN_GOAL"`
	MaxGoal float64 `yaml:"max_goal" env:"MAX_GOAL"`

	// StepSize quantizes the goal; one rotary detent moves it by one step.
	StepSize float64 `yaml:"step_size" env:"STEP_SIZE"`

	// InitialGoal is where goal selection starts.
	InitialGoal float64 `yaml:"initial_goal" env:"INITIAL_GOAL"`

	// LayerThreshold is the number of steps each spiral layer represents.
	LayerThreshold float64 `yaml:"layer_threshold" env:"LAYER_THRESHOLD"`

	// MaxLayers caps how many layers can ever be revealed.
	MaxLayers int `yaml:"max_layers" env:"MAX_LAYERS"`

	// SpiralTurns is the number of full revolutions per layer.
	SpiralTurns float64 `yaml:"spiral_turns" env:"SPIRAL_TURNS"`

	// DotSpacing is the target arc distance between neighboring dots.
	DotSpacing float64 `yaml:"dot_spacing" env:"DOT_SPACING"`

	BaseRadius   float64 `yaml:"base_radius" env:"BASE_RADIUS"`
	LayerSpacing float64 `yaml:"layer_spacing" env:"LAYER_SPACING"`

	// MaxVisibleRadius is the largest radius that fits the viewport unscaled.
	MaxVisibleRadius float64 `yaml:"max_visible_radius" env:"MAX_VISIBLE_RADIUS"`

	// ZoomMargin is extra room reserved outside the outermost layer when fitting.
	ZoomMargin float64 `yaml:"zoom_margin" env:"ZOOM_MARGIN"`

	// IdleWindow is how long input stays active after the last goal change.
	IdleWindow time.Duration `yaml:"idle_window" env:"IDLE_WINDOW"`

	// ConfirmDrag is the drag distance that reveals and triggers "continue".
	ConfirmDrag float64 `yaml:"confirm_drag" env:"CONFIRM_DRAG"`

	// Palette lists hex colors swept by the spiral, two per layer.
	// Empty selects DefaultPalette.
	Palette []string `yaml:"palette" env:"PALETTE" envSeparator:","`
}

// DefaultConfig returns the watch face constants.
func DefaultConfig() Config {
	return Config{
		MinGoal:          200,
		MaxGoal:          40000,
		StepSize:         200,
		InitialGoal:      10000,
		LayerThreshold:   10000,
		MaxLayers:        4,
		SpiralTurns:      2,
		DotSpacing:       8,
		BaseRadius:       65,
		LayerSpacing:     14,
		MaxVisibleRadius: 120,
		ZoomMargin:       0,
		IdleWindow:       500 * time.Millisecond,
		ConfirmDrag:      20,
	}
}

// Validate reports the first constant that would make the geometry degenerate.
func (c Config) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"step_size", c.StepSize},
		{"layer_threshold", c.LayerThreshold},
		{"spiral_turns", c.SpiralTurns},
		{"dot_spacing", c.DotSpacing},
		{"base_radius", c.BaseRadius},
		{"layer_spacing", c.LayerSpacing},
		{"max_visible_radius", c.MaxVisibleRadius},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	switch {
	case c.MaxLayers < 1:
		return fmt.Errorf("%w: max_layers must be at least 1, got %d", ErrInvalidConfig, c.MaxLayers)
	case c.MinGoal < 0:
		return fmt.Errorf("%w: min_goal must not be negative, got %v", ErrInvalidConfig, c.MinGoal)
	case c.MinGoal > c.MaxGoal:
		return fmt.Errorf("%w: min_goal %v exceeds max_goal %v", ErrInvalidConfig, c.MinGoal, c.MaxGoal)
	case c.ZoomMargin < 0:
		return fmt.Errorf("%w: zoom_margin must not be negative, got %v", ErrInvalidConfig, c.ZoomMargin)
	case c.IdleWindow < 0:
		return fmt.Errorf("%w: idle_window must not be negative, got %v", ErrInvalidConfig, c.IdleWindow)
	case c.ConfirmDrag < 0:
		return fmt.Errorf("%w: confirm_drag must not be negative, got %v", ErrInvalidConfig, c.ConfirmDrag)
	}

	if _, err := ParsePalette(c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// palette returns the configured palette, or the default when none is set.
func (c Config) palette() Palette {
	if len(c.Palette) == 0 {
		return DefaultPalette()
	}
	p, err := ParsePalette(c.Palette)
	if err != nil {
		return DefaultPalette()
	}
	return p
}
