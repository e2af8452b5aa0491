package stepspiral

import (
	"errors"
	"testing"
)

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero step", func(c *Config) { c.StepSize = 0 }},
		{"negative threshold", func(c *Config) { c.LayerThreshold = -1 }},
		{"zero turns", func(c *Config) { c.SpiralTurns = 0 }},
		{"zero dot spacing", func(c *Config) { c.DotSpacing = 0 }},
		{"zero base radius", func(c *Config) { c.BaseRadius = 0 }},
		{"zero layer spacing", func(c *Config) { c.LayerSpacing = 0 }},
		{"zero viewport", func(c *Config) { c.MaxVisibleRadius = 0 }},
		{"no layers", func(c *Config) { c.MaxLayers = 0 }},
		{"negative min", func(c *Config) { c.MinGoal = -200 }},
		{"inverted bounds", func(c *Config) { c.MinGoal, c.MaxGoal = 5000, 1000 }},
		{"negative margin", func(c *Config) { c.ZoomMargin = -1 }},
		{"negative idle", func(c *Config) { c.IdleWindow = -1 }},
		{"negative drag", func(c *Config) { c.ConfirmDrag = -5 }},
		{"bad palette", func(c *Config) { c.Palette = []string{"#FF0000", "zz"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_Palette(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.palette(); len(got) != len(DefaultPalette()) {
		t.Errorf("default palette has %d colors, want %d", len(got), len(DefaultPalette()))
	}

	cfg.Palette = []string{"000", "FFF"}
	got := cfg.palette()
	if len(got) != 2 || got[0] != Black || !got[1].Approx(White, 1e-9) {
		t.Errorf("custom palette = %v", got)
	}
}
