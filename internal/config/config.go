// Package config loads watch face settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	stepspiral "github.com/gogpu/stepspiral"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "STEPSPIRAL_"

// File is the full configuration of the stepspiral tools.
type File struct {
	Spiral stepspiral.Config `yaml:"spiral"`
	Watch  Watch             `yaml:"watch" envPrefix:"WATCH_"`
}

// Watch configures the terminal watch face and its simulated pedometer.
type Watch struct {
	// Seed selects the simulated walking pattern.
	Seed int64 `yaml:"seed" env:"SEED"`

	// Cadence is the peak simulated walking rate in steps per minute.
	Cadence float64 `yaml:"cadence" env:"CADENCE"`

	// Interval is how often the simulated pedometer reports new samples.
	Interval time.Duration `yaml:"interval" env:"INTERVAL"`

	// Sound enables the crown tick and confirmation tones.
	Sound bool `yaml:"sound" env:"SOUND"`

	// Locale is the BCP 47 tag used to format counts.
	Locale string `yaml:"locale" env:"LOCALE"`

	// CellHeight is how many points one terminal row spans, for drag gestures.
	CellHeight float64 `yaml:"cell_height" env:"CELL_HEIGHT"`
}

// Default returns the built-in configuration.
func Default() File {
	return File{
		Spiral: stepspiral.DefaultConfig(),
		Watch: Watch{
			Seed:       1,
			Cadence:    110,
			Interval:   2 * time.Second,
			Sound:      false,
			Locale:     "en",
			CellHeight: 8,
		},
	}
}

// Validate checks the configuration for values the tools cannot use.
func (f File) Validate() error {
	if err := f.Spiral.Validate(); err != nil {
		return err
	}
	switch {
	case f.Watch.Cadence < 0:
		return fmt.Errorf("config: watch.cadence must not be negative, got %v", f.Watch.Cadence)
	case f.Watch.Interval <= 0:
		return fmt.Errorf("config: watch.interval must be positive, got %v", f.Watch.Interval)
	case f.Watch.CellHeight <= 0:
		return fmt.Errorf("config: watch.cell_height must be positive, got %v", f.Watch.CellHeight)
	}
	return nil
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then STEPSPIRAL_* environment variables.
func Load(path string) (File, error) {
	f := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&f, env.Options{Prefix: EnvPrefix}); err != nil {
		return File{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// IsNotExist reports whether err came from a missing config file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
