package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Boundary            string        `json:"boundary"`
	Pattern             string        `json:"pattern"`
	RandomDensity       float64       `json:"random_density"`
	Seed                int64         `json:"seed"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	MaxGenerations      int           `json:"max_generations"`
	Color               bool          `json:"color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               80,
		Height:              40,
		FrameRate:           100 * time.Millisecond,
		Boundary:            "flat",
		RandomDensity:       0.5,
		AutoRestart:         false,
		StagnationThreshold: 5,
		UseParallel:         false,
		MaxGenerations:      0, // run until interrupted
	}
}

// LoadConfig loads configuration from JSON file, on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions must be positive, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must not be negative, got %v", c.FrameRate)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density must be within [0, 1], got %v", c.RandomDensity)
	case c.StagnationThreshold < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation threshold must not be negative, got %d", c.StagnationThreshold)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
