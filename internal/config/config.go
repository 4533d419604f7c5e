package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Default values applied when a field is absent from the config file.
const (
	DefaultFPS             = 30
	DefaultPixelsPerSecond = 100.0
	DefaultSnapThresholdPx = 10.0
	DefaultMaxUndoEntries  = 100
	DefaultAutosaveMs      = 100
)

// Config holds user-tunable editor settings loaded from TOML.
type Config struct {
	// DefaultFPS is the frame rate for new projects.
	DefaultFPS int `toml:"default_fps"`

	// PixelsPerSecond is the base timeline scale at zoom 1.0.
	PixelsPerSecond float64 `toml:"pixels_per_second"`

	// SnapThresholdPx is the screen-space snap radius in pixels.
	SnapThresholdPx float64 `toml:"snap_threshold_px"`

	// MaxUndoEntries bounds the history stack.
	MaxUndoEntries int `toml:"max_undo_entries"`

	// AutosaveMs is the autosave debounce window in milliseconds.
	AutosaveMs int `toml:"autosave_ms"`
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		DefaultFPS:      DefaultFPS,
		PixelsPerSecond: DefaultPixelsPerSecond,
		SnapThresholdPx: DefaultSnapThresholdPx,
		MaxUndoEntries:  DefaultMaxUndoEntries,
		AutosaveMs:      DefaultAutosaveMs,
	}
}

// AutosaveDebounce returns the autosave window as a duration.
func (c *Config) AutosaveDebounce() time.Duration {
	return time.Duration(c.AutosaveMs) * time.Millisecond
}

// Load reads TOML config from path on top of the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.DefaultFPS <= 0 {
		return fmt.Errorf("default_fps must be positive, got %d", c.DefaultFPS)
	}
	if c.PixelsPerSecond <= 0 {
		return fmt.Errorf("pixels_per_second must be positive, got %g", c.PixelsPerSecond)
	}
	if c.SnapThresholdPx < 0 {
		return fmt.Errorf("snap_threshold_px must not be negative, got %g", c.SnapThresholdPx)
	}
	if c.MaxUndoEntries <= 0 {
		return fmt.Errorf("max_undo_entries must be positive, got %d", c.MaxUndoEntries)
	}
	if c.AutosaveMs <= 0 {
		return fmt.Errorf("autosave_ms must be positive, got %d", c.AutosaveMs)
	}
	return nil
}
