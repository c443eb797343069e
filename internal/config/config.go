// Package config provides configuration loading for bubbletoast defaults.
// Configuration is optional: every field has a default, an absent file is
// not an error, and invalid values degrade to defaults with a warning.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cristianoliveira/bubbletoast/internal/entity"
	"github.com/cristianoliveira/bubbletoast/internal/lifecycle"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunable defaults for a toast manager.
type Config struct {
	Toast     ToastConfig     `toml:"toast"`
	Animation AnimationConfig `toml:"animation"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ToastConfig controls queue and request defaults.
type ToastConfig struct {
	// MaxVisible caps the number of concurrently active toasts.
	MaxVisible int `toml:"max_visible"`
	// DefaultDurationMs is the auto-hide delay applied by the creator
	// helpers. Zero is allowed and means no auto-hide.
	DefaultDurationMs int `toml:"default_duration_ms"`
	// Position is the default stack anchor: top, bottom, or center.
	Position string `toml:"position"`
	// Theme is the default color table: light, dark, colored, or system.
	Theme string `toml:"theme"`
}

// AnimationConfig controls lifecycle animation timing.
type AnimationConfig struct {
	EntranceMs int `toml:"entrance_ms"`
	ExitMs     int `toml:"exit_ms"`
	// FPS is the frame rate the overlay model aims for.
	FPS int `toml:"fps"`
}

// LoggingConfig controls the debug log.
type LoggingConfig struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	File    string `toml:"file"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Toast: ToastConfig{
			MaxVisible:        entity.DefaultMaxVisible,
			DefaultDurationMs: int(entity.DefaultDuration / time.Millisecond),
			Position:          entity.DefaultPosition.String(),
			Theme:             entity.DefaultTheme.String(),
		},
		Animation: AnimationConfig{
			EntranceMs: int(lifecycle.DefaultEntranceDuration / time.Millisecond),
			ExitMs:     int(lifecycle.DefaultExitDuration / time.Millisecond),
			FPS:        60,
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
		},
	}
}

// Load reads a TOML configuration file and normalizes it. A missing file
// yields the defaults with no error; a malformed file yields the defaults
// plus the parse error so the caller can warn and continue.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Normalize replaces invalid values with defaults and returns a warning
// per replaced field.
func (c *Config) Normalize() []string {
	var warnings []string
	def := Default()
	if c.Toast.MaxVisible <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid toast.max_visible %d: must be positive, using %d", c.Toast.MaxVisible, def.Toast.MaxVisible))
		c.Toast.MaxVisible = def.Toast.MaxVisible
	}
	if c.Toast.DefaultDurationMs < 0 {
		warnings = append(warnings, fmt.Sprintf("invalid toast.default_duration_ms %d: must be non-negative, using %d", c.Toast.DefaultDurationMs, def.Toast.DefaultDurationMs))
		c.Toast.DefaultDurationMs = def.Toast.DefaultDurationMs
	}
	if !entity.Position(c.Toast.Position).IsValid() {
		warnings = append(warnings, fmt.Sprintf("invalid toast.position %q: using %q", c.Toast.Position, def.Toast.Position))
		c.Toast.Position = def.Toast.Position
	}
	if !entity.Theme(c.Toast.Theme).IsValid() {
		warnings = append(warnings, fmt.Sprintf("invalid toast.theme %q: using %q", c.Toast.Theme, def.Toast.Theme))
		c.Toast.Theme = def.Toast.Theme
	}
	if c.Animation.EntranceMs <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid animation.entrance_ms %d: must be positive, using %d", c.Animation.EntranceMs, def.Animation.EntranceMs))
		c.Animation.EntranceMs = def.Animation.EntranceMs
	}
	if c.Animation.ExitMs <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid animation.exit_ms %d: must be positive, using %d", c.Animation.ExitMs, def.Animation.ExitMs))
		c.Animation.ExitMs = def.Animation.ExitMs
	}
	if c.Animation.FPS <= 0 || c.Animation.FPS > 120 {
		warnings = append(warnings, fmt.Sprintf("invalid animation.fps %d: must be in 1..120, using %d", c.Animation.FPS, def.Animation.FPS))
		c.Animation.FPS = def.Animation.FPS
	}
	return warnings
}

// DefaultDuration returns the creator-helper auto-hide delay.
func (c *Config) DefaultDuration() time.Duration {
	return time.Duration(c.Toast.DefaultDurationMs) * time.Millisecond
}

// EntranceDuration returns the entrance animation time.
func (c *Config) EntranceDuration() time.Duration {
	return time.Duration(c.Animation.EntranceMs) * time.Millisecond
}

// ExitDuration returns the exit animation time.
func (c *Config) ExitDuration() time.Duration {
	return time.Duration(c.Animation.ExitMs) * time.Millisecond
}

// FrameInterval returns the target delay between animation frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FPS)
}
