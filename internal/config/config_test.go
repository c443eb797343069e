package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 3, cfg.Toast.MaxVisible)
	assert.Equal(t, 3000, cfg.Toast.DefaultDurationMs)
	assert.Equal(t, "bottom", cfg.Toast.Position)
	assert.Equal(t, "system", cfg.Toast.Theme)
	assert.Equal(t, 300, cfg.Animation.EntranceMs)
	assert.Equal(t, 250, cfg.Animation.ExitMs)
	assert.Equal(t, 60, cfg.Animation.FPS)
	assert.False(t, cfg.Logging.Enabled)
	assert.Empty(t, cfg.Normalize(), "defaults produce no warnings")
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("valid file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[toast]
max_visible = 5
default_duration_ms = 5000
position = "top"
theme = "dark"

[animation]
fps = 30
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 5, cfg.Toast.MaxVisible)
		assert.Equal(t, 5000, cfg.Toast.DefaultDurationMs)
		assert.Equal(t, "top", cfg.Toast.Position)
		assert.Equal(t, "dark", cfg.Toast.Theme)
		assert.Equal(t, 30, cfg.Animation.FPS)
		// Untouched sections keep their defaults.
		assert.Equal(t, 300, cfg.Animation.EntranceMs)
	})

	t.Run("malformed file yields defaults plus error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("[toast\nmax_visible ="), 0o644))

		cfg, err := Load(path)
		require.Error(t, err)
		assert.Equal(t, Default(), cfg)
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Config)
		warnings int
		check    func(t *testing.T, cfg *Config)
	}{
		{
			name:     "negative max visible",
			mutate:   func(c *Config) { c.Toast.MaxVisible = -1 },
			warnings: 1,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Toast.MaxVisible)
			},
		},
		{
			name:     "negative duration",
			mutate:   func(c *Config) { c.Toast.DefaultDurationMs = -50 },
			warnings: 1,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3000, cfg.Toast.DefaultDurationMs)
			},
		},
		{
			name:     "zero duration is sticky not invalid",
			mutate:   func(c *Config) { c.Toast.DefaultDurationMs = 0 },
			warnings: 0,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.Toast.DefaultDurationMs)
			},
		},
		{
			name:     "unknown position",
			mutate:   func(c *Config) { c.Toast.Position = "left" },
			warnings: 1,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "bottom", cfg.Toast.Position)
			},
		},
		{
			name:     "unknown theme",
			mutate:   func(c *Config) { c.Toast.Theme = "neon" },
			warnings: 1,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "system", cfg.Toast.Theme)
			},
		},
		{
			name:     "fps out of range",
			mutate:   func(c *Config) { c.Animation.FPS = 500 },
			warnings: 1,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 60, cfg.Animation.FPS)
			},
		},
		{
			name: "multiple invalid fields",
			mutate: func(c *Config) {
				c.Toast.MaxVisible = 0
				c.Animation.EntranceMs = -10
				c.Animation.ExitMs = 0
			},
			warnings: 3,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.Toast.MaxVisible)
				assert.Equal(t, 300, cfg.Animation.EntranceMs)
				assert.Equal(t, 250, cfg.Animation.ExitMs)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			warnings := cfg.Normalize()
			assert.Len(t, warnings, tt.warnings)
			tt.check(t, cfg)
		})
	}
}

func TestDurationAccessors(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 3*time.Second, cfg.DefaultDuration())
	assert.Equal(t, 300*time.Millisecond, cfg.EntranceDuration())
	assert.Equal(t, 250*time.Millisecond, cfg.ExitDuration())
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}
