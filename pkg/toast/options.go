package toast

import (
	"time"

	"github.com/cristianoliveira/bubbletoast/internal/anim"
	"github.com/cristianoliveira/bubbletoast/internal/config"
	"github.com/cristianoliveira/bubbletoast/internal/entity"
	"github.com/cristianoliveira/bubbletoast/internal/logging"
	"github.com/cristianoliveira/bubbletoast/internal/timer"
)

// Option adjusts a single toast request built by the creator helpers.
type Option func(*entity.Request)

// WithDescription adds secondary text. Toasts with a description render
// taller.
func WithDescription(description string) Option {
	return func(r *entity.Request) { r.Description = description }
}

// WithPosition anchors the toast to a screen region.
func WithPosition(p Position) Option {
	return func(r *entity.Request) { r.Position = p }
}

// WithTheme selects the color table.
func WithTheme(t Theme) Option {
	return func(r *entity.Request) { r.Theme = t }
}

// WithDuration overrides the auto-hide delay. Zero disables auto-hide.
func WithDuration(d time.Duration) Option {
	return func(r *entity.Request) { r.Duration = d }
}

// WithClosable marks the toast dismissible by the user.
func WithClosable(closable bool) Option {
	return func(r *entity.Request) { r.Closable = closable }
}

// WithProgress requests the cosmetic countdown bar.
func WithProgress(show bool) Option {
	return func(r *entity.Request) { r.ShowProgress = show }
}

// WithOnComplete registers a callback invoked after the exit animation
// finishes and the toast is removed. Not invoked on capacity eviction.
func WithOnComplete(fn func()) Option {
	return func(r *entity.Request) { r.OnComplete = fn }
}

// ManagerOption configures a Manager at construction. Injection of the
// timer and animation capabilities belongs at the application's top-level
// composition point; everything has a working default.
type ManagerOption func(*Manager)

// WithConfig supplies loaded configuration defaults.
func WithConfig(cfg *config.Config) ManagerOption {
	return func(m *Manager) {
		if cfg != nil {
			m.cfg = cfg
		}
	}
}

// WithLogger routes the manager's structured logs.
func WithLogger(l logging.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.log = l
		}
	}
}

// WithClock overrides the creation-time source.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.clock = now
		}
	}
}

// WithTimerService injects the auto-hide timer capability.
func WithTimerService(s timer.Service) ManagerOption {
	return func(m *Manager) {
		if s != nil {
			m.timers = s
		}
	}
}

// WithAnimationDriver injects the animation capability. The default is a
// frame-stepped driver advanced by the overlay Model; headless callers can
// pass anim.NewInstant().
func WithAnimationDriver(d anim.Driver) ManagerOption {
	return func(m *Manager) {
		if d != nil {
			m.driver = d
		}
	}
}

// WithMaxVisible caps the number of concurrently active toasts.
func WithMaxVisible(n int) ManagerOption {
	return func(m *Manager) {
		if n > 0 {
			m.cfg.Toast.MaxVisible = n
		}
	}
}

// WithDefaultDuration sets the auto-hide delay used by the creator helpers.
func WithDefaultDuration(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d >= 0 {
			m.cfg.Toast.DefaultDurationMs = int(d / time.Millisecond)
		}
	}
}
