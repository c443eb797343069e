package toast

import (
	"io"

	"github.com/cristianoliveira/bubbletoast/internal/anim"
	"github.com/cristianoliveira/bubbletoast/internal/config"
	"github.com/cristianoliveira/bubbletoast/internal/logging"
)

// Facade over the internal ambient packages, so host applications can wire
// configuration and logging without reaching into internal/.

// Config holds the tunable defaults for a toast manager.
type Config = config.Config

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	return config.Default()
}

// LoadConfig reads an optional TOML configuration file. A missing file
// yields defaults with no error; a malformed one yields defaults plus the
// parse error. Call Normalize on the result to degrade invalid values.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// Logger is the structured logging interface consumed by WithLogger.
type Logger = logging.Logger

// NewLogger creates a JSON logger writing to w at the given level.
func NewLogger(w io.Writer, level string) Logger {
	return logging.New(w, level)
}

// NewFileLogger creates a JSON logger appending to the file at path.
func NewFileLogger(path, level string) (Logger, io.Closer, error) {
	return logging.NewFile(path, level)
}

// WithInstantAnimations makes every animation complete synchronously.
// Useful for headless use of the Manager, where no frame loop runs.
func WithInstantAnimations() ManagerOption {
	return WithAnimationDriver(anim.NewInstant())
}
