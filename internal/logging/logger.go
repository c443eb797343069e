// Package logging provides structured logging for bubbletoast.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...any)
	// Info logs an informational message.
	Info(msg string, args ...any)
	// Warn logs a warning message.
	Warn(msg string, args ...any)
	// Error logs an error message.
	Error(msg string, args ...any)
	// With returns a new logger with additional key-value pairs.
	With(args ...any) Logger
}

// loggerImpl is the charmbracelet/log based implementation.
type loggerImpl struct {
	clogger *clog.Logger
	closer  io.Closer
}

// New creates a Logger writing JSON records to w at the given level.
func New(w io.Writer, level string) Logger {
	clogger := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           parseLevel(level),
	})
	clogger.SetFormatter(clog.JSONFormatter)
	return &loggerImpl{clogger: clogger}
}

// NewFile creates a Logger appending to the file at path. The returned
// closer releases the file handle.
func NewFile(path, level string) (Logger, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, level), f, nil
}

// parseLevel converts a string level to clog.Level.
func parseLevel(level string) clog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return clog.DebugLevel
	case "info":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) {
	l.clogger.Debug(msg, args...)
}

func (l *loggerImpl) Info(msg string, args ...any) {
	l.clogger.Info(msg, args...)
}

func (l *loggerImpl) Warn(msg string, args ...any) {
	l.clogger.Warn(msg, args...)
}

func (l *loggerImpl) Error(msg string, args ...any) {
	l.clogger.Error(msg, args...)
}

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...)}
}

// Nop returns a logger that discards all output.
func Nop() Logger {
	return noopLogger{}
}

// noopLogger is a logger that discards all output.
type noopLogger struct{}

func (n noopLogger) Debug(msg string, args ...any) {}
func (n noopLogger) Info(msg string, args ...any)  {}
func (n noopLogger) Warn(msg string, args ...any)  {}
func (n noopLogger) Error(msg string, args ...any) {}
func (n noopLogger) With(args ...any) Logger       { return n }

// Package-level default logger, settable at the application's composition
// point. Library code falls back to the no-op logger.
var (
	defaultLogger   Logger = noopLogger{}
	defaultLoggerMu sync.RWMutex
)

// SetDefault replaces the package-level default logger.
func SetDefault(l Logger) {
	defaultLoggerMu.Lock()
	defer defaultLoggerMu.Unlock()
	if l == nil {
		l = noopLogger{}
	}
	defaultLogger = l
}

// Default returns the package-level default logger.
func Default() Logger {
	defaultLoggerMu.RLock()
	defer defaultLoggerMu.RUnlock()
	return defaultLogger
}
