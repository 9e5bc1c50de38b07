// Package logging sets up the leveled loggers used across textanim.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pion/logging"
)

// ParseLevel maps a level name to a pion log level.
func ParseLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off", "none":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info", "":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	}
	return logging.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
}

// NewFactory builds a logger factory writing to w at level.
func NewFactory(w io.Writer, level logging.LogLevel) *logging.DefaultLoggerFactory {
	return &logging.DefaultLoggerFactory{
		Writer:          w,
		DefaultLogLevel: level,
		ScopeLevels:     map[string]logging.LogLevel{},
	}
}

// Init opens (or creates) path for appending and returns a factory writing
// to it. An empty path logs to stderr. A terminal UI owns the screen, so
// callers using one should always pass a file. The returned closer must be
// closed on exit.
func Init(path, level string) (*logging.DefaultLoggerFactory, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return NewFactory(os.Stderr, lvl), io.NopCloser(os.Stderr), nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o664)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	factory := NewFactory(f, lvl)
	factory.NewLogger("textanim").Info("logging initialized")
	return factory, f, nil
}
