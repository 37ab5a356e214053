// Package logging builds the zerolog loggers used across the application.
//
// The interactive panel owns the terminal, so its logs go to a file under
// the config directory. One-shot commands may log to stderr instead.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const timeFormat = "15:04:05"

// ParseLevel maps a config value onto a zerolog level. Empty means info.
func ParseLevel(level string) (zerolog.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(level))
	if trimmed == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(trimmed)
}

// SetLevel applies level as the process-wide zerolog level. Loggers built
// here do not filter on their own, so the global level is the only gate and
// a later SetGlobalLevel can move it either way.
func SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// New returns a logger writing JSON lines to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger()
}

// NewConsole returns a human readable logger on stderr.
func NewConsole() zerolog.Logger {
	return New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
		NoColor:    true,
	})
}

// OpenFile opens (appending) the log file at path and returns a logger bound
// to it with the closer for the file.
func OpenFile(path string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(f), f, nil
}
