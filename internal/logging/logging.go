// Package logging builds the application logger. The TUI owns the terminal,
// so log output goes to a file; when the file cannot be opened the logger
// discards instead of failing startup.
package logging

import (
	"log/slog"
	"os"
	"path/filepath"
)

// New returns a text-handler slog.Logger writing to path, plus a close
// function. An empty path or an open failure yields a discard logger and a
// no-op close.
func New(path string) (*slog.Logger, func()) {
	if path == "" {
		return Discard(), func() {}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Discard(), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return Discard(), func() {}
	}

	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { _ = f.Close() }
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
