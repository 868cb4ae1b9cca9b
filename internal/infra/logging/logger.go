// Package logging provides file-based logging for tasktide. Logs go to
// <dir>/tasktide.log so interactive output stays clean.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"tasktide/internal/domain"
)

// Ensure Logger implements the domain.Logger port.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog.Logger with lazily opened file output.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file  *os.File
	log   *slog.Logger
	dir   string
	mu    sync.Mutex
	level slog.Level
}

// New creates a Logger writing to the given directory. If dir is empty,
// logging is disabled.
func New(dir string, level slog.Level) *Logger {
	return &Logger{dir: dir, level: level}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// handler opens the log file on first use. Open failures disable
// logging rather than failing the operation being logged.
func (l *Logger) handler() *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.log != nil {
		return l.log
	}

	var w io.Writer = io.Discard
	if l.dir != "" {
		if f, err := l.openFile(); err == nil {
			l.file = f
			w = f
		} else {
			fmt.Fprintf(os.Stderr, "tasktide: logging disabled: %v\n", err)
		}
	}

	l.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level}))
	return l.log
}

func (l *Logger) openFile() (*os.File, error) {
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	path := filepath.Join(l.dir, "tasktide.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) { l.handler().Debug(msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.handler().Info(msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.handler().Warn(msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.handler().Error(msg, args...) }

// Close releases the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.log = nil
	return err
}
