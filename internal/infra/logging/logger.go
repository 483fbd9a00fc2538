// Package logging provides file-based logging for taskdeck. Logs go to
// a file in the user's state directory so they never corrupt the
// terminal UI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// logFileName is the name of the log file inside the state directory.
const logFileName = "taskdeck.log"

// Ensure Logger implements domain.Logger.
var _ domain.Logger = (*Logger)(nil)

// Logger wraps slog.Logger with lazy file-based output.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file     *os.File
	slogger  *slog.Logger
	stateDir string
	mu       sync.Mutex
	level    slog.Level
}

// New creates a Logger that writes to the given state directory.
// If stateDir is empty, logging is disabled (returns a no-op logger).
func New(stateDir string, level slog.Level) *Logger {
	return &Logger{stateDir: stateDir, level: level}
}

// DefaultStateDir returns the XDG state directory for taskdeck.
func DefaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "taskdeck")
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

// handler opens the log file on first use.
func (l *Logger) handler() *slog.Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.slogger != nil {
		return l.slogger
	}
	if l.stateDir == "" {
		l.slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return l.slogger
	}
	if err := os.MkdirAll(l.stateDir, 0o750); err != nil {
		l.slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return l.slogger
	}
	file, err := os.OpenFile(filepath.Join(l.stateDir, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		l.slogger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return l.slogger
	}
	l.file = file
	l.slogger = slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: l.level}))
	return l.slogger
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.slogger = nil
	return err
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, args ...any) { l.handler().Debug(msg, args...) }

// Info logs at info level.
func (l *Logger) Info(msg string, args ...any) { l.handler().Info(msg, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, args ...any) { l.handler().Warn(msg, args...) }

// Error logs at error level.
func (l *Logger) Error(msg string, args ...any) { l.handler().Error(msg, args...) }
