// Package logger writes chatgate diagnostics to a log file. The terminal is
// owned by the TUI, so nothing here ever writes to stdout.
//
// Callers take a structured logger scoped to what they are doing:
//
//	log := logger.WithComponent("access")
//	log.Info("check resolved", "state", state)
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called
const DefaultLogPath = "/tmp/chatgate-debug.log"

// Levels accepted by SetLevel.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// sink is the single destination every scoped logger writes through.
type sink struct {
	mu     sync.Mutex
	level  slog.LevelVar
	base   *slog.Logger
	file   *os.File
	path   string
	opened bool
}

var out sink

// ParseLevel maps "debug", "info", "warn" or "error" to a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// SetLevel sets the minimum level written
func SetLevel(level slog.Level) {
	out.level.Set(level)
}

// SetDebug switches between debug and info output
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelInfo)
}

// Init opens path for appending and routes all logging there.
// Calling Init again after a successful call is a no-op.
func Init(path string) error {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.opened {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	out.attach(f, f, path)
	return nil
}

// InitWriter routes logging to w. Tests use it to inspect output.
func InitWriter(w io.Writer) {
	out.mu.Lock()
	defer out.mu.Unlock()
	out.attach(w, nil, "")
}

// attach must be called with mu held.
func (s *sink) attach(w io.Writer, f *os.File, path string) {
	if s.file != nil && s.file != f {
		s.file.Close()
	}
	s.file = f
	s.path = path
	s.opened = true
	s.base = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &s.level}))
	s.base.Info("logger initialized", "path", path)
}

// logger returns the base logger, opening DefaultLogPath on first use.
func (s *sink) logger() *slog.Logger {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		f, err := os.OpenFile(DefaultLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to open log file %s: %v\n", DefaultLogPath, err)
			s.opened = true
		} else {
			s.attach(f, f, DefaultLogPath)
		}
	}
	if s.base == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.base
}

// Path returns the file currently receiving log output, or "" when logging
// to a writer supplied by InitWriter.
func Path() string {
	out.mu.Lock()
	defer out.mu.Unlock()
	return out.path
}

// Close closes the log file. Later log calls are dropped.
func Close() {
	out.mu.Lock()
	defer out.mu.Unlock()

	if out.file != nil {
		out.file.Close()
		out.file = nil
	}
	out.base = nil
}

// Reset returns the logger to its initial state. Used by tests.
func Reset() {
	Close()
	out.mu.Lock()
	defer out.mu.Unlock()
	out.opened = false
	out.path = ""
	out.level.Set(LevelInfo)
}

// WithComponent returns a logger with the component attribute attached.
func WithComponent(component string) *slog.Logger {
	return out.logger().With(slog.String("component", component))
}

// WithMount returns a logger tagged with a shell mount ID, so every line
// from one mount of the shell can be grepped together.
func WithMount(mountID string) *slog.Logger {
	return WithComponent("shell").With(slog.String("mountID", mountID))
}
