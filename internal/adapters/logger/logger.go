// Package logger implements the diagnostics adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog. Debug output is emitted
// immediately or not at all; there is no buffering.
type Logger struct {
	mu     sync.RWMutex
	logger *slog.Logger
	debug  bool
}

// New creates a Logger. When debug is false, debug diagnostics are fully
// suppressed.
func New(debug bool) *Logger {
	return NewWithOutput(os.Stderr, debug)
}

// NewWithOutput creates a Logger writing to the given writer. Used by tests.
func NewWithOutput(w io.Writer, debug bool) *Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler),
		debug:  debug,
	}
}

// Info logs an operator-facing message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Debug logs a diagnostic message with key-value pairs. Suppressed entirely
// unless the logger was constructed with debug enabled.
func (l *Logger) Debug(msg string, kv ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.debug {
		return
	}
	l.logger.Debug(msg, kv...)
}

// Error logs a failure, unwinding a zerr chain into a readable cause list.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	var messages []string
	current := err
	for current != nil {
		if m, ok := current.(messager); ok {
			// zerr error: raw message without the chain
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			// Standard error: full Error() and stop
			messages = append(messages, current.Error())
			break
		}
	}

	var lines []string
	for i, msg := range messages {
		switch i {
		case 0:
			lines = append(lines, "Error: "+msg)
		case 1:
			lines = append(lines, "", "  Caused by:", "    → "+msg)
		default:
			lines = append(lines, "    → "+msg)
		}
	}
	l.logger.Error(strings.Join(lines, "\n"))
}
