// Package logger provides structured logging for bhist.
//
// The interactive driver owns the terminal, so its logs normally go to a file
// in the data directory; the line menu logs to stderr.
//
//	log := logger.New(logger.Config{Level: "debug", Output: "stderr"})
//	log.Info("session started", "session_id", id)
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger provides structured logging with levels and fields.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional context fields.
	With(keysAndValues ...any) Logger

	// Close releases the log file, if one was opened. Loggers derived with
	// With share it, so close only the root.
	Close() error
}

// Config contains logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string

	// Output is stdout, stderr, or a file path opened for appending.
	Output string

	// Format is text or json.
	Format string
}

type logger struct {
	slogger *slog.Logger
	closer  io.Closer
}

// New creates a logger. An output that cannot be opened falls back to stderr
// and the failure is returned alongside the usable logger.
func New(cfg Config) (Logger, error) {
	writer, err := getWriter(cfg.Output)
	if err != nil {
		writer = os.Stderr
	}
	l := newLogger(cfg, writer)
	if f, ok := writer.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		l.closer = f
	}
	return l, err
}

// NewWithWriter creates a logger writing to w, ignoring cfg.Output. The
// caller keeps ownership of w.
func NewWithWriter(cfg Config, w io.Writer) Logger {
	return newLogger(cfg, w)
}

func newLogger(cfg Config, w io.Writer) *logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return &logger{slogger: slog.New(handler)}
}

func (l *logger) Debug(msg string, keysAndValues ...any) {
	l.slogger.Debug(msg, keysAndValues...)
}

func (l *logger) Info(msg string, keysAndValues ...any) {
	l.slogger.Info(msg, keysAndValues...)
}

func (l *logger) Warn(msg string, keysAndValues ...any) {
	l.slogger.Warn(msg, keysAndValues...)
}

func (l *logger) Error(msg string, keysAndValues ...any) {
	l.slogger.Error(msg, keysAndValues...)
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{slogger: l.slogger.With(keysAndValues...), closer: l.closer}
}

func (l *logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// parseLevel defaults to info for unrecognized levels.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getWriter(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nil
	case "stderr", "":
		return os.Stderr, nil
	default:
		if err := os.MkdirAll(filepath.Dir(output), 0o700); err != nil {
			return nil, fmt.Errorf("creating log dir: %w", err)
		}
		// #nosec G304: output path comes from trusted config
		f, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
		}
		return f, nil
	}
}

// Noop returns a logger that discards everything.
func Noop() Logger {
	return &logger{slogger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}
