package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "summarizer-console"

// New constructs a JSON slog logger writing to stdout.
func New() *slog.Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter builds the service logger on top of an arbitrary writer.
// The terminal UI uses it to keep log lines off the screen.
func NewWithWriter(w io.Writer) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("service", serviceName)
}

// OpenFile returns a writer for LOG_FILE, or io.Discard when it is unset.
// The returned closer must be called on shutdown.
func OpenFile() (io.Writer, func() error, error) {
	path := strings.TrimSpace(os.Getenv("LOG_FILE"))
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
