package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config configures the logger. Tags allow embedding in an env-parsed app config.
type Config struct {
	Level  string       `env:"LOG_LEVEL"  yaml:"level"`
	Format string       `env:"LOG_FORMAT" yaml:"format"`
	Sentry SentryConfig `yaml:"sentry"`
}

// New creates a logger writing to stdout with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is New with an explicit destination.
// Unknown levels fall back to info, unknown formats to JSON.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	handler := newHandler(w, cfg)
	if cfg.Sentry.DSN != "" {
		if sentryHandler, ok := newSentryHandler(cfg.Sentry, handler); ok {
			handler = newMultiHandler(handler, sentryHandler)
		}
	}
	return slog.New(NewLogHandlerDecorator(handler, extractors...))
}

func newHandler(w io.Writer, cfg Config) slog.Handler {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// ParseLevel converts debug, info, warn/warning or error (any case) to a slog.Level.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}
