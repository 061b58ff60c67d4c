// Package log builds the application's slog handlers and carries a
// request-scoped logger through contexts.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Output formats accepted by NewHandler.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTint = "tint"
)

// Config holds logger configuration
type Config struct {
	Level     slog.Level
	Format    string
	Component string
}

// DefaultConfig returns sensible defaults for logging
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    FormatText,
		Component: ComponentApp,
	}
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
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
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// NewHandler returns a handler writing to w in the configured format.
func NewHandler(w io.Writer, cfg Config) (slog.Handler, error) {
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.Level}), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level}), nil
	case FormatTint:
		return tint.NewHandler(w, &tint.Options{
			Level:      cfg.Level,
			TimeFormat: time.Kitchen,
		}), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}
}

// New creates a logger tagged with cfg.Component.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	handler, err := NewHandler(w, cfg)
	if err != nil {
		return nil, err
	}
	logger := slog.New(handler)
	if cfg.Component != "" {
		logger = logger.With(FieldComponent, cfg.Component)
	}
	return logger, nil
}
