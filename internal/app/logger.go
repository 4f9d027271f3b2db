package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/placement-backend/internal/config"
)

// NewLogger builds the process logger from cfg, writes to stderr and installs
// it as the slog default. Every record carries the service name and build
// version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// newLogger uses JSON for format "json" and text otherwise; text output adds
// source locations. Level accepts anything slog.Level parses ("warn",
// "DEBUG", "info+2") and falls back to info.
func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	isJSON := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !isJSON,
	}

	var handler slog.Handler
	if isJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", ServiceName),
		slog.String("version", Version),
	)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
