package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tuneinsight/polycalc/config"
)

// newLogger returns a structured logger writing to w with the level and format of cfg.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	return slog.New(handler), nil
}
