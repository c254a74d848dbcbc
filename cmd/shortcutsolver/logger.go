package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger creates the logger for the -log-level and -log-format flags.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelStr)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch formatStr {
	case "text":
		return slog.New(slog.NewTextHandler(outW, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(outW, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", formatStr)
}
