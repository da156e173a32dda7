package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Format is the record encoding written by a Logger
type Format string

const (
	// FormatText writes logfmt-style key=value records
	FormatText Format = "text"
	// FormatJSON writes one JSON object per record
	FormatJSON Format = "json"
)

type config struct {
	level  slog.Level
	output io.Writer
	format Format
}

// Option configures a Logger created by New
type Option func(*config)

// WithLevel sets the minimum level that is written
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithOutput sets the destination writer
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithFormat sets the record encoding
func WithFormat(format Format) Option {
	return func(c *config) { c.format = format }
}

// WithDebug enables debug records
func WithDebug() Option {
	return WithLevel(slog.LevelDebug)
}

// WithQuiet restricts output to warnings and errors
func WithQuiet() Option {
	return WithLevel(slog.LevelWarn)
}

// ParseLevel converts a flag value such as "debug" into a slog.Level.
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
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// ParseFormat converts a flag value into a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %s", s)
	}
}
