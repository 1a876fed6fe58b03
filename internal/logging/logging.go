// SPDX-License-Identifier: MIT

// Package logging builds the process-wide slog logger for the graphsample
// CLI. Output goes to stderr, or to a size-rotated file when File is set.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/natefinch/lumberjack"
)

// ErrInvalidConfig is returned for an unknown level or format.
var ErrInvalidConfig = errors.New("logging: invalid config")

// Supported formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config controls the logger. Zero values fall back to info level, text
// format and stderr.
type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSize    int    `yaml:"max_log_size"` // megabytes
	MaxAge     int    `yaml:"max_log_age"`  // days
	MaxBackups int    `yaml:"max_backups"`
}

// DefaultConfig returns info-level text logging to stderr.
func DefaultConfig() Config {
	return Config{Level: "info", Format: FormatText, MaxSize: 100, MaxAge: 30}
}

// Validate checks Level and Format.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	if c.MaxSize < 0 || c.MaxAge < 0 || c.MaxBackups < 0 {
		return fmt.Errorf("%w: rotation limits must be >= 0", ErrInvalidConfig)
	}
	return nil
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels.
// The empty string means info.
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
	}
	return slog.LevelInfo, fmt.Errorf("%w: unknown level %q", ErrInvalidConfig, s)
}

// New returns a logger for c together with a closer for its output. The
// closer is a no-op unless c.File is set.
func New(c Config) (*slog.Logger, io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxBackups,
		}
		w, closer = lj, lj
	}
	return NewWriter(w, c), closer, nil
}

// NewWriter returns a logger for c that writes to w, ignoring c.File.
// Invalid levels and formats fall back to their defaults.
func NewWriter(w io.Writer, c Config) *slog.Logger {
	level, _ := ParseLevel(c.Level)
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.EqualFold(c.Format, FormatJSON) {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
