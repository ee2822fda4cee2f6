// Package logging builds the structured logger used by the metamock CLI.
// Every logger carries a run_id attribute so the lines of one invocation
// can be grouped.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config errors.
var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
)

// Config selects the level and format of the logger.
type Config struct {
	Level  string
	Format string
}

// ParseLevel maps debug, info, warn and error (any case) to a slog level.
// An empty string selects warn so the CLI stays quiet by default.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// NewRunID returns an identifier for one CLI invocation.
func NewRunID() string {
	return uuid.NewString()
}

// New returns a logger writing to w, tagged with runID.
func New(w io.Writer, cfg Config, runID string) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Format)
	}
	return slog.New(h).With("run_id", runID), nil
}
