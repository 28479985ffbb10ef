// Package logging builds the slog logger used by the CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler. Zero values mean warn level, text format,
// colour off, writing to stderr.
type Options struct {
	Level   string
	Format  string
	Color   bool
	Out     io.Writer
	NoTimes bool
}

// New returns a logger for the given options.
func New(opts Options) (*slog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	var replace func([]string, slog.Attr) slog.Attr
	if opts.NoTimes {
		replace = dropTime
	}

	var h slog.Handler
	switch f := strings.ToLower(strings.TrimSpace(opts.Format)); f {
	case "", "text":
		h = tint.NewHandler(out, &tint.Options{
			Level:       level,
			TimeFormat:  time.TimeOnly,
			NoColor:     !opts.Color,
			ReplaceAttr: replace,
		})
	case "logfmt":
		h = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level, ReplaceAttr: replace})
	case "json":
		h = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level, ReplaceAttr: replace})
	default:
		return nil, fmt.Errorf("invalid log format %q: expected text, logfmt, or json", opts.Format)
	}
	return slog.New(h), nil
}

// ParseLevel maps a level name to a slog.Level. The empty string is warn.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: expected debug, info, warn, or error", level)
	}
}

func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
