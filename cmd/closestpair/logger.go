package main

import (
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/osuushi/closestpair/advanced"
	"github.com/pkg/errors"
)

// Logger wraps slog.Logger and receives the engine's stage events, so every
// stage is logged with structured fields instead of free text.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
func NewLogger(handler slog.Handler) *Logger {
	return &Logger{Logger: slog.New(handler)}
}

// NewLoggerFor builds a text or JSON logger at the named level.
func NewLoggerFor(w io.Writer, format, level string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, errors.Errorf("unknown log format %q", format)
}

// Observe logs one stage event at debug level.
func (l *Logger) Observe(e advanced.Event) {
	attrs := []any{slog.String("stage", string(e.Stage))}
	switch e.Stage {
	case advanced.StageSort:
		attrs = append(attrs, slog.Int("points", e.Points))
	case advanced.StageSplit:
		attrs = append(attrs, slog.Int("left", e.LeftCount), slog.Int("right", e.RightCount), slog.Float64("mid_x", e.MidX))
	case advanced.StageHalves:
		attrs = append(attrs, distanceAttr("left_distance", e.LeftDistance), distanceAttr("right_distance", e.RightDistance))
	case advanced.StageDelta:
		attrs = append(attrs, distanceAttr("delta", e.Delta))
	case advanced.StageStrip:
		attrs = append(attrs, slog.Int("strip_size", e.StripSize), distanceAttr("delta", e.Delta))
	case advanced.StageScan:
		attrs = append(attrs, slog.Int("comparisons", e.Comparisons), distanceAttr("distance", e.Distance))
	case advanced.StageMerge:
		attrs = append(attrs, distanceAttr("distance", e.Distance), slog.Bool("cross_case", e.CrossCase))
	}
	l.Debug("stage", attrs...)
}

// JSON can't encode infinity, so infinite distances are logged as strings.
func distanceAttr(key string, v float64) slog.Attr {
	if math.IsInf(v, 0) {
		return slog.String(key, "inf")
	}
	return slog.Float64(key, v)
}
