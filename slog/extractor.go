// Package slog provides logging decorators for donate services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/donate"
)

// Ensure LoggingExtractor implements donate.Extractor.
var _ donate.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging. Missing data is logged
// at info level, other extractor errors as warnings.
type LoggingExtractor struct {
	next   donate.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next donate.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Decorator returns a function wrapping extractors with logger, for use
// with extract.Plan.Wrap.
func Decorator(logger *slog.Logger) func(donate.Extractor) donate.Extractor {
	return func(e donate.Extractor) donate.Extractor {
		return NewLoggingExtractor(e, logger)
	}
}

func (e *LoggingExtractor) Name() string { return e.next.Name() }

func (e *LoggingExtractor) Columns() []string { return e.next.Columns() }

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(a donate.Archive) (table *donate.Table, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if code := donate.ErrorCode(err); code != "" && code != donate.ENOTFOUND {
			level = slog.LevelWarn
		}
		rows := 0
		if table != nil {
			rows = table.Len()
		}
		e.logger.Log(context.Background(), level, "extract",
			"extractor", e.next.Name(),
			"rows", rows,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(a)
}
