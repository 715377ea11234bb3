package slog

import (
	"log/slog"

	"github.com/fwojciec/donate"
)

// Ensure LoggingDetector implements donate.FormatDetector.
var _ donate.FormatDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a FormatDetector with debug logging.
type LoggingDetector struct {
	next   donate.FormatDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next donate.FormatDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the detected format.
func (d *LoggingDetector) Detect(a donate.Archive) donate.Format {
	format := d.next.Detect(a)
	name := string(format)
	if format == donate.FormatUnknown {
		name = "unknown"
	}
	d.logger.Debug("format detected",
		"entries", len(a.Entries()),
		"format", name,
	)
	return format
}
