package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/donate"
)

// Ensure LoggingDonationWriter implements donate.DonationWriter.
var _ donate.DonationWriter = (*LoggingDonationWriter)(nil)

// LoggingDonationWriter wraps a DonationWriter with logging.
type LoggingDonationWriter struct {
	next   donate.DonationWriter
	logger *slog.Logger
}

// NewLoggingDonationWriter creates a new LoggingDonationWriter.
func NewLoggingDonationWriter(next donate.DonationWriter, logger *slog.Logger) *LoggingDonationWriter {
	return &LoggingDonationWriter{next: next, logger: logger}
}

// CreateDonation delegates to the wrapped writer and logs the operation.
func (w *LoggingDonationWriter) CreateDonation(ctx context.Context, d *donate.Donation) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("donation",
			"key", d.Key,
			"bytes", len(d.Payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.CreateDonation(ctx, d)
}
