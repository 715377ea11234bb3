package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/mock"
	dslog "github.com/fwojciec/donate/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingDetector_Detect(t *testing.T) {
	t.Parallel()

	archive := &mock.Archive{
		EntriesFn: func() []string { return []string{"a.json", "b.json"} },
	}

	t.Run("logs detected format at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.FormatDetector{
			DetectFn: func(donate.Archive) donate.Format { return donate.FormatTikTok },
		}

		got := dslog.NewLoggingDetector(inner, logger).Detect(archive)

		assert.Equal(t, donate.FormatTikTok, got)
		output := buf.String()
		assert.Contains(t, output, "format detected")
		assert.Contains(t, output, "format=tiktok")
		assert.Contains(t, output, "entries=2")
	})

	t.Run("names unknown formats", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.FormatDetector{
			DetectFn: func(donate.Archive) donate.Format { return donate.FormatUnknown },
		}

		got := dslog.NewLoggingDetector(inner, logger).Detect(archive)

		assert.Equal(t, donate.FormatUnknown, got)
		assert.Contains(t, buf.String(), "format=unknown")
	})

	t.Run("stays quiet at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.FormatDetector{
			DetectFn: func(donate.Archive) donate.Format { return donate.FormatTikTok },
		}

		dslog.NewLoggingDetector(inner, logger).Detect(archive)

		assert.Empty(t, buf.String())
	})
}
