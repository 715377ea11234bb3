package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/mock"
	dslog "github.com/fwojciec/donate/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(table *donate.Table, err error) *mock.Extractor {
	return &mock.Extractor{
		NameFn:    func() string { return "tiktok.likes" },
		ColumnsFn: func() []string { return []string{"type", "timestamp", "link"} },
		ExtractFn: func(donate.Archive) (*donate.Table, error) { return table, err },
	}
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with rows and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		table := donate.NewTable("tiktok.likes", "type", "timestamp", "link")
		table.Append(donate.Text("like"), donate.Text("2023-01-01"), donate.Null())

		e := dslog.NewLoggingExtractor(newExtractor(table, nil), logger)
		got, err := e.Extract(nil)

		require.NoError(t, err)
		assert.Same(t, table, got)
		assert.Equal(t, "tiktok.likes", e.Name())
		assert.Equal(t, []string{"type", "timestamp", "link"}, e.Columns())
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "extractor=tiktok.likes")
		assert.Contains(t, output, "rows=1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs missing data at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		table := donate.NewTable("tiktok.likes", "type")

		e := dslog.NewLoggingExtractor(newExtractor(table, donate.Errorf(donate.ENOTFOUND, "no likes")), logger)
		_, err := e.Extract(nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "message=no likes")
	})

	t.Run("logs decode failures as warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		e := dslog.NewLoggingExtractor(newExtractor(nil, donate.Errorf(donate.EINVALID, "broken")), logger)
		_, err := e.Extract(nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "rows=0")
	})
}

func TestDecorator(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	table := donate.NewTable("tiktok.likes", "type")

	e := dslog.Decorator(logger)(newExtractor(table, nil))
	_, err := e.Extract(nil)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "extractor=tiktok.likes")
}
