package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	main "github.com/fwojciec/donate/cmd/donate"
	"github.com/fwojciec/donate/config"
	"github.com/fwojciec/donate/zip/ziptest"
)

const tiktokExport = `{
	"Activity": {
		"Like List": {"ItemFavoriteList": [{"Date": "2023-05-01 10:00:00", "Link": "https://www.tiktokv.com/share/video/1/"}]},
		"Search History": {"SearchList": [{"Date": "2023-05-02 09:00:00", "SearchTerm": "cats"}]}
	}
}`

func tiktokZip(t *testing.T) string {
	t.Helper()
	return ziptest.WriteFile(t, ziptest.File{Name: "TikTok_Data/user_data.json", Body: tiktokExport})
}

// newDeps returns dependencies with default settings, discarded logs and
// the given participant input.
func newDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cfg := config.Default()
	cfg.DBPath = ":memory:"
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader(stdin),
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, stdout, stderr
}
