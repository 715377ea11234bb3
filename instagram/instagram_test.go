package instagram_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/goquery"
	"github.com/fwojciec/donate/html"
	"github.com/fwojciec/donate/zip/ziptest"
	"github.com/stretchr/testify/require"
)

// exportRoot is the per-participant directory every export is wrapped in.
const exportRoot = "instagram_jane.participant_20240901/"

// loadExport returns an archive holding every file below testdata/dir,
// rooted at exportRoot.
func loadExport(t *testing.T, dir string) donate.Archive {
	t.Helper()

	base := filepath.Join("testdata", dir)
	var files []ziptest.File
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		files = append(files, ziptest.File{Name: exportRoot + filepath.ToSlash(rel), Body: string(data)})
		return nil
	})
	require.NoError(t, err)
	return ziptest.New(t, files...)
}

type namedParser struct {
	name   string
	parser donate.HTMLParser
}

func parsers() []namedParser {
	return []namedParser{
		{name: "goquery", parser: goquery.NewParser()},
		{name: "html", parser: html.NewParser()},
	}
}

// rows renders table rows as strings with null cells shown as NULL.
func rows(t *donate.Table) [][]string {
	return t.Strings("NULL")
}
