// Package ziptest builds in-memory zip archives for tests.
package ziptest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	dzip "github.com/fwojciec/donate/zip"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

// File is a single archive entry.
type File struct {
	Name string
	Body string
}

// Bytes returns the encoded zip bundle holding files in the given order.
func Bytes(t testing.TB, files ...File) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range files {
		fw, err := w.Create(f.Name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.Body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return buf.Bytes()
}

// New returns an archive holding files in the given order.
func New(t testing.TB, files ...File) *dzip.Archive {
	t.Helper()

	data := Bytes(t, files...)
	a, err := dzip.NewArchive(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return a
}

// WriteFile writes a zip bundle holding files to a temporary directory and
// returns its path.
func WriteFile(t testing.TB, files ...File) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.zip")
	require.NoError(t, os.WriteFile(path, Bytes(t, files...), 0o644))
	return path
}
