// Package zip provides a donate.Archive backed by a zip file.
package zip

import (
	"errors"
	"io"
	"io/fs"

	"github.com/fwojciec/donate"
	"github.com/klauspost/compress/zip"
)

// Ensure Archive implements donate.Archive at compile time.
var _ donate.Archive = (*Archive)(nil)

// Archive is an opened zip bundle.
type Archive struct {
	r      *zip.Reader
	closer io.Closer
	names  []string
	files  map[string]*zip.File
}

// Open opens the zip file at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it is not a
// readable zip archive.
func Open(path string) (*Archive, error) {
	rc, err := zip.OpenReader(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, donate.Errorf(donate.ENOTFOUND, "file %q does not exist", path)
	} else if err != nil {
		return nil, donate.Errorf(donate.EINVALID, "not a valid zip archive: %v", err)
	}
	a := newArchive(&rc.Reader)
	a.closer = rc
	return a, nil
}

// NewArchive reads a zip bundle of the given size from r.
// Returns EINVALID if r does not hold a zip archive.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, donate.Errorf(donate.EINVALID, "not a valid zip archive: %v", err)
	}
	return newArchive(zr), nil
}

func newArchive(r *zip.Reader) *Archive {
	a := &Archive{
		r:     r,
		names: make([]string, 0, len(r.File)),
		files: make(map[string]*zip.File, len(r.File)),
	}
	for _, f := range r.File {
		a.names = append(a.names, f.Name)
		// First entry wins when a bundle repeats a path.
		if _, ok := a.files[f.Name]; !ok {
			a.files[f.Name] = f
		}
	}
	return a
}

// Validate reports whether the file at path is a readable zip archive.
func Validate(path string) error {
	a, err := Open(path)
	if err != nil {
		return err
	}
	return a.Close()
}

// Entries returns every entry path in archive index order.
func (a *Archive) Entries() []string {
	return a.names
}

// Open opens the entry with the exact path name.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, donate.Errorf(donate.ENOTFOUND, "archive entry %q not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, donate.Errorf(donate.EINVALID, "open archive entry %q: %v", name, err)
	}
	return rc, nil
}

// Close releases the underlying file, if any.
func (a *Archive) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
