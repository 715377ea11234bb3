package donate

import (
	"io"
	"strings"
)

// Archive is a read-only view over the entries of an uploaded export bundle.
type Archive interface {
	// Entries returns every entry path in archive index order.
	Entries() []string

	// Open opens the entry with the exact path name.
	// Returns ENOTFOUND if no such entry exists.
	Open(name string) (io.ReadCloser, error)
}

// Locate returns the first entry, in archive index order, whose path ends
// with suffix. Export bundles are rooted at a directory whose name varies
// per participant and per export, so extractors never address entries by
// full path. The second return value is false when nothing matches.
func Locate(a Archive, suffix string) (string, bool) {
	for _, name := range a.Entries() {
		if strings.HasSuffix(name, suffix) {
			return name, true
		}
	}
	return "", false
}

// ReadEntry locates the entry ending with suffix and reads it fully.
// It returns the resolved path together with the content.
// Returns ENOTFOUND if no entry matches.
func ReadEntry(a Archive, suffix string) (string, []byte, error) {
	name, ok := Locate(a, suffix)
	if !ok {
		return "", nil, Errorf(ENOTFOUND, "no archive entry ends with %q", suffix)
	}
	data, err := ReadFile(a, name)
	if err != nil {
		return name, nil, err
	}
	return name, data, nil
}

// ReadFile opens the entry with the exact path name and reads it fully.
func ReadFile(a Archive, name string) ([]byte, error) {
	rc, err := a.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, Errorf(EINVALID, "read %s: %v", name, err)
	}
	return data, nil
}

// EntriesUnder returns, in archive order, the entries whose path contains
// the directory dir and ends with ext.
func EntriesUnder(a Archive, dir, ext string) []string {
	var names []string
	for _, name := range a.Entries() {
		if strings.Contains(name, dir) && strings.HasSuffix(name, ext) {
			names = append(names, name)
		}
	}
	return names
}
