package mock

import (
	"io"

	"github.com/fwojciec/donate"
)

var _ donate.Archive = (*Archive)(nil)

// Archive is a mock implementation of donate.Archive.
type Archive struct {
	EntriesFn func() []string
	OpenFn    func(name string) (io.ReadCloser, error)
}

func (a *Archive) Entries() []string {
	return a.EntriesFn()
}

func (a *Archive) Open(name string) (io.ReadCloser, error) {
	return a.OpenFn(name)
}
