package mock

import "github.com/fwojciec/donate"

var _ donate.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of donate.Extractor.
type Extractor struct {
	NameFn    func() string
	ColumnsFn func() []string
	ExtractFn func(a donate.Archive) (*donate.Table, error)
}

func (e *Extractor) Name() string {
	return e.NameFn()
}

func (e *Extractor) Columns() []string {
	return e.ColumnsFn()
}

func (e *Extractor) Extract(a donate.Archive) (*donate.Table, error) {
	return e.ExtractFn(a)
}

var _ donate.FormatDetector = (*FormatDetector)(nil)

// FormatDetector is a mock implementation of donate.FormatDetector.
type FormatDetector struct {
	DetectFn func(a donate.Archive) donate.Format
}

func (d *FormatDetector) Detect(a donate.Archive) donate.Format {
	return d.DetectFn(a)
}
