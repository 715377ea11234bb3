// Package instagram extracts records from Instagram data exports.
//
// Instagram offers exports in two layouts. JSON exports are read with
// fixed key paths. HTML exports are scraped with positional heuristics
// over generated class names; those extractors run on any
// donate.HTMLParser, so the same extractor works with every DOM backend.
package instagram

import (
	"errors"

	"github.com/fwojciec/donate"
)

// target is an archive entry an extractor reads, with the record kind
// written for rows found in it.
type target struct {
	suffix string
	kind   string
}

// extractor holds what JSON and HTML extractors share: identity, schema
// and the entries they read.
type extractor struct {
	name    string
	columns []string
	targets []target
}

// Name returns the extractor identifier.
func (e *extractor) Name() string { return e.name }

// Columns returns the declared column schema.
func (e *extractor) Columns() []string { return e.columns }

// each resolves every target and calls fn with the entry content. Missing
// targets are reported as ENOTFOUND only when none of them is in the
// archive; the errors returned by fn are collected.
func (e *extractor) each(a donate.Archive, fn func(path, kind string, data []byte) error) error {
	var errs, missing []error
	found := 0
	for _, t := range e.targets {
		path, data, err := donate.ReadEntry(a, t.suffix)
		if donate.ErrorCode(err) == donate.ENOTFOUND {
			missing = append(missing, err)
			continue
		} else if err != nil {
			errs = append(errs, err)
			continue
		}
		found++
		if err := fn(path, t.kind, data); err != nil {
			errs = append(errs, err)
		}
	}
	if found == 0 && len(errs) == 0 {
		if len(missing) == 1 {
			return missing[0]
		}
		return donate.Errorf(donate.ENOTFOUND, "%s: none of %d target files found", e.name, len(e.targets))
	}
	return errors.Join(errs...)
}
