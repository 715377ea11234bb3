package extract

import (
	"github.com/fwojciec/donate"
)

// Diagnostic is an error an extractor reported while producing its table.
type Diagnostic struct {
	Extractor string
	Err       error
}

// Result is the outcome of running a plan over an archive.
type Result struct {
	Review      *donate.Review
	Diagnostics []Diagnostic
}

// Run executes the plan's extractors one after another and assembles the
// review. Extractor errors never stop the run; they are returned as
// diagnostics next to the tables. An error is returned only when a table
// does not match its declared schema.
func Run(a donate.Archive, plan *Plan) (*Result, error) {
	result := &Result{}
	tables := make([]*donate.Table, 0, len(plan.Steps))

	for _, step := range plan.Steps {
		e := step.Extractor
		table, err := e.Extract(a)
		if err != nil {
			result.Diagnostics = append(result.Diagnostics, Diagnostic{Extractor: e.Name(), Err: err})
		}
		if table == nil {
			table = donate.NewTable(e.Name(), e.Columns()...)
		}
		if err := table.Validate(); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	review, err := donate.Assemble(tables, plan.Titles())
	if err != nil {
		return nil, err
	}
	result.Review = review
	return result, nil
}
