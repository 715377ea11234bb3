// Package pretty renders reviews and donations as terminal tables using
// go-pretty.
package pretty

import (
	"io"
	"strconv"
	"time"

	"github.com/fwojciec/donate"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Ensure Renderer implements donate.ReviewRenderer at compile time.
var _ donate.ReviewRenderer = (*Renderer)(nil)

// NoData is shown in place of the rows of an empty table.
const NoData = "(no data)"

// Renderer writes one rounded table per review entry.
type Renderer struct{}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

// Render writes the review in lang. Null cells are shown empty.
func (r *Renderer) Render(w io.Writer, review *donate.Review, lang string) error {
	if desc := review.Description.Get(lang); desc != "" {
		if _, err := io.WriteString(w, desc+"\n\n"); err != nil {
			return err
		}
	}

	for _, rt := range review.Tables {
		t := newTable()
		t.SetTitle("%s", rt.Title.Get(lang))

		header := make(table.Row, 0, len(rt.Table.Columns))
		for _, c := range rt.Table.Columns {
			header = append(header, c)
		}
		t.AppendHeader(header)

		if rt.Table.Len() == 0 {
			t.AppendRow(table.Row{NoData})
		}
		for _, cells := range rt.Table.Strings("") {
			row := make(table.Row, 0, len(cells))
			for _, c := range cells {
				row = append(row, c)
			}
			t.AppendRow(row)
		}
		t.SetCaption("%s, %s", rt.ID, rowCount(rt.Table.Len()))

		if _, err := io.WriteString(w, t.Render()+"\n\n"); err != nil {
			return err
		}
	}

	if q := review.Question.Get(lang); q != "" {
		if _, err := io.WriteString(w, q+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func rowCount(n int) string {
	if n == 1 {
		return "1 row"
	}
	return strconv.Itoa(n) + " rows"
}

// RenderDonations writes a summary table of stored donations.
func RenderDonations(w io.Writer, donations []*donate.Donation) error {
	t := newTable()
	t.AppendHeader(table.Row{"ID", "Key", "Platform", "Bytes", "Hash", "Created"})
	for _, d := range donations {
		t.AppendRow(table.Row{d.ID, d.Key, d.Platform, len(d.Payload), d.ContentHash, d.CreatedAt.Format(time.DateTime)})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Total", len(donations)})
	_, err := io.WriteString(w, t.Render()+"\n")
	return err
}
