// Package markdown renders reviews as Markdown documents using
// nao1215/markdown.
package markdown

import (
	"io"
	"strings"

	"github.com/fwojciec/donate"
	"github.com/nao1215/markdown"
)

// Ensure Renderer implements donate.ReviewRenderer at compile time.
var _ donate.ReviewRenderer = (*Renderer)(nil)

// Renderer writes a review as one Markdown document.
type Renderer struct {
	// Title is the top-level heading.
	Title string
}

// NewRenderer creates a new Renderer with the given document title.
func NewRenderer(title string) *Renderer {
	return &Renderer{Title: title}
}

// Render writes the review in lang: a heading per table followed by the
// table itself. Null cells are left empty.
func (r *Renderer) Render(w io.Writer, review *donate.Review, lang string) error {
	md := markdown.NewMarkdown(w)

	md.H1(r.Title)
	md.PlainText("")
	if desc := review.Description.Get(lang); desc != "" {
		md.PlainText(desc)
		md.PlainText("")
	}

	for _, rt := range review.Tables {
		md.H2(rt.Title.Get(lang))
		md.PlainText("")

		if rt.Table.Len() == 0 {
			md.PlainText("_No data_")
			md.PlainText("")
			continue
		}

		rows := rt.Table.Strings("")
		for _, row := range rows {
			for i, cell := range row {
				row[i] = escapeCell(cell)
			}
		}
		md.Table(markdown.TableSet{
			Header: rt.Table.Columns,
			Rows:   rows,
		})
		md.PlainText("")
	}

	if q := review.Question.Get(lang); q != "" {
		md.Note(q)
	}

	return md.Build()
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

// escapeCell keeps cell text on one table line.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}
