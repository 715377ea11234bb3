package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/config"
	"github.com/fwojciec/donate/extract"
	"github.com/fwojciec/donate/markdown"
	"github.com/fwojciec/donate/pretty"
	dslog "github.com/fwojciec/donate/slog"
	"github.com/fwojciec/donate/zip"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	c.ExtractOptions.apply(&cfg)
	if c.Output != "" {
		cfg.Output = c.Output
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}
	lang := config.MatchLocale(cfg.Locale)

	archive, err := zip.Open(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}
	defer archive.Close()

	plan, err := selectPlan(newRegistry(cfg, deps.Logger), cfg, archive)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}
	plan = plan.WithTitles(cfg.Titles).Wrap(dslog.Decorator(deps.Logger))

	result, err := extract.Run(archive, plan)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}
	reportDiagnostics(deps, result.Diagnostics)

	title := fmt.Sprintf("Data export (%s)", plan.Format)
	return newRenderer(cfg.Output, title).Render(deps.Stdout, result.Review, lang)
}

// newRenderer returns the review renderer for output.
func newRenderer(output, title string) donate.ReviewRenderer {
	switch output {
	case config.OutputJSON:
		return jsonRenderer{}
	case config.OutputMarkdown:
		return markdown.NewRenderer(title)
	default:
		return pretty.NewRenderer()
	}
}

// jsonRenderer writes the review as the donation payload document. The
// language is ignored since every translation is included.
type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, review *donate.Review, _ string) error {
	data, err := donate.MarshalReview(review)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// selectPlan returns the forced plan, or detects it from the archive.
func selectPlan(registry *extract.Registry, cfg config.Config, a donate.Archive) (*extract.Plan, error) {
	format, err := cfg.ExportFormat()
	if err != nil {
		return nil, err
	}
	if format != donate.FormatUnknown {
		return registry.Get(format)
	}
	return registry.ForArchive(a)
}

// reportDiagnostics prints extractor failures other than missing data.
func reportDiagnostics(deps *Dependencies, diagnostics []extract.Diagnostic) {
	for _, d := range diagnostics {
		if donate.ErrorCode(d.Err) == donate.ENOTFOUND {
			continue
		}
		fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", d.Extractor, d.Err)
	}
}
