package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/config"
	"github.com/fwojciec/donate/extract"
	"github.com/fwojciec/donate/goquery"
	"github.com/fwojciec/donate/html"
	dslog "github.com/fwojciec/donate/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Config    config.Config
	Logger    *slog.Logger
	Donations donate.DonationService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Settings file (json5)" env:"DONATE_CONFIG"`
	DB      string `help:"Donation database path" env:"DONATE_DB"`
	Locale  string `help:"Language of titles and prompts, e.g. nl or nl-BE" env:"DONATE_LOCALE"`
	Verbose bool   `short:"v" help:"Log every extractor run"`

	Extract ExtractCmd `cmd:"" help:"Extract the tables of a data export and print them"`
	Donate  DonateCmd  `cmd:"" help:"Review a data export and donate it"`
	List    ListCmd    `cmd:"" help:"List stored donations"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored donation"`
	Formats FormatsCmd `cmd:"" help:"List supported export formats"`
}

// ExtractOptions are the flags shared by commands that read an export.
type ExtractOptions struct {
	Format string `help:"Export format: auto, tiktok, instagram-json or instagram-html"`
	Engine string `help:"HTML engine for Instagram HTML exports: goquery or html"`
}

// apply overrides settings with the flags that were set.
func (o ExtractOptions) apply(cfg *config.Config) {
	if o.Format != "" {
		cfg.Format = o.Format
	}
	if o.Engine != "" {
		cfg.Engine = o.Engine
	}
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	ExtractOptions `embed:""`

	Path   string `arg:"" help:"Data export zip file"`
	Output string `short:"o" help:"Output: table, markdown or json"`
}

// DonateCmd is the "donate" subcommand.
type DonateCmd struct {
	ExtractOptions `embed:""`

	Path    string `arg:"" help:"Data export zip file"`
	Session string `help:"Participant session ID (default: random)"`
	Yes     bool   `short:"y" help:"Donate without asking"`
	Out     string `help:"Also write the donation as JSON to this directory"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Session string `help:"Only show donations of this session"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Donation ID"`
	Force bool   `help:"Confirm deletion"`
}

// FormatsCmd is the "formats" subcommand.
type FormatsCmd struct{}

// newParser returns the DOM backend named by engine.
func newParser(engine string) donate.HTMLParser {
	if engine == config.EngineHTML {
		return html.NewParser()
	}
	return goquery.NewParser()
}

// newRegistry returns the registry of every plan, detecting formats with
// logging. The configured fallback is expected to be validated already.
func newRegistry(cfg config.Config, logger *slog.Logger) *extract.Registry {
	detector := dslog.NewLoggingDetector(extract.NewDetector(), logger)
	registry := extract.NewDefaultRegistry(detector, newParser(cfg.Engine))
	if fallback, err := cfg.FallbackFormat(); err == nil {
		registry.SetFallback(fallback)
	}
	return registry
}
