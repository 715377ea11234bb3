package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/config"
	"github.com/fwojciec/donate/flow"
	"github.com/fwojciec/donate/fs"
	"github.com/fwojciec/donate/pretty"
	dslog "github.com/fwojciec/donate/slog"
	"github.com/fwojciec/donate/zip"
	"github.com/google/uuid"
)

// Run executes the donate command by driving the donation dialogue in the
// terminal.
func (c *DonateCmd) Run(deps *Dependencies) error {
	cfg := deps.Config
	c.ExtractOptions.apply(&cfg)
	if c.Out != "" {
		cfg.OutDir = c.Out
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}
	format, _ := cfg.ExportFormat()
	lang := config.MatchLocale(cfg.Locale)

	session := c.Session
	if session == "" {
		session = uuid.New().String()
	}

	controller := flow.NewController(session, openArchive, newRegistry(cfg, deps.Logger))
	controller.Format = format
	controller.Titles = cfg.Titles
	controller.Decorate = dslog.Decorator(deps.Logger)

	writer := donationWriter(deps, cfg)
	input := bufio.NewScanner(deps.Stdin)
	fileOffered := false

	var exit flow.Exit
	cmd, err := controller.Start()
	for err == nil && controller.State() != flow.End {
		var ev flow.Event
		switch cmd := cmd.(type) {
		case flow.Render:
			switch cmd.Page {
			case flow.PageFile:
				// The path argument is the only file the terminal offers.
				if fileOffered {
					ev = flow.Skip{}
				} else {
					fileOffered = true
					ev = flow.FileSelected{Path: c.Path}
				}
			case flow.PageRetry:
				fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(cmd.Err))
				fmt.Fprintln(deps.Stderr, cmd.Text.Get(lang))
				ev = flow.Retry{Again: false}
			case flow.PageConsent:
				reportDiagnostics(deps, cmd.Diagnostics)
				if err := pretty.NewRenderer().Render(deps.Stdout, cmd.Review, lang); err != nil {
					return err
				}
				ev = flow.Decline{}
				if c.Yes || confirm(deps, input, cmd.Review.Button.Get(lang)) {
					ev = flow.Consent{}
				}
			}
		case flow.Donate:
			d := &donate.Donation{
				Key:       cmd.Key,
				SessionID: session,
				Platform:  controller.Platform(),
				Payload:   cmd.Payload,
			}
			if err := writer.CreateDonation(deps.Ctx, d); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Donated %s (%d bytes)\n", d.Key, len(d.Payload))
			ev = flow.Ack{}
		case flow.Exit:
			exit = cmd
			ev = flow.Ack{}
		}
		cmd, err = controller.Handle(ev)
	}
	if err != nil {
		return err
	}

	if exit.Code != 0 {
		return donate.Errorf(donate.EINTERNAL, "dialogue ended with code %d: %s", exit.Code, exit.Info)
	}
	return nil
}

// confirm asks a yes/no question on the terminal.
func confirm(deps *Dependencies, input *bufio.Scanner, button string) bool {
	fmt.Fprintf(deps.Stdout, "%s [y/N]: ", button)
	if !input.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(input.Text())) {
	case "y", "yes", "j", "ja":
		return true
	}
	return false
}

func openArchive(path string) (flow.Archive, error) {
	return zip.Open(path)
}

// writers stores a donation in every sink, stopping at the first failure.
type writers []donate.DonationWriter

func (ws writers) CreateDonation(ctx context.Context, d *donate.Donation) error {
	for _, w := range ws {
		if err := w.CreateDonation(ctx, d); err != nil {
			return err
		}
	}
	return nil
}

// donationWriter returns the database writer, followed by a JSON file
// writer when an output directory is configured, logging every donation.
func donationWriter(deps *Dependencies, cfg config.Config) donate.DonationWriter {
	ws := writers{deps.Donations}
	if cfg.OutDir != "" {
		ws = append(ws, fs.NewWriter(cfg.OutDir))
	}
	return dslog.NewLoggingDonationWriter(ws, deps.Logger)
}
