package main

import (
	"fmt"

	"github.com/fwojciec/donate"
	"github.com/fwojciec/donate/pretty"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var filter donate.DonationFilter
	if c.Session != "" {
		filter.SessionID = &c.Session
	}

	donations, err := deps.Donations.FindDonations(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}

	if len(donations) == 0 {
		fmt.Fprintln(deps.Stdout, "No donations found. Use 'donate donate <zip>' to create one.")
		return nil
	}

	return pretty.RenderDonations(deps.Stdout, donations)
}
