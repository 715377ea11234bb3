package main

import (
	"fmt"

	"github.com/fwojciec/donate"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return donate.Errorf(donate.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Donations.DeleteDonation(deps.Ctx, c.ID); err != nil {
		if donate.ErrorCode(err) == donate.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: donation %q not found. Use 'donate list' to see stored donations.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", donate.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted donation %q\n", c.ID)
	return nil
}
