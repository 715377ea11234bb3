package main

import (
	"fmt"
)

// Run executes the formats command.
func (c *FormatsCmd) Run(deps *Dependencies) error {
	registry := newRegistry(deps.Config, deps.Logger)
	for _, format := range registry.List() {
		plan, err := registry.Get(format)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%-16s %-10s %d tables\n", format, format.Platform(), len(plan.Steps))
	}
	return nil
}
