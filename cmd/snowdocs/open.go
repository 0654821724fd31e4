package main

import (
	"fmt"

	"github.com/fwojciec/snowdocs"
)

// Run executes the open command.
func (c *OpenCmd) Run(deps *Dependencies) error {
	if err := deps.Browser.Open(deps.BaseURL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snowdocs.ErrorMessage(err))
		return err
	}
	deps.Renderer.Success("Success!")
	return nil
}
