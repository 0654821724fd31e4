package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/snowdocs"
	"github.com/fwojciec/snowdocs/prompt"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	mode, err := snowdocs.ParseFilterMode(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snowdocs.ErrorMessage(err))
		return err
	}
	if c.PageSize <= 0 {
		fmt.Fprintf(deps.Stderr, "error: page size must be positive\n")
		return snowdocs.Errorf(snowdocs.EINVALID, "page size must be positive, got %d", c.PageSize)
	}

	stop := prompt.StartLoading(deps.Stderr, deps.Progress)
	results, err := deps.Searcher.Search(deps.Ctx, strings.Join(c.Prompt, " "))
	stop()
	if err != nil {
		if snowdocs.ErrorCode(err) != snowdocs.EINTERNAL {
			fmt.Fprintf(deps.Stderr, "error: %s\n", snowdocs.ErrorMessage(err))
		}
		return err
	}
	results = snowdocs.Filter(results, mode)

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found")
		return nil
	}

	deps.Renderer.Header()
	outcome, err := prompt.NewLoop(results, c.PageSize, deps.Stdin, deps.Renderer).Run(deps.Ctx)
	if err != nil {
		return err
	}

	if outcome.Kind == snowdocs.OutcomeCancelled {
		deps.Renderer.Failure("Canceled")
		return nil
	}

	if err := deps.Browser.Open(results[outcome.Index].URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", snowdocs.ErrorMessage(err))
		return err
	}
	deps.Renderer.Success("Opened")
	return nil
}
