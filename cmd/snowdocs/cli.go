package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/snowdocs"
	"github.com/fwojciec/snowdocs/prompt"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	BaseURL  string
	Renderer *prompt.Renderer
	// Show a loading indicator on Stderr during the search request.
	Progress bool
	Searcher snowdocs.Searcher
	Browser  snowdocs.Browser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	BaseURL string        `name:"base-url" env:"SNOWDOCS_BASE_URL" default:"https://docs.snowflake.com" help:"Documentation site root"`
	Timeout time.Duration `env:"SNOWDOCS_TIMEOUT" default:"10s" help:"Search request timeout"`
	Verbose bool          `short:"v" help:"Log requests to stderr"`

	Open   OpenCmd   `cmd:"" help:"Open the main Snowflake documentation page"`
	Search SearchCmd `cmd:"" help:"Search for a specific Snowflake topic"`
}

// OpenCmd is the "open" subcommand.
type OpenCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Prompt   []string `arg:"" help:"Search prompt to find the Snowflake topic"`
	Filter   string   `short:"f" enum:"doc,k_base,both" default:"both" help:"Only show one type of documentation (doc, k_base, both)"`
	PageSize int      `name:"page-size" default:"5" help:"Search page size"`
}
