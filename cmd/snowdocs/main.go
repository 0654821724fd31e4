package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/snowdocs"
	snowbrowser "github.com/fwojciec/snowdocs/browser"
	"github.com/fwojciec/snowdocs/goquery"
	snowhttp "github.com/fwojciec/snowdocs/http"
	"github.com/fwojciec/snowdocs/prompt"
	snowslog "github.com/fwojciec/snowdocs/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the result picker. Defaults to os.Stdin.
	Stdin io.Reader

	// Services for end-to-end testing. Real implementations are wired
	// when these are nil.
	Searcher snowdocs.Searcher
	Browser  snowdocs.Browser
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("snowdocs"),
		kong.Description("Search the Snowflake documentation from the terminal"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'snowdocs --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.BaseURL = cli.BaseURL
	deps.Renderer = prompt.NewRenderer(stdout, prompt.ColorEnabled(stdout))
	deps.Progress = prompt.ColorEnabled(stdout) && !cli.Verbose

	browser := m.Browser
	if browser == nil {
		browser = snowbrowser.NewBrowser()
	}
	deps.Browser = snowslog.NewLoggingBrowser(browser, logger)

	searcher := m.Searcher
	if searcher == nil {
		extractor, err := goquery.NewResultExtractor(cli.BaseURL)
		if err != nil {
			return err
		}
		searcher = &snowhttp.Searcher{
			Fetcher:   snowslog.NewLoggingFetcher(snowhttp.NewFetcher(snowhttp.WithTimeout(cli.Timeout)), logger),
			Extractor: extractor,
			BaseURL:   cli.BaseURL,
			Limit:     snowhttp.DefaultResultLimit,
		}
	}
	deps.Searcher = snowslog.NewLoggingSearcher(searcher, logger)

	return kongCtx.Run(deps)
}
