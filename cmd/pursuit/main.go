package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/pursuit/internal/cli"
	"github.com/alexanderramin/pursuit/internal/config"
	"github.com/mattn/go-isatty"
)

// Exit codes: 1 for errors, 2 when a report found issues.
const (
	exitError  = 1
	exitIssues = 2
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, cli.ErrIssuesFound) {
			os.Exit(exitIssues)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		app.Config.NoColor = true
	}

	return cli.NewRootCmd(app).Execute()
}
