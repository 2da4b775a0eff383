// Command npmstats refreshes the npm download-stats artifact for every
// package referenced by the mapping artifact. Entries younger than one
// week are reused unless --force is given.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/polyscout/fs"
	"github.com/fwojciec/polyscout/pipeline"
	"github.com/fwojciec/polyscout/resty"
	psslog "github.com/fwojciec/polyscout/slog"
)

func main() {
	m := NewMain()

	if err := m.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mapping     string `default:"data/polyfill-mappings.json" help:"Mapping artifact path"`
	Output      string `short:"o" default:"data/npm-stats.json" help:"Stats artifact path"`
	Force       bool   `short:"f" help:"Refresh all packages regardless of staleness"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent registry request limit"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("npmstats"),
		kong.Description("Refresh npm download statistics for mapped polyfill packages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	refresher := &pipeline.StatsRefresher{
		Mapping:     fs.NewMappingFile(cli.Mapping),
		Store:       fs.NewStatsFile(cli.Output),
		Client:      psslog.NewLoggingDownloadsClient(resty.NewDownloadsClient(), logger),
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}

	if _, err := refresher.Refresh(ctx, cli.Force); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s\n", cli.Output)
	return nil
}
