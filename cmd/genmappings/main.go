// Command genmappings runs the polyfill-discovery and merge pipeline: it
// scrapes polyfill candidates from MDN page sources, merges the curated
// overrides, and writes the feature mapping artifact.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/polyscout"
	"github.com/fwojciec/polyscout/fs"
	"github.com/fwojciec/polyscout/git"
	"github.com/fwojciec/polyscout/gomarkdown"
	pshttp "github.com/fwojciec/polyscout/http"
	"github.com/fwojciec/polyscout/pipeline"
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
	Output     string        `short:"o" default:"data/polyfill-mappings.json" help:"Mapping artifact path"`
	Overrides  string        `default:"data/overrides.json" help:"Curated overrides path"`
	Snapshot   string        `default:".mdn-content" help:"Local documentation snapshot directory"`
	Repo       string        `default:"" help:"Documentation repository URL (defaults to mdn/content)"`
	MappingURL string        `default:"" help:"Curated slug mapping URL"`
	CatalogURL string        `default:"" help:"web-features dataset URL"`
	CompatURL  string        `default:"" help:"browser-compat-data URL"`
	Timeout    time.Duration `default:"30s" help:"HTTP fetch timeout"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("genmappings"),
		kong.Description("Generate the web-feature polyfill mapping artifact"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	client := pshttp.NewClient(pshttp.WithTimeout(cli.Timeout))

	generator := &pipeline.Generator{
		Catalog:   pshttp.NewCatalogService(client, cli.CatalogURL),
		Mapping:   pshttp.NewMappingService(client, cli.MappingURL),
		Compat:    pshttp.NewCompatService(client, cli.CompatURL),
		Snapshot:  git.NewSnapshot(cli.Repo, cli.Snapshot),
		Extractor: gomarkdown.NewExtractor(),
		Overrides: fs.NewOverrideFile(cli.Overrides),
		Writer:    fs.NewMappingFile(cli.Output),
		NewReader: func(dir string) polyscout.DocumentReader {
			return fs.NewDocumentReader(dir)
		},
		Logger: logger,
	}

	if _, err := generator.Generate(ctx); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s\n", cli.Output)
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
