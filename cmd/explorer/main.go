// Command explorer renders the static HTML explorer page from the mapping
// and download-stats artifacts plus the remote feature catalog.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"

	"github.com/fwojciec/polyscout/fs"
	"github.com/fwojciec/polyscout/htmltemplate"
	pshttp "github.com/fwojciec/polyscout/http"
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
	Mapping    string        `default:"data/polyfill-mappings.json" help:"Mapping artifact path"`
	Stats      string        `default:"data/npm-stats.json" help:"Stats artifact path"`
	Output     string        `short:"o" default:"public/index.html" help:"Rendered page path"`
	CatalogURL string        `default:"" help:"web-features dataset URL"`
	Timeout    time.Duration `default:"30s" help:"HTTP fetch timeout"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("explorer"),
		kong.Description("Render the static polyfill explorer page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	mapping, err := fs.NewMappingFile(cli.Mapping).ReadMapping(ctx)
	if err != nil {
		return err
	}
	stats, err := fs.NewStatsFile(cli.Stats).ReadStats(ctx)
	if err != nil {
		return err
	}

	client := pshttp.NewClient(pshttp.WithTimeout(cli.Timeout))
	features, err := pshttp.NewCatalogService(client, cli.CatalogURL).Features(ctx)
	if err != nil {
		return err
	}

	renderer, err := htmltemplate.NewRenderer()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(cli.Output), 0755); err != nil {
		return err
	}
	out, err := os.Create(cli.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := renderer.Render(out, mapping, features, stats); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "wrote %s\n", cli.Output)
	return nil
}
