// Package pipeline orchestrates the polyfill-discovery and merge pipeline
// and the npm download-stats refresh. Both are single-shot: they read
// inputs, write an artifact, and return.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/fwojciec/polyscout"
)

// CompatSource fetches the compat-data tree backing the fallback slug
// source.
type CompatSource interface {
	FetchCompatData(ctx context.Context) (polyscout.CompatData, error)
}

// Generator runs the mappings pipeline: discover polyfill candidates per
// feature, merge the curated overrides, write the artifact. The run is
// fully sequential; the accumulating result map has exactly one writer.
type Generator struct {
	Catalog   polyscout.FeatureCatalog
	Mapping   polyscout.SlugMappingService
	Compat    CompatSource
	Snapshot  polyscout.Snapshotter
	Extractor polyscout.LinkExtractor
	Overrides polyscout.OverrideSource
	Writer    polyscout.MappingWriter

	// NewReader constructs the document reader once the snapshot
	// directory is known.
	NewReader func(dir string) polyscout.DocumentReader

	Logger *slog.Logger
}

// Generate runs the pipeline once and returns the merged mapping. Any
// error is fatal to the run: the partial in-memory result is discarded and
// nothing is written.
func (g *Generator) Generate(ctx context.Context) (polyscout.Mapping, error) {
	logger := g.logger().With("run", uuid.NewString())

	features, err := g.Catalog.Features(ctx)
	if err != nil {
		return nil, err
	}
	slugMapping, err := g.Mapping.FetchSlugs(ctx)
	if err != nil {
		return nil, err
	}
	compat, err := g.Compat.FetchCompatData(ctx)
	if err != nil {
		return nil, err
	}
	dir, err := g.Snapshot.Ensure(ctx)
	if err != nil {
		return nil, err
	}

	reader := g.NewReader(dir)
	source := NewCompositeSlugSource(slugMapping, polyscout.NewCompatSlugSource(features, compat))

	discovered, err := g.discover(ctx, features, source, reader)
	if err != nil {
		return nil, err
	}

	overrides, err := g.Overrides.Overrides(ctx)
	if err != nil {
		return nil, err
	}

	merged := polyscout.Merge(discovered, overrides)
	if err := g.Writer.WriteMapping(ctx, merged); err != nil {
		return nil, err
	}

	logger.Info("mapping generated",
		"features", len(merged),
		"discovered", len(discovered),
		"overrides", len(overrides),
	)
	return merged, nil
}

// discover walks every catalog feature in lexicographic order and collects
// its polyfill candidates. Features without slugs, documents, or matching
// links are skipped silently: absent data is the normal case here.
func (g *Generator) discover(ctx context.Context, features map[string]polyscout.Feature, source polyscout.SlugSource, reader polyscout.DocumentReader) (polyscout.Mapping, error) {
	ids := make([]string, 0, len(features))
	for id := range features {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	discovered := polyscout.Mapping{}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slugs, err := source.Slugs(ctx, id)
		if err != nil {
			return nil, err
		}
		if len(slugs) == 0 {
			continue
		}

		// Deduplicate by URL across all of the feature's slugs.
		seen := make(map[string]bool)
		var fallbacks []polyscout.Fallback
		for _, slug := range slugs {
			content, err := reader.ReadDocument(slug)
			if polyscout.ErrorCode(err) == polyscout.ENOTFOUND {
				continue
			} else if err != nil {
				return nil, err
			}

			for _, link := range g.Extractor.SeeAlsoLinks(content) {
				if seen[link.URL] {
					continue
				}
				seen[link.URL] = true
				fallbacks = append(fallbacks, polyscout.ClassifyLink(link))
			}
		}

		if len(fallbacks) > 0 {
			discovered[id] = &polyscout.FeatureFallbacks{Fallbacks: fallbacks}
		}
	}
	return discovered, nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
