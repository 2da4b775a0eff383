package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/polyscout"
	"github.com/fwojciec/polyscout/mock"
	"github.com/fwojciec/polyscout/pipeline"
)

// compatSource is an in-test stub for pipeline.CompatSource.
type compatSource struct {
	FetchCompatDataFn func(ctx context.Context) (polyscout.CompatData, error)
}

func (s *compatSource) FetchCompatData(ctx context.Context) (polyscout.CompatData, error) {
	return s.FetchCompatDataFn(ctx)
}

func newTestGenerator(written *polyscout.Mapping) *pipeline.Generator {
	features := map[string]polyscout.Feature{
		"intersection-observer": {ID: "intersection-observer", Name: "IntersectionObserver"},
		// No compat keys and no curated slug: skipped, not an error.
		"array-group": {ID: "array-group", Name: "Array grouping"},
		// Slug derived from compat data, but the document is missing.
		"dialog": {
			ID:             "dialog",
			Name:           "<dialog>",
			CompatFeatures: []string{"html.elements.dialog"},
		},
		"excluded-feature": {ID: "excluded-feature", Name: "Excluded"},
	}

	documents := map[string]string{
		"Web/API/IntersectionObserver": "io page",
		"Web/API/Excluded":             "excluded page",
	}

	links := map[string][]polyscout.RawLink{
		"io page": {
			{URL: "https://www.npmjs.com/package/intersection-observer", Text: "intersection-observer"},
			// Duplicate URL from a second list item: deduplicated.
			{URL: "https://www.npmjs.com/package/intersection-observer", Text: "again"},
		},
		"excluded page": {
			{URL: "https://example.com/excluded-polyfill", Text: "wrong polyfill"},
		},
	}

	return &pipeline.Generator{
		Catalog: &mock.FeatureCatalog{
			FeaturesFn: func(ctx context.Context) (map[string]polyscout.Feature, error) {
				return features, nil
			},
		},
		Mapping: &mock.SlugMappingService{
			FetchSlugsFn: func(ctx context.Context) (map[string][]string, error) {
				return map[string][]string{
					"intersection-observer": {"Web/API/IntersectionObserver"},
					"excluded-feature":      {"Web/API/Excluded"},
				}, nil
			},
		},
		Compat: &compatSource{
			FetchCompatDataFn: func(ctx context.Context) (polyscout.CompatData, error) {
				return polyscout.CompatData{
					"html": map[string]any{
						"elements": map[string]any{
							"dialog": map[string]any{
								"__compat": map[string]any{
									"mdn_url": "https://developer.mozilla.org/docs/Web/HTML/Element/dialog",
								},
							},
						},
					},
				}, nil
			},
		},
		Snapshot: &mock.Snapshotter{
			EnsureFn: func(ctx context.Context) (string, error) { return "/tmp/snapshot", nil },
		},
		NewReader: func(dir string) polyscout.DocumentReader {
			return &mock.DocumentReader{
				ReadDocumentFn: func(slug string) (string, error) {
					content, ok := documents[slug]
					if !ok {
						return "", polyscout.Errorf(polyscout.ENOTFOUND, "no documentation file for slug %q", slug)
					}
					return content, nil
				},
			}
		},
		Extractor: &mock.LinkExtractor{
			SeeAlsoLinksFn: func(content string) []polyscout.RawLink {
				return links[content]
			},
		},
		Overrides: &mock.OverrideSource{
			OverridesFn: func(ctx context.Context) (polyscout.Overrides, error) {
				return polyscout.Overrides{
					"excluded-feature": {Kind: polyscout.OverrideExclude},
					"intersection-observer": {Kind: polyscout.OverrideAugment, Fallbacks: []polyscout.Fallback{
						{Type: polyscout.FallbackTypePolyfill, URL: "https://other.example/polyfill"},
					}},
				}, nil
			},
		},
		Writer: &mock.MappingWriter{
			WriteMappingFn: func(ctx context.Context, mapping polyscout.Mapping) error {
				*written = mapping
				return nil
			},
		},
	}
}

func TestGenerator_Generate(t *testing.T) {
	t.Parallel()

	t.Run("discovers, merges, and writes the mapping", func(t *testing.T) {
		t.Parallel()

		var written polyscout.Mapping
		generator := newTestGenerator(&written)

		merged, err := generator.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, written, merged)

		// Discovery dedupes by URL, then the augment override appends.
		require.Contains(t, merged, "intersection-observer")
		fallbacks := merged["intersection-observer"].Fallbacks
		require.Len(t, fallbacks, 2)
		assert.Equal(t, "intersection-observer", fallbacks[0].NPM)
		assert.Equal(t, "https://other.example/polyfill", fallbacks[1].URL)

		// No slug from either source: skipped, not an error.
		assert.NotContains(t, merged, "array-group")

		// Compat-derived slug resolved but the document is absent: skipped.
		assert.NotContains(t, merged, "dialog")

		// Excluded by override despite discovery.
		assert.NotContains(t, merged, "excluded-feature")
	})

	t.Run("override failure aborts before writing", func(t *testing.T) {
		t.Parallel()

		var written polyscout.Mapping
		generator := newTestGenerator(&written)
		generator.Overrides = &mock.OverrideSource{
			OverridesFn: func(ctx context.Context) (polyscout.Overrides, error) {
				return nil, polyscout.Errorf(polyscout.EINVALID, "malformed overrides document")
			},
		}

		_, err := generator.Generate(context.Background())
		require.Error(t, err)
		assert.Equal(t, polyscout.EINVALID, polyscout.ErrorCode(err))
		assert.Nil(t, written)
	})

	t.Run("remote mapping failure is fatal", func(t *testing.T) {
		t.Parallel()

		var written polyscout.Mapping
		generator := newTestGenerator(&written)
		generator.Mapping = &mock.SlugMappingService{
			FetchSlugsFn: func(ctx context.Context) (map[string][]string, error) {
				return nil, polyscout.Errorf(polyscout.EUNAVAILABLE, "fetch failed: HTTP 502")
			},
		}

		_, err := generator.Generate(context.Background())
		require.Error(t, err)
		assert.Equal(t, polyscout.EUNAVAILABLE, polyscout.ErrorCode(err))
		assert.Nil(t, written)
	})
}
