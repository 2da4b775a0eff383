package pipeline

import (
	"context"

	"github.com/fwojciec/polyscout"
)

// Ensure CompositeSlugSource implements polyscout.SlugSource.
var _ polyscout.SlugSource = (*CompositeSlugSource)(nil)

// CompositeSlugSource resolves documentation slugs from the remote curated
// mapping first, falling back to the compat-derived source for features
// the mapping does not know. A feature absent from both yields zero slugs
// and is skipped by the pipeline.
type CompositeSlugSource struct {
	mapping  map[string][]string
	fallback polyscout.SlugSource
}

// NewCompositeSlugSource creates a CompositeSlugSource. The fallback may
// be nil, in which case only the curated mapping is consulted.
func NewCompositeSlugSource(mapping map[string][]string, fallback polyscout.SlugSource) *CompositeSlugSource {
	return &CompositeSlugSource{
		mapping:  mapping,
		fallback: fallback,
	}
}

// Slugs implements polyscout.SlugSource.
func (s *CompositeSlugSource) Slugs(ctx context.Context, featureID string) ([]string, error) {
	if slugs := s.mapping[featureID]; len(slugs) > 0 {
		return slugs, nil
	}
	if s.fallback != nil {
		return s.fallback.Slugs(ctx, featureID)
	}
	return nil, nil
}
