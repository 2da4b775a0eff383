// Package mock provides function-field mocks of the polyscout interfaces
// for use in tests.
package mock

import (
	"context"

	"github.com/fwojciec/polyscout"
)

var _ polyscout.FeatureCatalog = (*FeatureCatalog)(nil)

// FeatureCatalog is a mock implementation of polyscout.FeatureCatalog.
type FeatureCatalog struct {
	FeaturesFn func(ctx context.Context) (map[string]polyscout.Feature, error)
}

func (c *FeatureCatalog) Features(ctx context.Context) (map[string]polyscout.Feature, error) {
	return c.FeaturesFn(ctx)
}

var _ polyscout.SlugMappingService = (*SlugMappingService)(nil)

// SlugMappingService is a mock implementation of polyscout.SlugMappingService.
type SlugMappingService struct {
	FetchSlugsFn func(ctx context.Context) (map[string][]string, error)
}

func (s *SlugMappingService) FetchSlugs(ctx context.Context) (map[string][]string, error) {
	return s.FetchSlugsFn(ctx)
}

var _ polyscout.SlugSource = (*SlugSource)(nil)

// SlugSource is a mock implementation of polyscout.SlugSource.
type SlugSource struct {
	SlugsFn func(ctx context.Context, featureID string) ([]string, error)
}

func (s *SlugSource) Slugs(ctx context.Context, featureID string) ([]string, error) {
	return s.SlugsFn(ctx, featureID)
}
