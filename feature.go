package polyscout

import "context"

// Baseline availability statuses from the web-features dataset.
const (
	BaselineHigh    = "high"  // widely available
	BaselineLow     = "low"   // newly available
	BaselineLimited = "false" // limited availability
)

// Feature describes one entry of the canonical web-features catalog.
// The catalog is externally authored and read-only to the pipeline.
type Feature struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Baseline         string   `json:"baseline"`
	BaselineLowDate  string   `json:"baselineLowDate,omitempty"`
	BaselineHighDate string   `json:"baselineHighDate,omitempty"`

	// CompatFeatures holds browser-compat-data keys (dotted paths) used
	// to derive a documentation slug when the curated slug mapping has
	// no entry for the feature. May be empty.
	CompatFeatures []string `json:"compatFeatures,omitempty"`
}

// FeatureCatalog provides access to the canonical feature dataset.
type FeatureCatalog interface {
	// Features returns all catalog entries keyed by feature identifier.
	Features(ctx context.Context) (map[string]Feature, error)
}

// SlugSource resolves a feature identifier to zero or more documentation
// slugs. An empty result is a legitimate "no documentation found" outcome,
// not an error; the caller skips the feature.
type SlugSource interface {
	Slugs(ctx context.Context, featureID string) ([]string, error)
}
