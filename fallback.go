package polyscout

import (
	"context"
	"sort"
)

// Fallback types recognized by the pipeline. Auto-discovery always emits
// FallbackTypePolyfill; overrides may additionally carry FallbackTypeCode
// for inline-snippet remedies.
const (
	FallbackTypePolyfill = "polyfill"
	FallbackTypeCode     = "code"
)

// Fallback represents one external remedy (typically a polyfill) for the
// absence of a web feature.
type Fallback struct {
	Type        string `json:"type"`
	URL         string `json:"url"`
	NPM         string `json:"npm,omitempty"`
	Repository  string `json:"repository,omitempty"`
	Description string `json:"description,omitempty"`
}

// Validate returns an error if the fallback contains invalid fields.
func (f *Fallback) Validate() error {
	if f.Type == "" {
		return Errorf(EINVALID, "fallback type required")
	}
	if f.URL == "" {
		return Errorf(EINVALID, "fallback URL required")
	}
	return nil
}

// FeatureFallbacks holds the fallbacks discovered or curated for a single
// feature. Order reflects discovery/merge order, not ranked preference.
type FeatureFallbacks struct {
	Fallbacks []Fallback `json:"fallbacks"`
}

// Mapping is the top-level persisted structure: feature identifier to its
// fallback record. It is regenerated wholesale on every pipeline run.
type Mapping map[string]*FeatureFallbacks

// SortedIDs returns the feature identifiers in ascending lexicographic
// order. Output determinism depends on this order, not on the order in
// which features were discovered or overridden.
func (m Mapping) SortedIDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// MappingWriter persists the final mapping artifact.
type MappingWriter interface {
	WriteMapping(ctx context.Context, mapping Mapping) error
}

// MappingReader loads a previously written mapping artifact.
// Returns ENOTFOUND if no artifact exists.
type MappingReader interface {
	ReadMapping(ctx context.Context) (Mapping, error)
}
