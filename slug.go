package polyscout

import (
	"context"
	"strings"
)

// DocsRoot is the documentation root URL. Compat-data mdn_url values are
// resolved to slugs by stripping this prefix.
const DocsRoot = "https://developer.mozilla.org/docs/"

// SlugMappingService fetches the remote curated feature-to-slug mapping.
// It is the primary slug source; entries here take priority over slugs
// derived from compat data.
type SlugMappingService interface {
	// FetchSlugs returns documentation slugs keyed by feature identifier.
	// A fetch failure is fatal to the pipeline run (EUNAVAILABLE).
	FetchSlugs(ctx context.Context) (map[string][]string, error)
}

// CompatData is the browser-compat-data tree: nested objects keyed by
// dotted-path segments, each terminal node optionally carrying a
// "__compat" object with an "mdn_url" field.
type CompatData map[string]any

// Ensure CompatSlugSource implements SlugSource at compile time.
var _ SlugSource = (*CompatSlugSource)(nil)

// CompatSlugSource derives a documentation slug from a feature's first
// compat key by walking the compat-data tree. It is the fallback source
// used when the curated mapping has no entry for a feature.
type CompatSlugSource struct {
	Features map[string]Feature
	Data     CompatData
}

// NewCompatSlugSource creates a CompatSlugSource over the given catalog
// entries and compat-data tree.
func NewCompatSlugSource(features map[string]Feature, data CompatData) *CompatSlugSource {
	return &CompatSlugSource{Features: features, Data: data}
}

// Slugs returns at most one slug, derived from the feature's first compat
// key. A feature with no compat keys, a key absent from the tree, or a
// terminal node without a documentation URL all yield zero slugs; none of
// these are errors.
func (s *CompatSlugSource) Slugs(ctx context.Context, featureID string) ([]string, error) {
	feat, ok := s.Features[featureID]
	if !ok || len(feat.CompatFeatures) == 0 {
		return nil, nil
	}

	mdnURL := s.lookupMDNURL(feat.CompatFeatures[0])
	if mdnURL == "" {
		return nil, nil
	}

	slug, ok := SlugFromDocURL(mdnURL)
	if !ok {
		return nil, nil
	}
	return []string{slug}, nil
}

// lookupMDNURL walks the compat tree by dotted-path segments and reads the
// terminal node's __compat.mdn_url field. Returns "" if any step is absent.
func (s *CompatSlugSource) lookupMDNURL(key string) string {
	var node any = map[string]any(s.Data)
	for _, segment := range strings.Split(key, ".") {
		obj, ok := node.(map[string]any)
		if !ok {
			return ""
		}
		node, ok = obj[segment]
		if !ok {
			return ""
		}
	}

	obj, ok := node.(map[string]any)
	if !ok {
		return ""
	}
	compat, ok := obj["__compat"].(map[string]any)
	if !ok {
		return ""
	}
	mdnURL, _ := compat["mdn_url"].(string)
	return mdnURL
}

// SlugFromDocURL extracts the documentation slug from a full documentation
// URL. Example: https://developer.mozilla.org/docs/Web/API/IntersectionObserver
// → Web/API/IntersectionObserver. Locale-prefixed URLs (…/en-US/docs/…) are
// normalized as well.
func SlugFromDocURL(docURL string) (string, bool) {
	if slug, ok := strings.CutPrefix(docURL, DocsRoot); ok && slug != "" {
		return slug, true
	}
	// Some compat entries carry a locale segment before /docs/.
	const host = "https://developer.mozilla.org/"
	rest, ok := strings.CutPrefix(docURL, host)
	if !ok {
		return "", false
	}
	if _, after, found := strings.Cut(rest, "docs/"); found && after != "" {
		return after, true
	}
	return "", false
}
