package http

import (
	"context"

	"github.com/fwojciec/polyscout"
)

// DefaultSlugMappingURL is the curated feature-to-MDN-slug mapping.
const DefaultSlugMappingURL = "https://raw.githubusercontent.com/web-platform-dx/web-features-mappings/main/mappings/mdn-docs.json"

// Ensure MappingService implements polyscout.SlugMappingService.
var _ polyscout.SlugMappingService = (*MappingService)(nil)

// MappingService fetches the remote curated slug mapping.
type MappingService struct {
	client *Client
	url    string
}

// NewMappingService creates a MappingService. An empty url selects
// DefaultSlugMappingURL.
func NewMappingService(client *Client, url string) *MappingService {
	if url == "" {
		url = DefaultSlugMappingURL
	}
	return &MappingService{client: client, url: url}
}

// slugEntry is one entry of the remote mapping document.
type slugEntry struct {
	Slug string `json:"slug"`
}

// FetchSlugs returns documentation slugs keyed by feature identifier.
// Entries without a slug value are skipped.
func (s *MappingService) FetchSlugs(ctx context.Context) (map[string][]string, error) {
	var raw map[string][]slugEntry
	if err := s.client.getJSON(ctx, s.url, &raw); err != nil {
		return nil, err
	}

	slugs := make(map[string][]string, len(raw))
	for id, entries := range raw {
		for _, e := range entries {
			if e.Slug != "" {
				slugs[id] = append(slugs[id], e.Slug)
			}
		}
	}
	return slugs, nil
}
