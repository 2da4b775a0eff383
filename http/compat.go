package http

import (
	"context"

	"github.com/fwojciec/polyscout"
)

// DefaultCompatURL is the browser-compat-data dataset used as the fallback
// slug source.
const DefaultCompatURL = "https://unpkg.com/@mdn/browser-compat-data/data.json"

// CompatService fetches the browser-compat-data tree.
type CompatService struct {
	client *Client
	url    string
}

// NewCompatService creates a CompatService. An empty url selects
// DefaultCompatURL.
func NewCompatService(client *Client, url string) *CompatService {
	if url == "" {
		url = DefaultCompatURL
	}
	return &CompatService{client: client, url: url}
}

// FetchCompatData returns the full compat-data tree. The tree backs the
// fallback slug source for the whole run, so a fetch failure is fatal.
func (s *CompatService) FetchCompatData(ctx context.Context) (polyscout.CompatData, error) {
	var data polyscout.CompatData
	if err := s.client.getJSON(ctx, s.url, &data); err != nil {
		return nil, err
	}
	return data, nil
}
