package http

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/polyscout"
)

// DefaultCatalogURL is the canonical web-features dataset.
const DefaultCatalogURL = "https://unpkg.com/web-features/data.json"

// Ensure CatalogService implements polyscout.FeatureCatalog.
var _ polyscout.FeatureCatalog = (*CatalogService)(nil)

// CatalogService fetches the canonical feature catalog.
type CatalogService struct {
	client *Client
	url    string
}

// NewCatalogService creates a CatalogService. An empty url selects
// DefaultCatalogURL.
func NewCatalogService(client *Client, url string) *CatalogService {
	if url == "" {
		url = DefaultCatalogURL
	}
	return &CatalogService{client: client, url: url}
}

// catalogDocument mirrors the web-features data.json layout.
type catalogDocument struct {
	Features map[string]catalogFeature `json:"features"`
}

type catalogFeature struct {
	Name           string        `json:"name"`
	Status         catalogStatus `json:"status"`
	CompatFeatures []string      `json:"compat_features"`
}

type catalogStatus struct {
	// Baseline is "high", "low", or the JSON literal false.
	Baseline         json.RawMessage `json:"baseline"`
	BaselineLowDate  string          `json:"baseline_low_date"`
	BaselineHighDate string          `json:"baseline_high_date"`
}

// Features returns all catalog entries keyed by feature identifier.
func (s *CatalogService) Features(ctx context.Context) (map[string]polyscout.Feature, error) {
	var doc catalogDocument
	if err := s.client.getJSON(ctx, s.url, &doc); err != nil {
		return nil, err
	}

	features := make(map[string]polyscout.Feature, len(doc.Features))
	for id, cf := range doc.Features {
		features[id] = polyscout.Feature{
			ID:               id,
			Name:             cf.Name,
			Baseline:         baselineStatus(cf.Status.Baseline),
			BaselineLowDate:  cf.Status.BaselineLowDate,
			BaselineHighDate: cf.Status.BaselineHighDate,
			CompatFeatures:   cf.CompatFeatures,
		}
	}
	return features, nil
}

// baselineStatus normalizes the baseline field, which the dataset encodes
// as either a string ("high"/"low") or the boolean false.
func baselineStatus(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return polyscout.BaselineLimited
}
