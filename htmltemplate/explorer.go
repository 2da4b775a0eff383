// Package htmltemplate renders the static polyfill explorer page from the
// mapping, catalog, and download-stats artifacts.
package htmltemplate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/fwojciec/polyscout"
)

//go:embed explorer.tmpl
var explorerTmpl string

// FallbackView is one fallback row, enriched with download statistics.
type FallbackView struct {
	Type        string
	URL         string
	NPM         string
	Repository  string
	Description string
	Downloads   *int64
}

// FeatureRow is one feature of the explorer table.
type FeatureRow struct {
	ID        string
	Name      string
	Baseline  string
	Fallbacks []FallbackView
}

// PageData is the template input.
type PageData struct {
	GeneratedAt time.Time
	Fingerprint string
	Rows        []FeatureRow
}

// Renderer renders the explorer page.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded page template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("explorer").Funcs(template.FuncMap{
		"baselineLabel": baselineLabel,
	}).Parse(explorerTmpl)
	if err != nil {
		return nil, polyscout.Errorf(polyscout.EINTERNAL, "parse explorer template: %v", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the explorer page. Rows follow the mapping's sorted key
// order; features missing from the catalog render with their identifier
// as the display name.
func (r *Renderer) Render(w io.Writer, mapping polyscout.Mapping, features map[string]polyscout.Feature, stats polyscout.Stats) error {
	data := PageData{
		GeneratedAt: time.Now().UTC(),
		Fingerprint: Fingerprint(mapping),
	}

	for _, id := range mapping.SortedIDs() {
		row := FeatureRow{
			ID:       id,
			Name:     id,
			Baseline: polyscout.BaselineLimited,
		}
		if feat, ok := features[id]; ok {
			row.Name = feat.Name
			row.Baseline = feat.Baseline
		}

		for _, fb := range mapping[id].Fallbacks {
			view := FallbackView{
				Type:        fb.Type,
				URL:         fb.URL,
				NPM:         fb.NPM,
				Repository:  fb.Repository,
				Description: fb.Description,
			}
			if fb.NPM != "" {
				if rec, ok := stats[fb.NPM]; ok {
					view.Downloads = rec.Downloads
				}
			}
			row.Fallbacks = append(row.Fallbacks, view)
		}
		data.Rows = append(data.Rows, row)
	}

	return r.tmpl.Execute(w, data)
}

// Fingerprint returns a short content hash of the mapping, rendered in the
// page footer so a published page can be matched to its dataset.
func Fingerprint(mapping polyscout.Mapping) string {
	data, err := json.Marshal(mapping)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// baselineLabel maps a baseline status to its display label.
func baselineLabel(status string) string {
	switch status {
	case polyscout.BaselineHigh:
		return "Widely available"
	case polyscout.BaselineLow:
		return "Newly available"
	default:
		return "Limited availability"
	}
}
