package polyscout

import (
	"context"
	"sort"
	"time"
)

// DefaultStatsMaxAge is the staleness threshold for download statistics.
// Entries refreshed within this window are reused as-is.
const DefaultStatsMaxAge = 7 * 24 * time.Hour

// PackageStats records npm download statistics for one package. Downloads
// is nil when the registry could not provide a count (unknown package or
// exhausted retries); the absence is recorded in the data itself rather
// than failing the batch.
type PackageStats struct {
	Downloads    *int64    `json:"downloads"`
	LastModified time.Time `json:"lastModified"`
}

// Stale reports whether the entry is older than maxAge at the given time.
func (s PackageStats) Stale(now time.Time, maxAge time.Duration) bool {
	return now.Sub(s.LastModified) > maxAge
}

// Stats is the download-stats artifact: package name to its statistics.
type Stats map[string]PackageStats

// DownloadsClient fetches weekly download counts from the npm registry.
type DownloadsClient interface {
	// Downloads returns the package's downloads over the last week.
	// Returns ENOTFOUND when the registry does not know the package.
	Downloads(ctx context.Context, pkg string) (int64, error)
}

// StatsStore persists the download-stats artifact.
type StatsStore interface {
	// ReadStats loads the current artifact. A missing artifact is the
	// legitimate first-run case and yields an empty Stats, not an error.
	ReadStats(ctx context.Context) (Stats, error)

	// WriteStats overwrites the artifact wholesale.
	WriteStats(ctx context.Context, stats Stats) error
}

// NPMPackages returns the deduplicated, sorted set of npm package names
// referenced by the mapping's fallbacks.
func (m Mapping) NPMPackages() []string {
	seen := make(map[string]bool)
	for _, rec := range m {
		for _, fb := range rec.Fallbacks {
			if fb.NPM != "" {
				seen[fb.NPM] = true
			}
		}
	}

	pkgs := make([]string, 0, len(seen))
	for pkg := range seen {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}
