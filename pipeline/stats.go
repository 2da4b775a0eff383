package pipeline

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/polyscout"
)

// DefaultStatsConcurrency bounds the number of in-flight registry requests.
const DefaultStatsConcurrency = 4

// StatsRefresher refreshes the npm download-stats artifact for every
// package referenced by the current mapping. Entries refreshed within the
// staleness window are reused; a lookup failure is recorded as unknown
// (nil downloads) rather than aborting the batch.
type StatsRefresher struct {
	Mapping polyscout.MappingReader
	Store   polyscout.StatsStore
	Client  polyscout.DownloadsClient

	// MaxAge is the staleness threshold. Zero selects
	// polyscout.DefaultStatsMaxAge (one week).
	MaxAge time.Duration

	// Concurrency bounds in-flight registry requests. Zero selects
	// DefaultStatsConcurrency.
	Concurrency int

	// Now reports the current time. Nil selects time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Refresh rebuilds the stats artifact and returns it. Only packages
// referenced by the current mapping are kept; stale entries (and, with
// force, all entries) are re-fetched.
func (r *StatsRefresher) Refresh(ctx context.Context, force bool) (polyscout.Stats, error) {
	logger := r.logger().With("run", uuid.NewString())

	mapping, err := r.Mapping.ReadMapping(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := r.Store.ReadStats(ctx)
	if err != nil {
		return nil, err
	}

	maxAge := r.MaxAge
	if maxAge == 0 {
		maxAge = polyscout.DefaultStatsMaxAge
	}
	now := time.Now()
	if r.Now != nil {
		now = r.Now()
	}

	stats := polyscout.Stats{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultStatsConcurrency
	}
	g.SetLimit(concurrency)

	var refreshed int
	for _, pkg := range mapping.NPMPackages() {
		if rec, ok := existing[pkg]; ok && !force && !rec.Stale(now, maxAge) {
			stats[pkg] = rec
			continue
		}

		refreshed++
		pkg := pkg
		g.Go(func() error {
			rec := polyscout.PackageStats{LastModified: now}
			if downloads, err := r.Client.Downloads(ctx, pkg); err != nil {
				// Recoverable per-package: record the absence in the
				// data itself instead of failing the batch.
				logger.Warn("npm downloads unavailable", "package", pkg, "err", err)
			} else {
				rec.Downloads = &downloads
			}

			mu.Lock()
			stats[pkg] = rec
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := r.Store.WriteStats(ctx, stats); err != nil {
		return nil, err
	}

	logger.Info("stats refreshed",
		"packages", len(stats),
		"fetched", refreshed,
		"force", force,
	)
	return stats, nil
}

func (r *StatsRefresher) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
