package mock

import (
	"context"

	"github.com/fwojciec/polyscout"
)

var _ polyscout.DownloadsClient = (*DownloadsClient)(nil)

// DownloadsClient is a mock implementation of polyscout.DownloadsClient.
type DownloadsClient struct {
	DownloadsFn func(ctx context.Context, pkg string) (int64, error)
}

func (c *DownloadsClient) Downloads(ctx context.Context, pkg string) (int64, error) {
	return c.DownloadsFn(ctx, pkg)
}

var _ polyscout.StatsStore = (*StatsStore)(nil)

// StatsStore is a mock implementation of polyscout.StatsStore.
type StatsStore struct {
	ReadStatsFn  func(ctx context.Context) (polyscout.Stats, error)
	WriteStatsFn func(ctx context.Context, stats polyscout.Stats) error
}

func (s *StatsStore) ReadStats(ctx context.Context) (polyscout.Stats, error) {
	return s.ReadStatsFn(ctx)
}

func (s *StatsStore) WriteStats(ctx context.Context, stats polyscout.Stats) error {
	return s.WriteStatsFn(ctx, stats)
}
