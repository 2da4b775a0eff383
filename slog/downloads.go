package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/polyscout"
)

// Ensure LoggingDownloadsClient implements polyscout.DownloadsClient.
var _ polyscout.DownloadsClient = (*LoggingDownloadsClient)(nil)

// LoggingDownloadsClient wraps a DownloadsClient with debug logging.
type LoggingDownloadsClient struct {
	next   polyscout.DownloadsClient
	logger *slog.Logger
}

// NewLoggingDownloadsClient creates a new LoggingDownloadsClient.
func NewLoggingDownloadsClient(next polyscout.DownloadsClient, logger *slog.Logger) *LoggingDownloadsClient {
	return &LoggingDownloadsClient{next: next, logger: logger}
}

// Downloads delegates to the wrapped client and logs the operation.
func (c *LoggingDownloadsClient) Downloads(ctx context.Context, pkg string) (downloads int64, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("npm downloads",
			"package", pkg,
			"downloads", downloads,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Downloads(ctx, pkg)
}
