// Package slog provides logging decorators for polyscout services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/polyscout"
)

// Ensure LoggingSlugSource implements polyscout.SlugSource.
var _ polyscout.SlugSource = (*LoggingSlugSource)(nil)

// LoggingSlugSource wraps a SlugSource with debug logging.
type LoggingSlugSource struct {
	next   polyscout.SlugSource
	logger *slog.Logger
}

// NewLoggingSlugSource creates a new LoggingSlugSource.
func NewLoggingSlugSource(next polyscout.SlugSource, logger *slog.Logger) *LoggingSlugSource {
	return &LoggingSlugSource{next: next, logger: logger}
}

// Slugs delegates to the wrapped source and logs the operation.
func (s *LoggingSlugSource) Slugs(ctx context.Context, featureID string) (slugs []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("slug lookup",
			"feature", featureID,
			"count", len(slugs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Slugs(ctx, featureID)
}
