// Package resty implements the npm downloads client. Rate-limited
// responses are retried a bounded number of times with increasing backoff;
// unknown packages are reported as ENOTFOUND so the caller can record the
// absence instead of failing the batch.
package resty

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/fwojciec/polyscout"
)

// DefaultDownloadsURL is the npm registry point-downloads endpoint for the
// last-week window. The package name is appended verbatim: scoped names
// keep their slash unescaped, which is what the API expects.
const DefaultDownloadsURL = "https://api.npmjs.org/downloads/point/last-week/"

// Client defaults.
const (
	DefaultRetryCount        = 3
	DefaultRetryWaitTime     = 1 * time.Second
	DefaultRetryMaxWaitTime  = 8 * time.Second
	DefaultRequestsPerSecond = 4.0
)

// Ensure DownloadsClient implements polyscout.DownloadsClient.
var _ polyscout.DownloadsClient = (*DownloadsClient)(nil)

// DownloadsClient fetches weekly download counts from the npm registry.
type DownloadsClient struct {
	client  *resty.Client
	limiter *rate.Limiter
	baseURL string

	retryCount   int
	retryWait    time.Duration
	retryMaxWait time.Duration
	rps          float64
}

// Option configures a DownloadsClient.
type Option func(*DownloadsClient)

// WithBaseURL overrides the downloads endpoint. Used by tests.
func WithBaseURL(url string) Option {
	return func(c *DownloadsClient) {
		c.baseURL = url
	}
}

// WithRetry overrides the bounded-retry parameters for rate-limited
// responses.
func WithRetry(count int, wait, maxWait time.Duration) Option {
	return func(c *DownloadsClient) {
		c.retryCount = count
		c.retryWait = wait
		c.retryMaxWait = maxWait
	}
}

// WithRequestsPerSecond overrides the client-side rate limit.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *DownloadsClient) {
		c.rps = rps
	}
}

// NewDownloadsClient creates a DownloadsClient with bounded retry on
// HTTP 429 and a client-side rate limiter.
func NewDownloadsClient(opts ...Option) *DownloadsClient {
	c := &DownloadsClient{
		baseURL:      DefaultDownloadsURL,
		retryCount:   DefaultRetryCount,
		retryWait:    DefaultRetryWaitTime,
		retryMaxWait: DefaultRetryMaxWaitTime,
		rps:          DefaultRequestsPerSecond,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.limiter = rate.NewLimiter(rate.Limit(c.rps), 1)
	c.client = resty.New().
		SetRetryCount(c.retryCount).
		SetRetryWaitTime(c.retryWait).
		SetRetryMaxWaitTime(c.retryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return r != nil && r.StatusCode() == http.StatusTooManyRequests
		})

	return c
}

// downloadsResponse is the registry's point-downloads payload.
type downloadsResponse struct {
	Downloads int64  `json:"downloads"`
	Package   string `json:"package"`
}

// Downloads returns the package's downloads over the last week.
func (c *DownloadsClient) Downloads(ctx context.Context, pkg string) (int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	var out downloadsResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(c.baseURL + pkg)
	if err != nil {
		return 0, polyscout.Errorf(polyscout.EUNAVAILABLE, "npm downloads %q: %v", pkg, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return 0, polyscout.Errorf(polyscout.ENOTFOUND, "npm package %q not found", pkg)
	case !resp.IsSuccess():
		return 0, polyscout.Errorf(polyscout.EUNAVAILABLE, "npm downloads %q: HTTP %d", pkg, resp.StatusCode())
	}

	return out.Downloads, nil
}
