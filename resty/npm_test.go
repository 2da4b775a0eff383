package resty_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/polyscout"
	psresty "github.com/fwojciec/polyscout/resty"
)

func newClient(serverURL string) *psresty.DownloadsClient {
	return psresty.NewDownloadsClient(
		psresty.WithBaseURL(serverURL+"/"),
		psresty.WithRetry(3, time.Millisecond, 5*time.Millisecond),
		psresty.WithRequestsPerSecond(1000),
	)
}

func TestDownloadsClient_Downloads(t *testing.T) {
	t.Parallel()

	t.Run("returns the weekly download count", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/intersection-observer", r.URL.Path)
			_, _ = w.Write([]byte(`{"downloads": 1234567, "package": "intersection-observer"}`))
		}))
		defer server.Close()

		downloads, err := newClient(server.URL).Downloads(context.Background(), "intersection-observer")
		require.NoError(t, err)
		assert.Equal(t, int64(1234567), downloads)
	})

	t.Run("keeps the scoped package slash unescaped", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/@oddbird/popover-polyfill", r.URL.Path)
			_, _ = w.Write([]byte(`{"downloads": 42}`))
		}))
		defer server.Close()

		downloads, err := newClient(server.URL).Downloads(context.Background(), "@oddbird/popover-polyfill")
		require.NoError(t, err)
		assert.Equal(t, int64(42), downloads)
	})

	t.Run("retries rate-limited responses with backoff", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{"downloads": 7}`))
		}))
		defer server.Close()

		downloads, err := newClient(server.URL).Downloads(context.Background(), "@scope/pkg")
		require.NoError(t, err)
		assert.Equal(t, int64(7), downloads)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("gives up after bounded retries", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := newClient(server.URL).Downloads(context.Background(), "pkg")
		require.Error(t, err)
		assert.Equal(t, polyscout.EUNAVAILABLE, polyscout.ErrorCode(err))
		assert.Equal(t, int32(4), calls.Load()) // 1 initial + 3 retries
	})

	t.Run("unknown package is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "package not found"}`))
		}))
		defer server.Close()

		_, err := newClient(server.URL).Downloads(context.Background(), "no-such-pkg")
		require.Error(t, err)
		assert.Equal(t, polyscout.ENOTFOUND, polyscout.ErrorCode(err))
	})
}
