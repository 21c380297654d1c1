package static

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/law-makers/appraiser/internal/cache"
	"github.com/law-makers/appraiser/internal/engine"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/ratelimit"
	"github.com/law-makers/appraiser/internal/retry"
)

const page = `<!DOCTYPE html>
<html><head><title> Parcel 10-44-25-P3-01234.0010 </title></head>
<body><div id="PropertyDetailsCurrent">owner</div></body></html>`

func newTestFetcher(c cache.Cache) *Fetcher {
	cfg := retry.DefaultConfig()
	cfg.InitialBackoff = time.Millisecond
	cfg.MaxBackoff = time.Millisecond
	return New(c, ratelimit.NewHostLimiter(1000, 100), &http.Client{}, Options{
		UserAgent: "TestFetcher/1.0",
		Timeout:   5 * time.Second,
		Retry:     cfg,
	})
}

func TestFetch_BasicHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "TestFetcher/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "yes", r.Header.Get("X-Custom"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer server.Close()

	f := newTestFetcher(nil)
	snap, err := f.Fetch(context.Background(), engine.Request{
		URL:     server.URL,
		Headers: http.Header{"X-Custom": {"yes"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 200, snap.StatusCode)
	assert.Equal(t, "Parcel 10-44-25-P3-01234.0010", snap.Title)
	assert.Contains(t, snap.HTML, "PropertyDetailsCurrent")
	assert.False(t, snap.FetchedAt.IsZero())
	assert.Equal(t, "static", f.Name())
}

func TestFetch_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(page))
	}))
	defer server.Close()

	snap, err := newTestFetcher(nil).Fetch(context.Background(), engine.Request{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Contains(t, snap.HTML, "owner")
}

func TestFetch_NotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := newTestFetcher(nil).Fetch(context.Background(), engine.Request{URL: server.URL})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "404 is not retried")

	var xerr *extract.Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, extract.ErrCodeNotFound, xerr.Code)
}

func TestFetch_RejectsNonHTML(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	_, err := newTestFetcher(nil).Fetch(context.Background(), engine.Request{URL: server.URL})
	assert.ErrorIs(t, err, extract.ErrParse)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetch_RejectsOversizedPage(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(page))
	}))
	defer server.Close()

	f := newTestFetcher(nil)
	f.opts.MaxBodyBytes = int64(len(page) - 1)
	_, err := f.Fetch(context.Background(), engine.Request{URL: server.URL})
	assert.ErrorIs(t, err, &extract.Error{Code: extract.ErrCodeIO})
	assert.ErrorContains(t, err, "exceeds")
	assert.Equal(t, int32(1), calls.Load(), "oversized pages are not retried")

	f.opts.MaxBodyBytes = int64(len(page))
	snap, err := f.Fetch(context.Background(), engine.Request{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, page, snap.HTML)
}

func TestFetch_UsesCache(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(page))
	}))
	defer server.Close()

	c := cache.NewMemoryCache(1 << 20)
	defer c.Close()
	f := newTestFetcher(c)

	for i := 0; i < 3; i++ {
		_, err := f.Fetch(context.Background(), engine.Request{URL: server.URL})
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())

	_, err := f.Fetch(context.Background(), engine.Request{URL: server.URL, NoCache: true})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestFetch_InvalidHost(t *testing.T) {
	f := newTestFetcher(nil)
	f.opts.Retry.MaxAttempts = 1
	_, err := f.Fetch(context.Background(), engine.Request{URL: "http://invalid-host-that-does-not-exist.invalid"})
	assert.ErrorIs(t, err, &extract.Error{Code: extract.ErrCodeIO})
}
