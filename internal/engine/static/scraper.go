// Package static fetches server-rendered appraiser pages over plain HTTP.
package static

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/appraiser/internal/cache"
	"github.com/law-makers/appraiser/internal/engine"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/ratelimit"
	"github.com/law-makers/appraiser/internal/retry"
	"github.com/law-makers/appraiser/internal/utils/headers"
	"github.com/law-makers/appraiser/pkg/models"
)

// DefaultUserAgent identifies the tool to appraiser sites.
const DefaultUserAgent = "appraiser/1.0 (+https://github.com/law-makers/appraiser)"

// MaxBodyBytes is the default cap on page size.
const MaxBodyBytes = 16 << 20

// Options configures a Fetcher. Zero values get defaults.
type Options struct {
	UserAgent string
	Timeout   time.Duration
	CacheTTL  time.Duration
	Retry     retry.Config
	// MaxBodyBytes caps the page size. Larger pages fail rather than being
	// saved truncated.
	MaxBodyBytes int64
}

// Fetcher implements engine.Fetcher with net/http and goquery.
type Fetcher struct {
	cache   cache.Cache
	limiter ratelimit.RateLimiter
	client  *http.Client
	opts    Options
}

var _ engine.Fetcher = (*Fetcher)(nil)

// New creates a Fetcher. cache and limiter may be nil.
func New(c cache.Cache, lim ratelimit.RateLimiter, client *http.Client, opts Options) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = MaxBodyBytes
	}
	if opts.Retry.MaxAttempts == 0 {
		opts.Retry = retry.DefaultConfig()
	}
	return &Fetcher{cache: c, limiter: lim, client: client, opts: opts}
}

// Name returns the name of this fetcher.
func (f *Fetcher) Name() string {
	return "static"
}

// Fetch GETs req.URL, retrying throttled and failed responses. Only 2xx
// HTML responses produce a snapshot.
func (f *Fetcher) Fetch(ctx context.Context, req engine.Request) (*models.Snapshot, error) {
	if f.cache != nil && !req.NoCache {
		if snap, ok := f.cache.Get(req.URL); ok {
			return snap, nil
		}
	}

	var snap *models.Snapshot
	err := retry.Do(ctx, f.opts.Retry, func(ctx context.Context) error {
		s, err := f.once(ctx, req)
		if err != nil {
			return err
		}
		snap = s
		return nil
	})
	if err != nil {
		var se *retry.StatusError
		code := extract.ErrCodeIO
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			code = extract.ErrCodeNotFound
		}
		var xerr *extract.Error
		if errors.As(err, &xerr) {
			return nil, err
		}
		return nil, extract.NewError(code, "fetch parcel page", err).WithDetail("url", req.URL)
	}

	if f.cache != nil {
		if err := f.cache.Set(req.URL, snap, f.opts.CacheTTL); err != nil {
			log.Warn().Err(err).Str("url", req.URL).Msg("Failed to cache snapshot")
		}
	}
	return snap, nil
}

func (f *Fetcher) once(ctx context.Context, req engine.Request) (*models.Snapshot, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx, req.URL); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	start := time.Now()
	log.Debug().
		Str("url", req.URL).
		Str("fetcher", f.Name()).
		Msg("Starting fetch")

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", f.opts.UserAgent)
	httpReq.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	httpReq.Header.Set("Accept-Language", "en-US,en;q=0.9")
	headers.Apply(httpReq, req.Headers)

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &retry.StatusError{StatusCode: resp.StatusCode, Status: resp.Status, URL: req.URL}
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return nil, retry.Permanent(extract.NewError(extract.ErrCodeParse, "unexpected content type "+ct, extract.ErrParse))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.opts.MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(body)) > f.opts.MaxBodyBytes {
		return nil, retry.Permanent(extract.NewError(extract.ErrCodeIO, fmt.Sprintf("page exceeds %d bytes", f.opts.MaxBodyBytes), nil).
			WithDetail("url", req.URL))
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, retry.Permanent(extract.NewError(extract.ErrCodeParse, "failed to parse HTML", errors.Join(extract.ErrParse, err)))
	}

	snap := &models.Snapshot{
		URL:          resp.Request.URL.String(),
		StatusCode:   resp.StatusCode,
		Title:        strings.TrimSpace(doc.Find("title").First().Text()),
		HTML:         string(body),
		FetchedAt:    time.Now().UTC(),
		ResponseTime: time.Since(start).Milliseconds(),
	}

	log.Debug().
		Str("url", req.URL).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", snap.ResponseTime).
		Int("bytes", len(body)).
		Msg("Fetch completed")
	return snap, nil
}
