// Package ratelimit throttles requests per appraiser host so batch fetches
// stay polite.
package ratelimit

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiter blocks until a request to a URL may proceed.
type RateLimiter interface {
	Wait(ctx context.Context, rawURL string) error
	Allow(rawURL string) bool
}

// HostLimiter keeps one token bucket per host.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perHost  rate.Limit
	burst    int
}

// NewHostLimiter allows rps requests per second per host with the given
// burst. Non-positive values fall back to 2 rps and a burst of 4.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 4
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(rps),
		burst:    burst,
	}
}

// Wait blocks until the host of rawURL has a token. Unparseable URLs are not
// throttled; the request itself will fail.
func (l *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	host := Host(rawURL)
	if host == "" {
		return nil
	}
	return l.limiter(host).Wait(ctx)
}

// Allow reports whether a request may proceed now, consuming a token if so.
func (l *HostLimiter) Allow(rawURL string) bool {
	host := Host(rawURL)
	if host == "" {
		return true
	}
	return l.limiter(host).Allow()
}

// Hosts returns how many hosts have been seen.
func (l *HostLimiter) Hosts() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *HostLimiter) limiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[host]
	if !ok {
		lim = rate.NewLimiter(l.perHost, l.burst)
		l.limiters[host] = lim
	}
	return lim
}

// Host returns the lower-cased host of rawURL, or "".
func Host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}
