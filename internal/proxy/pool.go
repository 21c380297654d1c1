// Package proxy rotates outbound fetches across a list of HTTP proxies,
// skipping ones that failed recently.
package proxy

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Cooldown is how long a failed proxy is skipped.
const Cooldown = 5 * time.Minute

// Pool hands out proxies round-robin.
type Pool struct {
	mu      sync.Mutex
	proxies []*url.URL
	next    int
	failed  map[string]time.Time
	now     func() time.Time
}

// Parse builds a Pool from a comma separated proxy list. An empty list yields
// a nil Pool, which routes everything direct.
func Parse(list string) (*Pool, error) {
	var urls []*url.URL
	for _, raw := range strings.Split(list, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid proxy %q", raw)
		}
		urls = append(urls, u)
	}
	if len(urls) == 0 {
		return nil, nil
	}
	return &Pool{proxies: urls, failed: make(map[string]time.Time), now: time.Now}, nil
}

// Len returns the number of configured proxies.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.proxies)
}

// Next returns the next proxy not in cooldown. When every proxy is cooling
// down the rotation continues anyway.
func (p *Pool) Next() *url.URL {
	if p.Len() == 0 {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	for range p.proxies {
		u := p.proxies[p.next]
		p.next = (p.next + 1) % len(p.proxies)
		if at, ok := p.failed[u.String()]; ok {
			if now.Sub(at) < Cooldown {
				continue
			}
			delete(p.failed, u.String())
		}
		return u
	}
	u := p.proxies[p.next]
	p.next = (p.next + 1) % len(p.proxies)
	return u
}

type ctxKey struct{}

// RoundTripper routes each request through the next proxy in the pool. A
// transport error puts that proxy into cooldown; a response clears it.
func (p *Pool) RoundTripper(base *http.Transport) http.RoundTripper {
	base.Proxy = func(r *http.Request) (*url.URL, error) {
		u, _ := r.Context().Value(ctxKey{}).(*url.URL)
		return u, nil
	}
	return &roundTripper{pool: p, base: base}
}

type roundTripper struct {
	pool *Pool
	base *http.Transport
}

func (rt *roundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	u := rt.pool.Next()
	if u == nil {
		return rt.base.RoundTrip(req)
	}
	resp, err := rt.base.RoundTrip(req.WithContext(context.WithValue(req.Context(), ctxKey{}, u)))
	if err != nil {
		rt.pool.MarkFailed(u)
		return nil, fmt.Errorf("via proxy %s: %w", u.Host, err)
	}
	rt.pool.MarkHealthy(u)
	return resp, nil
}

func (rt *roundTripper) CloseIdleConnections() {
	rt.base.CloseIdleConnections()
}

// MarkFailed puts u into cooldown.
func (p *Pool) MarkFailed(u *url.URL) {
	if p.Len() == 0 || u == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed[u.String()] = p.now()
}

// MarkHealthy clears u's cooldown.
func (p *Pool) MarkHealthy(u *url.URL) {
	if p.Len() == 0 || u == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.failed, u.String())
}
