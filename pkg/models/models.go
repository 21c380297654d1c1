// Package models holds the JSON documents emitted for a parcel and the
// in-memory aggregate that county extractors hand to the graph builder.
package models

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"
)

// SourceHTTPRequest describes the request that produced the parcel page.
type SourceHTTPRequest struct {
	Method                string              `json:"method"`
	URL                   string              `json:"url"`
	MultiValueQueryString map[string][]string `json:"multiValueQueryString,omitempty"`
}

// FullURL renders the base URL with the multi-value query string appended in
// key order so repeated runs produce the same URL.
func (r SourceHTTPRequest) FullURL() (string, error) {
	if r.URL == "" {
		return "", fmt.Errorf("source request has no url")
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return "", fmt.Errorf("invalid source url: %w", err)
	}
	if len(r.MultiValueQueryString) == 0 {
		return u.String(), nil
	}

	q := u.Query()
	keys := make([]string, 0, len(r.MultiValueQueryString))
	for k := range r.MultiValueQueryString {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, v := range r.MultiValueQueryString[k] {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Provenance is embedded in every emitted document.
type Provenance struct {
	SourceHTTPRequest *SourceHTTPRequest `json:"source_http_request,omitempty"`
	RequestIdentifier string             `json:"request_identifier,omitempty"`
}

// Snapshot is a fetched parcel page.
type Snapshot struct {
	URL          string    `json:"url"`
	StatusCode   int       `json:"status_code"`
	Title        string    `json:"title,omitempty"`
	HTML         string    `json:"html,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
	ResponseTime int64     `json:"response_time_ms"`
}

// String returns a pointer to the trimmed value, or nil when it is blank.
func String(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Float returns a pointer to f.
func Float(f float64) *float64 {
	return &f
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
