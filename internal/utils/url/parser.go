package urlutil

import (
	"fmt"
	"net/url"

	"github.com/law-makers/appraiser/pkg/models"
)

// ValidateURL performs comprehensive URL validation
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// ResolveURL resolves a possibly-relative href against a base URL and returns a string
func ResolveURL(base, href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if u.IsAbs() {
		return href
	}
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return href
	}
	return baseURL.ResolveReference(u).String()
}

// ResolveFileLinks makes every deed document link on the parcel absolute,
// using the page's source request as the base.
func ResolveFileLinks(p *models.Parcel) {
	if p.Source.SourceHTTPRequest == nil {
		return
	}
	base := p.Source.SourceHTTPRequest.URL
	for i := range p.Sales {
		f := p.Sales[i].File
		if f == nil || f.OriginalURL == nil {
			continue
		}
		resolved := ResolveURL(base, *f.OriginalURL)
		f.OriginalURL = &resolved
	}
}
