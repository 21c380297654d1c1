// Package county holds the registry of per-county page extractors and the
// helpers they share.
package county

import (
	"sort"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"

	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/seed"
	"github.com/law-makers/appraiser/pkg/models"
)

// Options control one extraction.
type Options struct {
	// Strict makes an unknown use code fatal.
	Strict bool
}

// Extractor is implemented by every county.
type Extractor interface {
	// Name returns the lower-case county name the extractor is registered under
	Name() string

	// Extract reads one parcel page
	Extract(doc *goquery.Document, s *seed.Seeds, opts Options) (*models.Parcel, error)
}

var (
	mu         sync.RWMutex
	extractors = make(map[string]Extractor)
)

// Register makes an extractor available by name. It panics on duplicates so
// clashing init functions fail at startup.
func Register(e Extractor) {
	mu.Lock()
	defer mu.Unlock()
	name := strings.ToLower(e.Name())
	if _, dup := extractors[name]; dup {
		panic("county: duplicate extractor " + name)
	}
	extractors[name] = e
}

// Get looks up an extractor case-insensitively.
func Get(name string) (Extractor, error) {
	mu.RLock()
	defer mu.RUnlock()
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(key, " county")
	e, ok := extractors[key]
	if !ok {
		return nil, extract.NewError(extract.ErrCodeNotFound, "no extractor for county "+name, extract.ErrUnknownCounty).
			WithDetail("county", name)
	}
	return e, nil
}

// Names lists the registered counties in order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(extractors))
	for n := range extractors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
