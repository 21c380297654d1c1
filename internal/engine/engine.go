// Package engine defines how parcel pages are fetched. The static
// sub-package is the only implementation: appraiser detail pages are
// server-rendered.
package engine

import (
	"context"
	"net/http"

	"github.com/law-makers/appraiser/pkg/models"
)

// Request is one page fetch.
type Request struct {
	URL     string
	Headers http.Header
	// NoCache bypasses the snapshot cache for this request.
	NoCache bool
}

// Fetcher retrieves parcel pages.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (*models.Snapshot, error)
	Name() string
}
