package pipeline

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/law-makers/appraiser/internal/engine"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/reqctx"
	"github.com/law-makers/appraiser/internal/seed"
	"github.com/law-makers/appraiser/internal/utils/output"
	urlutil "github.com/law-makers/appraiser/internal/utils/url"
)

// SnapshotJob fetches the page named by a parcel's property seed.
type SnapshotJob struct {
	Dir       string
	InputFile string
	Seeds     seed.Files
	Headers   http.Header
	// Clean strips scripts, styles and event handlers before saving.
	Clean bool
	// Force refetches even when the page is already on disk.
	Force bool
}

// SnapshotResult reports what was written.
type SnapshotResult struct {
	ParcelID string
	URL      string
	Path     string
	Bytes    int
	Skipped  bool
}

// Snapshot writes the parcel page for job.Dir to its input file.
func Snapshot(ctx context.Context, f engine.Fetcher, job SnapshotJob) (*SnapshotResult, error) {
	if job.InputFile == "" {
		job.InputFile = "input.html"
	}
	if job.Seeds == (seed.Files{}) {
		job.Seeds = seed.DefaultFiles()
	}

	seeds, err := seed.Load(job.Dir, job.Seeds)
	if err != nil {
		return nil, err
	}
	res := &SnapshotResult{ParcelID: seeds.ParcelID(), Path: filepath.Join(job.Dir, job.InputFile)}

	if !job.Force {
		if _, err := os.Stat(res.Path); err == nil {
			res.Skipped = true
			return res, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, extract.NewError(extract.ErrCodeIO, "stat parcel page", err).WithDetail("file", res.Path)
		}
	}

	req := seeds.Property.SourceHTTPRequest
	if req == nil {
		return nil, extract.NewError(extract.ErrCodeValidation, "property seed has no source_http_request", extract.ErrMissingField).
			WithDetail("parcel_id", res.ParcelID)
	}
	if req.Method != "" && req.Method != http.MethodGet {
		return nil, extract.NewError(extract.ErrCodeValidation, "only GET source requests can be fetched", nil).
			WithDetail("method", req.Method)
	}
	res.URL, err = req.FullURL()
	if err == nil {
		err = urlutil.ValidateURL(res.URL)
	}
	if err != nil {
		return nil, extract.NewError(extract.ErrCodeValidation, "source request", err).WithDetail("parcel_id", res.ParcelID)
	}

	snap, err := f.Fetch(ctx, engine.Request{URL: res.URL, Headers: job.Headers, NoCache: job.Force})
	if err != nil {
		return nil, err
	}

	html := snap.HTML
	if job.Clean {
		if html, err = output.CleanSnapshot(html); err != nil {
			return nil, err
		}
	}
	if err := output.WriteFile(res.Path, []byte(html)); err != nil {
		return nil, extract.NewError(extract.ErrCodeIO, "write parcel page", err).WithDetail("file", res.Path)
	}
	res.Bytes = len(html)

	reqctx.Logger(ctx).Info().
		Str("parcel_id", res.ParcelID).
		Str("url", res.URL).
		Int("bytes", res.Bytes).
		Msg("Parcel page saved")
	return res, nil
}
