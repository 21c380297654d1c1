// Package pipeline runs one parcel directory end to end: seeds, page,
// county extractor, document graph, output files.
package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/law-makers/appraiser/internal/county"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/graph"
	"github.com/law-makers/appraiser/internal/reqctx"
	"github.com/law-makers/appraiser/internal/seed"
	"github.com/law-makers/appraiser/internal/utils/output"
	urlutil "github.com/law-makers/appraiser/internal/utils/url"
)

// Job describes one parcel directory.
type Job struct {
	Dir string
	// County overrides the county named in the address seed.
	County    string
	InputFile string
	// DataDir is resolved against Dir when relative. An absolute DataDir is
	// shared, so each parcel writes to its own subdirectory of it.
	DataDir string
	Seeds   seed.Files
	Strict  bool
}

// Result summarises a successful run.
type Result struct {
	ParcelID  string
	County    string
	DataDir   string
	Files     []string
	Sales     int
	Owners    int
	Persons   int
	Companies int
	Duration  time.Duration
}

func (j Job) withDefaults() Job {
	if j.InputFile == "" {
		j.InputFile = "input.html"
	}
	if j.DataDir == "" {
		j.DataDir = "data"
	}
	if j.Seeds == (seed.Files{}) {
		j.Seeds = seed.DefaultFiles()
	}
	return j
}

// OutputDir is where the job writes the documents of parcelID.
func (j Job) OutputDir(parcelID string) string {
	j = j.withDefaults()
	if !filepath.IsAbs(j.DataDir) {
		return filepath.Join(j.Dir, j.DataDir)
	}
	name := unsafeName.ReplaceAllString(parcelID, "_")
	if name == "" || name == "." || name == ".." {
		abs, _ := filepath.Abs(j.Dir)
		name = filepath.Base(abs)
	}
	return filepath.Join(j.DataDir, name)
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// checkOutputDir refuses a directory holding seed files. WriteBundle clears
// every *.json in the output directory.
func checkOutputDir(j Job, outDir string) error {
	out, err := filepath.Abs(outDir)
	if err != nil {
		return extract.NewError(extract.ErrCodeIO, "resolve output directory", err).WithDetail("dir", outDir)
	}
	refuse := func() error {
		return extract.NewError(extract.ErrCodeValidation, "output directory holds seed files", nil).
			WithDetail("dir", out)
	}
	for _, name := range []string{j.Seeds.PropertySeed, j.Seeds.Address, j.Seeds.Owners, j.Seeds.Utilities, j.Seeds.Layouts} {
		if name == "" {
			continue
		}
		p, err := filepath.Abs(filepath.Join(j.Dir, name))
		if err == nil && filepath.Dir(p) == out {
			return refuse()
		}
	}
	if _, err := os.Stat(filepath.Join(out, filepath.Base(j.Seeds.PropertySeed))); err == nil {
		return refuse()
	}
	return nil
}

// Run processes job. Any failure aborts the parcel; output from an earlier
// run is only replaced once the new bundle has been built.
func Run(ctx context.Context, job Job) (*Result, error) {
	start := time.Now()
	job = job.withDefaults()
	logger := reqctx.Logger(ctx).With().Str("dir", job.Dir).Logger()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seeds, err := seed.Load(job.Dir, job.Seeds)
	if err != nil {
		return nil, err
	}
	outDir := job.OutputDir(seeds.ParcelID())
	if err := checkOutputDir(job, outDir); err != nil {
		return nil, err
	}

	name := job.County
	if name == "" {
		name = seeds.County()
	}
	if name == "" {
		return nil, extract.NewError(extract.ErrCodeValidation, "no county given and none in the address seed", extract.ErrUnknownCounty).
			WithDetail("dir", job.Dir)
	}
	extractor, err := county.Get(name)
	if err != nil {
		return nil, err
	}

	inputPath := filepath.Join(job.Dir, job.InputFile)
	f, err := os.Open(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, extract.NewError(extract.ErrCodeNotFound, "parcel page", errors.Join(extract.ErrMissingInput, err)).
				WithDetail("file", inputPath)
		}
		return nil, extract.NewError(extract.ErrCodeIO, "open parcel page", err).WithDetail("file", inputPath)
	}
	doc, err := extract.Parse(f)
	f.Close()
	if err != nil {
		return nil, err
	}

	parcel, err := extractor.Extract(doc, seeds, county.Options{Strict: job.Strict})
	if err != nil {
		var xerr *extract.Error
		if errors.As(err, &xerr) {
			xerr.WithDetail("parcel_id", seeds.ParcelID())
		}
		return nil, err
	}
	urlutil.ResolveFileLinks(parcel)

	bundle, err := graph.Build(parcel)
	if err != nil {
		return nil, err
	}

	files, err := output.WriteBundle(outDir, bundle)
	if err != nil {
		return nil, err
	}

	res := &Result{
		ParcelID:  seeds.ParcelID(),
		County:    extractor.Name(),
		DataDir:   outDir,
		Files:     files,
		Sales:     bundle.Sales,
		Owners:    len(parcel.Owners),
		Persons:   bundle.Persons,
		Companies: bundle.Companies,
		Duration:  time.Since(start),
	}
	logger.Info().
		Str("parcel_id", res.ParcelID).
		Str("county", res.County).
		Int("count", len(files)).
		Int("sales", res.Sales).
		Dur("duration", res.Duration).
		Msg("Parcel extracted")
	return res, nil
}
