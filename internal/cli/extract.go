package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/app"
	_ "github.com/law-makers/appraiser/internal/county/all"
	"github.com/law-makers/appraiser/internal/extract"
	"github.com/law-makers/appraiser/internal/index"
	"github.com/law-makers/appraiser/internal/pipeline"
	"github.com/law-makers/appraiser/internal/reqctx"
	"github.com/law-makers/appraiser/internal/ui"
)

func newExtractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract [dir]",
		Short: "Extract one parcel directory",
		Long: `Reads input.html and the seed files in a parcel directory, runs the county
extractor and writes the JSON documents to the data directory. Any failure
aborts the parcel and exits with status 1.`,
		Example: `  # Extract the parcel in the current directory
  appraiser extract

  # Force the county and keep going on unknown use codes
  appraiser extract ./parcels/10-44-25-P1-00012.0010 --county lee --lenient`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			a := GetAppFromCmd(cmd)
			res, err := runParcel(cmd.Context(), a, dir)
			if err != nil {
				return reqctx.Wrap(cmd.Context(), err)
			}
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

// runParcel extracts dir and records the outcome in the run index, if any.
func runParcel(ctx context.Context, a *app.Application, dir string) (*pipeline.Result, error) {
	job := a.Job(dir)
	start := time.Now()
	res, err := pipeline.Run(ctx, job)

	if recErr := record(ctx, a, job, res, err, time.Since(start)); recErr != nil {
		reqctx.Logger(ctx).Warn().Err(recErr).Str("dir", dir).Msg("Failed to record run")
	}
	return res, err
}

func record(ctx context.Context, a *app.Application, job pipeline.Job, res *pipeline.Result, runErr error, took time.Duration) error {
	x, err := a.Index(ctx)
	if err != nil || x == nil {
		return err
	}
	r := index.Run{
		RunID:    reqctx.ID(ctx),
		Dir:      job.Dir,
		County:   job.County,
		Status:   index.StatusOK,
		Duration: took,
	}
	if res != nil {
		r.ParcelID = res.ParcelID
		r.County = res.County
		r.Files = len(res.Files)
		r.Sales = res.Sales
		r.Owners = res.Owners
	}
	if runErr != nil {
		r.Status = index.StatusFailed
		r.Error = runErr.Error()
		var xerr *extract.Error
		if errors.As(runErr, &xerr) {
			if id, ok := xerr.Details["parcel_id"].(string); ok && r.ParcelID == "" {
				r.ParcelID = id
			}
		}
	}
	if r.ParcelID == "" {
		r.ParcelID = job.Dir
	}
	_, err = x.Record(context.WithoutCancel(ctx), r)
	return err
}

func printResult(w io.Writer, res *pipeline.Result) {
	fmt.Fprintf(w, "%s %s (%s): %d files, %d sales, %d persons, %d companies -> %s\n",
		ui.Success("✓"), ui.Bold(res.ParcelID), res.County,
		len(res.Files), res.Sales, res.Persons, res.Companies, ui.Info(res.DataDir))
}
