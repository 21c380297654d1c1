package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/batch"
	"github.com/law-makers/appraiser/internal/pipeline"
	"github.com/law-makers/appraiser/internal/ui"
)

func newBatchCmd() *cobra.Command {
	var noProgress bool
	cmd := &cobra.Command{
		Use:   "batch <root>",
		Short: "Extract every parcel directory under a root",
		Long: `Finds every directory under root that holds input.html or property_seed.json
and extracts them in parallel. A failing parcel is reported and the rest keep
going; the command exits with status 1 if any parcel failed.`,
		Example: `  # Extract all Lee parcels eight at a time, logging runs to SQLite
  appraiser batch ./parcels --county lee -j 8 --index runs.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			dirs, err := batch.Discover(args[0])
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				return fmt.Errorf("no parcel directories under %s", args[0])
			}

			bar := newBar(len(dirs), "extracting", noProgress || a.Config.JSONLog || a.Config.LogLevel == "debug")
			runner := &batch.Runner[*pipeline.Result]{
				Concurrency: a.Config.Concurrency,
				Progress: func(_, _ int, o batch.Outcome[*pipeline.Result]) {
					bar.Add(1)
				},
			}
			outcomes := runner.RunDirs(cmd.Context(), dirs, func(ctx context.Context, dir string) (*pipeline.Result, error) {
				return runParcel(ctx, a, dir)
			})
			bar.Finish()

			w := cmd.OutOrStdout()
			for _, o := range outcomes {
				if o.Err != nil {
					fmt.Fprintf(w, "%s %s: %v\n", ui.Error("✗"), o.Dir, o.Err)
				}
			}
			failed := batch.Failed(outcomes)
			fmt.Fprintf(w, "%s %d parcels, %d ok, %d failed\n", ui.Bold("Done:"), len(outcomes), len(outcomes)-failed, failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d parcels failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Hide the progress bar")
	return cmd
}

func newBar(total int, desc string, hidden bool) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetVisibility(!hidden),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
	)
}
