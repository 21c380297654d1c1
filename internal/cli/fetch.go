package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/batch"
	"github.com/law-makers/appraiser/internal/pipeline"
	"github.com/law-makers/appraiser/internal/ui"
)

func newFetchCmd() *cobra.Command {
	var clean, force bool
	cmd := &cobra.Command{
		Use:   "fetch [dir...]",
		Short: "Download parcel pages named by property seeds",
		Long: `Fetches the page described by source_http_request in each parcel's
property_seed.json and saves it as input.html. Arguments may be parcel
directories or roots holding many of them. Existing pages are kept unless
--force is given.`,
		Example: `  # Snapshot every parcel under ./parcels, two requests per second per host
  appraiser fetch ./parcels --rate-limit 2

  # Refetch one parcel through a proxy, stripping scripts
  appraiser fetch ./parcels/A --force --clean --proxy http://localhost:3128`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := GetAppFromCmd(cmd)
			if len(args) == 0 {
				args = []string{"."}
			}
			var dirs []string
			for _, root := range args {
				found, err := batch.Discover(root)
				if err != nil {
					return err
				}
				dirs = append(dirs, found...)
			}
			if len(dirs) == 0 {
				return fmt.Errorf("no parcel directories found")
			}

			bar := newBar(len(dirs), "fetching", len(dirs) == 1 || a.Config.JSONLog || a.Config.LogLevel == "debug")
			runner := &batch.Runner[*pipeline.SnapshotResult]{
				Concurrency: a.Config.Concurrency,
				Progress: func(_, _ int, _ batch.Outcome[*pipeline.SnapshotResult]) {
					bar.Add(1)
				},
			}
			outcomes := runner.RunDirs(cmd.Context(), dirs, func(ctx context.Context, dir string) (*pipeline.SnapshotResult, error) {
				return pipeline.Snapshot(ctx, a.Fetcher, a.SnapshotJob(dir, clean, force))
			})
			bar.Finish()

			w := cmd.OutOrStdout()
			saved, skipped := 0, 0
			for _, o := range outcomes {
				switch {
				case o.Err != nil:
					fmt.Fprintf(w, "%s %s: %v\n", ui.Error("✗"), o.Dir, o.Err)
				case o.Value.Skipped:
					skipped++
					fmt.Fprintf(w, "%s %s already saved\n", ui.Warn("-"), o.Value.Path)
				default:
					saved++
					fmt.Fprintf(w, "%s %s (%d bytes)\n", ui.Success("✓"), o.Value.Path, o.Value.Bytes)
				}
			}
			failed := batch.Failed(outcomes)
			fmt.Fprintf(w, "%s %d saved, %d already present, %d failed\n", ui.Bold("Done:"), saved, skipped, failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d fetches failed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&clean, "clean", false, "Strip scripts, styles and event handlers before saving")
	cmd.Flags().BoolVar(&force, "force", false, "Refetch pages that are already saved")
	return cmd
}
