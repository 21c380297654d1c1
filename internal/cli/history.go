package cli

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/utils/output"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit  int
		parcel string
		asCSV  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent runs from the run index",
		Example: `  appraiser history --index runs.db
  appraiser history --index runs.db --parcel 10-44-25-P1-00012.0010 --csv > runs.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := GetAppFromCmd(cmd)
			x, err := a.Index(cmd.Context())
			if err != nil {
				return err
			}
			if x == nil {
				return fmt.Errorf("no run index configured (use --index or APPRAISER_INDEX)")
			}

			runs, err := x.Recent(cmd.Context(), limit, parcel)
			if err != nil {
				return err
			}
			if asCSV {
				return output.WriteRunsCSV(cmd.OutOrStdout(), runs)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"When", "Parcel", "County", "Status", "Files", "Sales", "Took", "Error"})
			for _, r := range runs {
				t.AppendRow(table.Row{
					r.ExtractedAt.Local().Format(time.DateTime), r.ParcelID, r.County, r.Status,
					r.Files, r.Sales, r.Duration.Round(time.Millisecond), r.Error,
				})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()

			stats, err := x.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d ok, %d failed in total\n", stats["ok"], stats["failed"])
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	cmd.Flags().StringVar(&parcel, "parcel", "", "Only show runs for this parcel id")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV instead of a table")
	return cmd
}
