package cli

import (
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/county"
	"github.com/law-makers/appraiser/internal/usecode"
)

func newCountiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "counties",
		Short: "List county extractors and use-code tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			extractors := county.Names()
			names := append(slices.Clone(extractors), usecode.Counties()...)
			slices.Sort(names)
			names = slices.Compact(names)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"County", "Extractor", "Use codes"})
			for _, name := range names {
				extractor := "no"
				if slices.Contains(extractors, name) {
					extractor = "yes"
				}
				codes := "-"
				if tbl, err := usecode.Get(name); err == nil {
					codes = fmt.Sprint(tbl.Len())
				}
				t.AppendRow(table.Row{name, extractor, codes})
			}
			t.SetStyle(table.StyleRounded)
			t.Render()
			return nil
		},
	}
}
