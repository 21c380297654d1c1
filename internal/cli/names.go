package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/names"
	"github.com/law-makers/appraiser/pkg/models"
)

type parsedName struct {
	Raw     string         `json:"raw"`
	Parties []models.Party `json:"parties"`
}

type namesOutput struct {
	Inputs    []parsedName     `json:"inputs"`
	Persons   []models.Person  `json:"persons"`
	Companies []models.Company `json:"companies"`
}

func newNamesCmd() *cobra.Command {
	var order string
	cmd := &cobra.Command{
		Use:   "names <raw>...",
		Short: "Show how owner or grantor strings are parsed",
		Long: `Parses each argument the way owner, grantor and grantee cells are parsed and
prints the parties as JSON, followed by the de-duplicated persons and
companies across all arguments.`,
		Example: `  appraiser names "SMITH JOHN A & MARY K" "SMITH JOHN"
  appraiser names --order first-last "ROBERT J MILLER & SUSAN"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := names.Options{}
			switch strings.ToLower(order) {
			case "last-first", "":
				opts.Order = names.LastFirst
			case "first-last":
				opts.Order = names.FirstLast
			default:
				return fmt.Errorf("invalid order %q (must be last-first or first-last)", order)
			}

			reg := names.NewRegistry()
			out := namesOutput{}
			for _, raw := range args {
				parties := names.Parse(raw, opts)
				reg.AddAll(parties)
				out.Inputs = append(out.Inputs, parsedName{Raw: raw, Parties: parties})
			}
			out.Persons = reg.Persons()
			out.Companies = reg.Companies()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&order, "order", "last-first", "Name layout without commas: last-first or first-last")
	return cmd
}
