package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/app"
	"github.com/law-makers/appraiser/internal/config"
	"github.com/law-makers/appraiser/internal/reqctx"
	"github.com/law-makers/appraiser/internal/ui"
)

// Version is stamped at build time.
var Version = "0.1.0"

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "appraiser",
		Short: "Extract property appraiser parcel pages into normalized JSON",
		Long: `Appraiser reads saved county property-appraiser parcel pages and writes the
facts they contain as normalized JSON documents: property, address, lot, taxes,
sales, deeds, owners, structure, utilities and layouts, plus relationship files
linking them.

Each parcel lives in its own directory holding input.html and property_seed.json.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,

		// the application is built lazily so -h and --version stay cheap
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if GetAppFromCmd(cmd) != nil {
				return nil
			}
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			a, err := app.New(ctx, cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(reqctx.WithRun(ctx))
			SetApp(cmd, a)
			return nil
		},
	}

	config.RegisterFlags(root)
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().BoolP("help", "h", false, "Help for appraiser")
	root.Flags().Bool("version", false, "Version for appraiser")
	root.SetHelpFunc(customHelpFunc)
	root.SetUsageFunc(customUsageFunc)

	root.AddCommand(
		newExtractCmd(),
		newBatchCmd(),
		newFetchCmd(),
		newCountiesCmd(),
		newNamesCmd(),
		newHistoryCmd(),
	)
	return root
}

// Execute runs the CLI and exits with status 1 on any error.
func Execute(ctx context.Context) {
	root := NewRootCmd()
	cmd, err := root.ExecuteContextC(ctx)
	closeApp(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Error("Error: ")+err.Error())
		os.Exit(1)
	}
}

func closeApp(cmd *cobra.Command) {
	a := GetAppFromCmd(cmd)
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.Config.HTTPTimeout)
	defer cancel()
	_ = a.Close(ctx)
}
