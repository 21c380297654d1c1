package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/law-makers/appraiser/internal/ui"
)

func customHelpFunc(cmd *cobra.Command, _ []string) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n%s\n", ui.Bold(strings.ToUpper(cmd.CommandPath())))
	if cmd.Long != "" {
		fmt.Fprintf(w, "%s\n", strings.TrimSpace(cmd.Long))
	} else if cmd.Short != "" {
		fmt.Fprintf(w, "%s\n", cmd.Short)
	}
	writeHelp(w, cmd, true)
}

// customUsageFunc is printed after argument errors.
func customUsageFunc(cmd *cobra.Command) error {
	writeHelp(cmd.ErrOrStderr(), cmd, false)
	return nil
}

func writeHelp(w io.Writer, cmd *cobra.Command, full bool) {
	section := func(title string) { fmt.Fprintf(w, "\n%s\n", ui.Bold(title)) }

	section("Usage")
	if cmd.Runnable() {
		fmt.Fprintf(w, "  %s%s%s\n", ui.ColorCyan, cmd.UseLine(), ui.ColorReset)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(w, "  %s%s <command>%s [flags]\n", ui.ColorCyan, cmd.CommandPath(), ui.ColorReset)

		section("Commands")
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() && c.Name() != "help" {
				fmt.Fprintf(w, "  %s%-*s%s  %s\n", ui.ColorCyan, c.NamePadding(), c.Name(), ui.ColorReset, c.Short)
			}
		}
	}

	if full && cmd.HasExample() {
		section("Examples")
		for _, line := range strings.Split(cmd.Example, "\n") {
			line = strings.TrimSpace(line)
			switch {
			case line == "":
				fmt.Fprintln(w)
			case strings.HasPrefix(line, "#"):
				fmt.Fprintf(w, "  %s\n", ui.Info(line))
			default:
				fmt.Fprintf(w, "  %s\n", ui.Success("$ "+line))
			}
		}
	}

	if cmd.HasAvailableLocalFlags() {
		section("Flags")
		fmt.Fprint(w, cmd.LocalFlags().FlagUsages())
	}
	if full && cmd.HasAvailableInheritedFlags() {
		section("Global Flags")
		fmt.Fprint(w, cmd.InheritedFlags().FlagUsages())
	}
	fmt.Fprintf(w, "\nRun %s for details.\n", ui.Success(cmd.CommandPath()+" --help"))
}
