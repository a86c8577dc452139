package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidygl-dev/tidygl/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tidygl",
		Short:   "Ledger derivation and XBRL taxonomy toolkit",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newLedgerCommand())
	rootCmd.AddCommand(newGraphwalkCommand())
	rootCmd.AddCommand(newTaxonomyCommand())

	return rootCmd
}
