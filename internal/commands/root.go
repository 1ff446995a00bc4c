package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/bursar/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "bursar",
		Short:   "School finance ledger and reports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "bursar.yaml", "path to bursar.yaml")

	rootCmd.AddCommand(
		newInitCommand(),
		newEntryCommand(&configPath),
		newAccountsCommand(&configPath),
		newReportCommand(&configPath),
		newServeCommand(&configPath),
	)

	return rootCmd
}
