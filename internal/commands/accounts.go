package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/bursar/internal/accounts"
)

func newAccountsCommand(configPath *string) *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Chart of accounts",
	}
	accountsCmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the chart of accounts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := openApp(cmd.Context(), *configPath)
				if err != nil {
					return err
				}
				defer a.Close()

				chart, err := accounts.Load(cmd.Context(), a.store)
				if err != nil {
					return err
				}
				t := newTable("CODE", "TYPE", "NAME")
				for _, acct := range chart.All() {
					t.add(acct.Code, string(acct.Type), acct.Name)
				}
				return t.render(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "import <file.csv>",
			Short: "Add accounts from a code,name,type CSV file",
			Long: "Add accounts from a code,name,type CSV file.\n\n" +
				"Codes already in the chart are left unchanged.",
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening %s: %w", args[0], err)
				}
				defer f.Close()

				chart, err := accounts.ReadAccounts(f)
				if err != nil {
					return fmt.Errorf("reading %s: %w", args[0], err)
				}

				a, err := openApp(cmd.Context(), *configPath)
				if err != nil {
					return err
				}
				defer a.Close()

				added, err := accounts.Seed(cmd.Context(), a.store, chart)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %d accounts\n", added, len(chart))
				return nil
			},
		},
	)
	return accountsCmd
}
