package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/bursar/internal/ledger"
)

func newReportCommand(configPath *string) *cobra.Command {
	var startStr, endStr string

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print ledger, trial balance and income statement reports",
	}
	reportCmd.PersistentFlags().StringVar(&startStr, "start", "", "first day of the period, YYYY-MM-DD")
	reportCmd.PersistentFlags().StringVar(&endStr, "end", "", "last day of the period, YYYY-MM-DD")

	period := func() (start, end *time.Time, err error) {
		if start, err = parseDateFlag("start", startStr); err != nil {
			return nil, nil, err
		}
		if end, err = parseDateFlag("end", endStr); err != nil {
			return nil, nil, err
		}
		if start != nil && end != nil && end.Before(*start) {
			return nil, nil, fmt.Errorf("--end %s is before --start %s", endStr, startStr)
		}
		return start, end, nil
	}

	reportCmd.AddCommand(
		newLedgerReportCommand(configPath, period),
		newTrialBalanceReportCommand(configPath, period),
		newIncomeStatementReportCommand(configPath, period),
	)
	return reportCmd
}

type periodFunc func() (start, end *time.Time, err error)

func parseDateFlag(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(ledger.DateFormat, s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: want YYYY-MM-DD", name, s)
	}
	return &t, nil
}

func money(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}

func newLedgerReportCommand(configPath *string, period periodFunc) *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "General ledger with running balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := period()
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			lines, err := a.reporter().BuildLedger(cmd.Context(), ledger.Query{Account: account, Start: start, End: end})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "General ledger (%s)\n\n", ledger.Period(start, end))
			t := newTable("DATE", "SOURCE", "ACCOUNT", "DEBIT", "CREDIT", "BALANCE", "DESCRIPTION").alignRight(3, 4, 5)
			for _, l := range lines {
				t.add(l.Date.Format(ledger.DateFormat), string(l.Source), l.Account,
					money(l.Debit), money(l.Credit), l.Balance.StringFixed(2), l.Description)
			}
			return t.render(out)
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "only lines for this account code")
	return cmd
}

func newTrialBalanceReportCommand(configPath *string, period periodFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "trial-balance",
		Short: "Debit and credit totals per account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := period()
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			rows, err := a.reporter().TrialBalance(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Trial balance (%s)\n\n", ledger.Period(start, end))
			t := newTable("CODE", "TYPE", "DEBIT", "CREDIT", "NAME").alignRight(2, 3)
			for _, r := range rows {
				t.add(r.Code, string(r.Type), money(r.Debit), money(r.Credit), r.Name)
			}
			totals := ledger.Totals(rows)
			t.add("", "TOTAL", totals.Debit.StringFixed(2), totals.Credit.StringFixed(2), "")
			if err := t.render(out); err != nil {
				return err
			}
			if !totals.Balanced {
				diff := totals.Debit.Sub(totals.Credit)
				fmt.Fprintf(out, "\nDebits and credits differ by %s\n", diff.Abs().StringFixed(2))
			}
			return nil
		},
	}
}

func newIncomeStatementReportCommand(configPath *string, period periodFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "income-statement",
		Short: "Income, expenses and net income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := period()
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			stmt, err := a.reporter().IncomeStatement(cmd.Context(), start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Income statement (%s)\n\n", stmt.Period)
			t := newTable("", "AMOUNT").alignRight(1)
			t.add("Income", stmt.Income.StringFixed(2))
			t.add("Expenses", stmt.Expenses.StringFixed(2))
			t.add("Net income", stmt.NetIncome.StringFixed(2))
			return t.render(out)
		},
	}
}
