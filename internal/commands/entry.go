package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/bursar/internal/journal"
	"github.com/cleared-dev/bursar/internal/ledger"
	"github.com/cleared-dev/bursar/internal/model"
)

func newEntryCommand(configPath *string) *cobra.Command {
	entryCmd := &cobra.Command{
		Use:   "entry",
		Short: "Record and maintain entries",
		Long: "Record and maintain entries.\n\n" +
			"Kinds: debtor, creditor, journal (debit/credit) and income, expense (amount).",
	}
	entryCmd.AddCommand(
		newEntryAddCommand(configPath),
		newEntryListCommand(configPath),
		newEntryRemoveCommand(configPath),
		newEntryImportCommand(configPath),
	)
	return entryCmd
}

func newEntryAddCommand(configPath *string) *cobra.Command {
	var (
		dateStr, account, desc   string
		debit, credit, amount    string
		reference, method, notes string
	)

	cmd := &cobra.Command{
		Use:   "add <kind>",
		Short: "Validate and record a new entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}
			d, err := time.Parse(ledger.DateFormat, dateStr)
			if err != nil {
				return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", dateStr)
			}

			e := model.Entry{
				Kind:          kind,
				Date:          d,
				Account:       account,
				Description:   desc,
				Reference:     reference,
				PaymentMethod: method,
				Notes:         notes,
			}
			if e.Debit, err = flagAmount("debit", debit); err != nil {
				return err
			}
			if e.Credit, err = flagAmount("credit", credit); err != nil {
				return err
			}
			if e.Amount, err = flagAmount("amount", amount); err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := a.entries(cmd.Context())
			if err != nil {
				return err
			}
			created, err := svc.Create(cmd.Context(), e)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s entry %s\n", kind, created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "entry date, YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&account, "account", "", "account code")
	cmd.Flags().StringVar(&desc, "desc", "", "description")
	cmd.Flags().StringVar(&debit, "debit", "", "debit amount (debtor, creditor, journal)")
	cmd.Flags().StringVar(&credit, "credit", "", "credit amount (debtor, creditor, journal)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (income, expense)")
	cmd.Flags().StringVar(&reference, "reference", "", "reference, e.g. invoice number")
	cmd.Flags().StringVar(&method, "method", "", "payment method")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}

func flagAmount(name, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	return d, nil
}

func newEntryListCommand(configPath *string) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List entries of one kind in store order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := a.entries(cmd.Context())
			if err != nil {
				return err
			}
			entries, err := svc.List(cmd.Context(), kind)
			if err != nil {
				return err
			}

			if asCSV {
				return journal.WriteEntries(cmd.OutOrStdout(), entries)
			}
			return entryTable(kind, entries).render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&asCSV, "csv", false, "write entries as CSV in the import format")
	return cmd
}

func entryTable(kind model.Kind, entries []model.Entry) *table {
	if kind.TwoSided() {
		t := newTable("ID", "DATE", "ACCOUNT", "DEBIT", "CREDIT", "REFERENCE", "DESCRIPTION").alignRight(3, 4)
		for _, e := range entries {
			t.add(e.ID, e.Date.Format(ledger.DateFormat), e.Account,
				money(e.Debit), money(e.Credit), e.Reference, e.Description)
		}
		return t
	}
	t := newTable("ID", "DATE", "ACCOUNT", "AMOUNT", "METHOD", "DESCRIPTION").alignRight(3)
	for _, e := range entries {
		t.add(e.ID, e.Date.Format(ledger.DateFormat), e.Account,
			money(e.Amount), e.PaymentMethod, e.Description)
	}
	return t
}

func newEntryRemoveCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <kind> <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := a.entries(cmd.Context())
			if err != nil {
				return err
			}
			if err := svc.Delete(cmd.Context(), kind, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s entry %s\n", kind, args[1])
			return nil
		},
	}
}

func newEntryImportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <kind> <file.csv>",
		Short: "Validate and record every row of a CSV file",
		Long: "Validate and record every row of a CSV file.\n\n" +
			"Columns: " + journal.Header + "\n" +
			"Nothing is recorded unless every row is valid.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := model.ParseKind(args[0])
			if err != nil {
				return err
			}
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[1], err)
			}
			defer f.Close()

			entries, err := journal.ReadEntries(f, kind)
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[1], err)
			}

			a, err := openApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := a.entries(cmd.Context())
			if err != nil {
				return err
			}
			created, err := svc.Import(cmd.Context(), kind, entries)
			if err != nil {
				return fmt.Errorf("importing %s: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s entries from %s\n", len(created), kind, args[1])
			return nil
		},
	}
}
