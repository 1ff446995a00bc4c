package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bursar/internal/model"
)

// TrialBalance sums debit and credit per account across lines.
//
// Rows follow chart order. Accounts with no debit and no credit in lines are
// omitted, and lines naming an account outside the chart contribute to no
// row. Debits are not required to equal credits: one-sided income and
// expense lines have no offsetting side.
func TrialBalance(chart []model.Account, lines []model.LedgerLine) []model.TrialBalanceRow {
	type sums struct{ debit, credit decimal.Decimal }
	byAccount := make(map[string]*sums, len(chart))
	for _, a := range chart {
		byAccount[a.Code] = &sums{debit: decimal.Zero, credit: decimal.Zero}
	}
	for _, l := range lines {
		s, ok := byAccount[l.Account]
		if !ok {
			continue
		}
		s.debit = s.debit.Add(l.Debit)
		s.credit = s.credit.Add(l.Credit)
	}

	var rows []model.TrialBalanceRow
	seen := make(map[string]bool, len(chart))
	for _, a := range chart {
		if seen[a.Code] {
			continue
		}
		seen[a.Code] = true
		s := byAccount[a.Code]
		if s.debit.IsZero() && s.credit.IsZero() {
			continue
		}
		rows = append(rows, model.TrialBalanceRow{
			Code:   a.Code,
			Name:   a.Name,
			Type:   a.Type,
			Debit:  s.debit,
			Credit: s.credit,
		})
	}
	return rows
}

// TrialTotals are the column sums of a trial balance.
type TrialTotals struct {
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
	Balanced bool            `json:"balanced"`
}

// Totals sums the rows. Balanced is informational only.
func Totals(rows []model.TrialBalanceRow) TrialTotals {
	t := TrialTotals{Debit: decimal.Zero, Credit: decimal.Zero}
	for _, r := range rows {
		t.Debit = t.Debit.Add(r.Debit)
		t.Credit = t.Credit.Add(r.Credit)
	}
	t.Balanced = t.Debit.Equal(t.Credit)
	return t
}
