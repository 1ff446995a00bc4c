package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bursar/internal/model"
)

// WithRunningBalance returns a copy of lines with Balance set to the
// cumulative debit minus credit. lines must already be in date order.
// The balance always starts from zero; earlier periods are not carried in.
func WithRunningBalance(lines []model.LedgerLine) []model.LedgerLine {
	out := make([]model.LedgerLine, len(lines))
	balance := decimal.Zero
	for i, l := range lines {
		balance = balance.Add(l.Debit).Sub(l.Credit)
		l.Balance = balance
		out[i] = l
	}
	return out
}
