package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bursar/internal/model"
)

// Summarize totals income and expense entries dated within [start, end].
func Summarize(income, expenses []model.Entry, start, end *time.Time) model.IncomeStatement {
	in := sumAmounts(income, start, end)
	out := sumAmounts(expenses, start, end)
	return model.IncomeStatement{
		Income:    in,
		Expenses:  out,
		NetIncome: in.Sub(out),
		Period:    Period(start, end),
	}
}

func sumAmounts(entries []model.Entry, start, end *time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if inRange(e.Date, start, end) {
			total = total.Add(e.Amount)
		}
	}
	return total
}
