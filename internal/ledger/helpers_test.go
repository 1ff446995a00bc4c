package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bursar/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func income(d time.Time, account, amount string) model.Entry {
	return model.Entry{Kind: model.KindIncome, Date: d, Account: account, Description: "fees", Amount: dec(amount)}
}

func expense(d time.Time, account, amount string) model.Entry {
	return model.Entry{Kind: model.KindExpense, Date: d, Account: account, Description: "supplies", Amount: dec(amount)}
}

func twoSided(kind model.Kind, d time.Time, account, debit, credit string) model.Entry {
	return model.Entry{Kind: kind, Date: d, Account: account, Description: "posting", Debit: dec(debit), Credit: dec(credit)}
}

func balances(lines []model.LedgerLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Balance.String()
	}
	return out
}
