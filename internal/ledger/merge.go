package ledger

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/bursar/internal/model"
)

// Collections holds a snapshot of every entry stream, keyed by kind.
type Collections map[model.Kind][]model.Entry

// Line normalizes an entry of the given kind into ledger shape.
// Income credits its account and expense debits it; two-sided kinds carry
// their own debit and credit. Balance is left zero.
func Line(kind model.Kind, e model.Entry) model.LedgerLine {
	line := model.LedgerLine{
		Date:        e.Date,
		Account:     e.Account,
		Description: e.Description,
		Debit:       decimal.Zero,
		Credit:      decimal.Zero,
		Source:      kind,
		EntryID:     e.ID,
	}
	switch kind {
	case model.KindDebtor, model.KindCreditor, model.KindJournal:
		line.Debit = e.Debit
		line.Credit = e.Credit
	case model.KindIncome:
		line.Credit = e.Amount
	case model.KindExpense:
		line.Debit = e.Amount
	default:
		panic(fmt.Sprintf("ledger: unhandled entry kind %q", kind))
	}
	return line
}

// Merge builds the ordered ledger from a snapshot of the entry streams.
//
// Lines are sorted ascending by date. Lines sharing a date keep the order in
// which they were visited: streams in model.Kinds order, and within a stream
// the order the store returned them. Lines failing the account or date
// predicate are dropped; nothing else is.
func Merge(c Collections, q Query) []model.LedgerLine {
	var lines []model.LedgerLine
	for _, kind := range model.Kinds {
		for _, e := range c[kind] {
			if q.Account != "" && e.Account != q.Account {
				continue
			}
			if !inRange(e.Date, q.Start, q.End) {
				continue
			}
			lines = append(lines, Line(kind, e))
		}
	}
	slices.SortStableFunc(lines, func(a, b model.LedgerLine) int {
		return day(a.Date).Compare(day(b.Date))
	})
	return lines
}
