package ledger

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/cleared-dev/bursar/internal/accounts"
	"github.com/cleared-dev/bursar/internal/journal"
	"github.com/cleared-dev/bursar/internal/model"
	"github.com/cleared-dev/bursar/internal/store"
)

// Reporter reads entry collections from a store and derives reports.
// It holds no state between calls and is safe for concurrent use.
type Reporter struct {
	store store.Store
	log   *zap.Logger
}

// NewReporter creates a Reporter over s.
func NewReporter(s store.Store, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{store: s, log: log}
}

// fetch reads the given kinds. Any failed read fails the whole fetch.
func (r *Reporter) fetch(ctx context.Context, kinds ...model.Kind) (Collections, error) {
	c := make(Collections, len(kinds))
	for _, kind := range kinds {
		entries, err := journal.ListKind(ctx, r.store, kind)
		if err != nil {
			return nil, fmt.Errorf("reading %s entries: %w", kind, err)
		}
		c[kind] = entries
	}
	return c, nil
}

func (r *Reporter) lines(ctx context.Context, q Query) ([]model.LedgerLine, error) {
	c, err := r.fetch(ctx, model.Kinds...)
	if err != nil {
		return nil, err
	}
	return Merge(c, q), nil
}

// BuildLedger returns the merged, date-ordered ledger with running balances.
func (r *Reporter) BuildLedger(ctx context.Context, q Query) ([]model.LedgerLine, error) {
	started := time.Now()
	lines, err := r.lines(ctx, q)
	if err != nil {
		return nil, err
	}
	out := WithRunningBalance(lines)
	r.log.Debug("ledger built",
		zap.String("account", q.Account),
		zap.String("period", Period(q.Start, q.End)),
		zap.Int("lines", len(out)),
		zap.Duration("took", time.Since(started)),
	)
	return out, nil
}

// TrialBalance aggregates the unfiltered ledger for [start, end] per account
// in the chart.
func (r *Reporter) TrialBalance(ctx context.Context, start, end *time.Time) ([]model.TrialBalanceRow, error) {
	started := time.Now()
	chart, err := accounts.Load(ctx, r.store)
	if err != nil {
		return nil, err
	}
	lines, err := r.lines(ctx, Query{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	rows := TrialBalance(chart.All(), lines)
	r.log.Debug("trial balance built",
		zap.String("period", Period(start, end)),
		zap.Int("rows", len(rows)),
		zap.Duration("took", time.Since(started)),
	)
	return rows, nil
}

// IncomeStatement totals income and expense entries for [start, end]. It
// reads those two collections directly and does not go through the ledger.
func (r *Reporter) IncomeStatement(ctx context.Context, start, end *time.Time) (model.IncomeStatement, error) {
	c, err := r.fetch(ctx, model.KindIncome, model.KindExpense)
	if err != nil {
		return model.IncomeStatement{}, err
	}
	stmt := Summarize(c[model.KindIncome], c[model.KindExpense], start, end)
	r.log.Debug("income statement built",
		zap.String("period", stmt.Period),
		zap.String("net_income", stmt.NetIncome.StringFixed(2)),
	)
	return stmt, nil
}
