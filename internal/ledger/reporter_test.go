package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/bursar/internal/accounts"
	"github.com/cleared-dev/bursar/internal/journal"
	"github.com/cleared-dev/bursar/internal/model"
	"github.com/cleared-dev/bursar/internal/store"
)

var errUnavailable = errors.New("storage unavailable")

// failingStore fails GetAll for the named collections.
type failingStore struct {
	store.Store
	fail map[string]bool
}

func (f *failingStore) GetAll(ctx context.Context, collection string) ([]store.Document, error) {
	if f.fail[collection] {
		return nil, errUnavailable
	}
	return f.Store.GetAll(ctx, collection)
}

func seed(t *testing.T, s store.Store, entries ...model.Entry) {
	t.Helper()
	ctx := context.Background()
	_, err := accounts.Seed(ctx, s, testChart)
	require.NoError(t, err)
	svc := journal.NewService(s, nil, nil)
	for _, e := range entries {
		_, err := svc.Create(ctx, e)
		require.NoError(t, err)
	}
}

func januaryStore(t *testing.T) store.Store {
	t.Helper()
	s := store.NewMemory()
	in, out := januaryFixture()
	seed(t, s, append(in, out...)...)
	seed(t, s,
		twoSided(model.KindDebtor, date(2024, 1, 2), "1100", "1000", "0"),
		twoSided(model.KindCreditor, date(2024, 1, 12), "2010", "0", "150"),
		twoSided(model.KindJournal, date(2023, 12, 31), "1010", "25", "0"),
	)
	return s
}

func TestReporter_BuildLedger(t *testing.T) {
	r := NewReporter(januaryStore(t), nil)
	lines, err := r.BuildLedger(context.Background(), Query{Start: datePtr(2024, 1, 1), End: datePtr(2024, 1, 31)})
	require.NoError(t, err)
	require.Len(t, lines, 7)

	for i := 1; i < len(lines); i++ {
		assert.False(t, lines[i].Date.Before(lines[i-1].Date), "line %d out of order", i)
	}
	assert.Equal(t, model.KindDebtor, lines[0].Source)
	assert.Equal(t, "1000", lines[0].Balance.String())
	for _, l := range lines {
		assert.NotEmpty(t, l.EntryID)
	}

	// 1000 - 200 (inc) - 300 (inc) - 500 (inc) + 100 (exp) + 150 (exp) - 150 (cred)
	last := lines[len(lines)-1]
	assert.Equal(t, "100", last.Balance.String())
}

func TestReporter_BuildLedger_AccountFilter(t *testing.T) {
	r := NewReporter(januaryStore(t), nil)
	lines, err := r.BuildLedger(context.Background(), Query{Account: "4010"})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"-200", "-500"}, balances(lines))
}

func TestReporter_IncomeStatement(t *testing.T) {
	r := NewReporter(januaryStore(t), nil)
	stmt, err := r.IncomeStatement(context.Background(), datePtr(2024, 1, 1), datePtr(2024, 1, 31))
	require.NoError(t, err)
	assert.Equal(t, "1000", stmt.Income.String())
	assert.Equal(t, "250", stmt.Expenses.String())
	assert.Equal(t, "750", stmt.NetIncome.String())
}

func TestReporter_TrialBalance(t *testing.T) {
	r := NewReporter(januaryStore(t), nil)
	rows, err := r.TrialBalance(context.Background(), datePtr(2024, 1, 1), datePtr(2024, 1, 31))
	require.NoError(t, err)

	codes := make([]string, len(rows))
	for i, row := range rows {
		codes[i] = row.Code
	}
	// 1010 only has December activity and drops out of the January window.
	assert.Equal(t, []string{"1100", "2010", "4010"}, codes[:3])
	assert.NotContains(t, codes, "1010")
}

func TestReporter_Idempotent(t *testing.T) {
	r := NewReporter(januaryStore(t), nil)
	ctx := context.Background()
	q := Query{Start: datePtr(2024, 1, 1)}

	a, err := r.BuildLedger(ctx, q)
	require.NoError(t, err)
	b, err := r.BuildLedger(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	ta, err := r.TrialBalance(ctx, nil, nil)
	require.NoError(t, err)
	tb, err := r.TrialBalance(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, ta, tb)

	sa, err := r.IncomeStatement(ctx, nil, nil)
	require.NoError(t, err)
	sb, err := r.IncomeStatement(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, sa, sb)
}

func TestReporter_ConcurrentReports(t *testing.T) {
	r := NewReporter(januaryStore(t), nil)
	ctx := context.Background()

	want, err := r.IncomeStatement(ctx, nil, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := r.IncomeStatement(ctx, nil, nil)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
			_, err = r.BuildLedger(ctx, Query{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}

func TestReporter_FetchFailureFailsWholeReport(t *testing.T) {
	s := &failingStore{Store: januaryStore(t), fail: map[string]bool{"creditorEntries": true}}
	r := NewReporter(s, nil)
	ctx := context.Background()

	lines, err := r.BuildLedger(ctx, Query{})
	assert.ErrorIs(t, err, errUnavailable)
	assert.Nil(t, lines)

	rows, err := r.TrialBalance(ctx, nil, nil)
	assert.ErrorIs(t, err, errUnavailable)
	assert.Nil(t, rows)

	// The income statement never reads the creditor stream.
	stmt, err := r.IncomeStatement(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "1000", stmt.Income.String())
}

func TestReporter_IncomeStatementFailure(t *testing.T) {
	s := &failingStore{Store: januaryStore(t), fail: map[string]bool{"expenseEntries": true}}
	_, err := NewReporter(s, nil).IncomeStatement(context.Background(), nil, nil)
	assert.ErrorIs(t, err, errUnavailable)
}

func TestReporter_ChartFailure(t *testing.T) {
	s := &failingStore{Store: januaryStore(t), fail: map[string]bool{model.CollectionAccounts: true}}
	_, err := NewReporter(s, nil).TrialBalance(context.Background(), nil, nil)
	assert.ErrorIs(t, err, errUnavailable)
}
