package journal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/bursar/internal/model"
	"github.com/cleared-dev/bursar/internal/store"
)

func newTestService(t *testing.T, accounts AccountChecker) (*Service, store.Store) {
	t.Helper()
	s := store.NewMemory()
	return NewService(s, accounts, nil), s
}

func TestCreate_StoresInKindCollection(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, oneSided(model.KindIncome, "4010", "200.00"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.KindIncome, created.Kind)
	assert.True(t, created.Amount.Equal(dec("200")))

	docs, err := s.GetAll(ctx, "incomeEntries")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, created.ID, docs[0].ID)

	other, err := s.GetAll(ctx, "expenseEntries")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCreate_ValidationFailureWritesNothing(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, twoSided(model.KindDebtor, "100", "100"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBothAmountsSet)

	docs, err := s.GetAll(ctx, "debtorEntries")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestCreate_UnknownAccount(t *testing.T) {
	svc, s := newTestService(t, newMockAccounts("4010"))
	ctx := context.Background()

	_, err := svc.Create(ctx, oneSided(model.KindExpense, "5999", "10"))
	assert.ErrorIs(t, err, ErrUnknownAccount)

	docs, err := s.GetAll(ctx, "expenseEntries")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestUpdate_ValidatesMergedEntry(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, twoSided(model.KindJournal, "100", "0"))
	require.NoError(t, err)

	// Setting credit without clearing debit yields both sides.
	credit := dec("100")
	_, err = svc.Update(ctx, model.KindJournal, created.ID, model.Patch{Credit: &credit})
	assert.ErrorIs(t, err, ErrBothAmountsSet)

	got, err := svc.Get(ctx, model.KindJournal, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Debit.Equal(dec("100")), "failed update must not be applied")
	assert.True(t, got.Credit.IsZero())

	zero := dec("0")
	updated, err := svc.Update(ctx, model.KindJournal, created.ID, model.Patch{Debit: &zero, Credit: &credit})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.Debit.IsZero())
	assert.True(t, updated.Credit.Equal(credit))
}

func TestUpdate_ClearsField(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	e := oneSided(model.KindIncome, "4010", "50")
	e.Notes = "paid late"
	created, err := svc.Create(ctx, e)
	require.NoError(t, err)

	empty := ""
	_, err = svc.Update(ctx, model.KindIncome, created.ID, model.Patch{Notes: &empty})
	require.NoError(t, err)

	got, err := svc.Get(ctx, model.KindIncome, created.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Notes)
	assert.Equal(t, "4010", got.Account)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _ := newTestService(t, nil)
	notes := "x"
	_, err := svc.Update(context.Background(), model.KindIncome, "missing", model.Patch{Notes: &notes})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, oneSided(model.KindExpense, "5010", "10"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, model.KindExpense, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, model.KindExpense, created.ID), store.ErrNotFound)

	list, err := svc.List(ctx, model.KindExpense)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUnknownKind(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.List(ctx, "Payroll")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.ErrorIs(t, svc.Delete(ctx, "Payroll", "x"), ErrUnknownKind)
	_, err = svc.Create(ctx, model.Entry{Kind: "Payroll"})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestList_StampsKind(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	// A document written without a kind member still lists as its collection's kind.
	_, err := store.Insert(ctx, s, "creditorEntries", map[string]any{"description": "supplier", "creditAmount": "40"})
	require.NoError(t, err)

	list, err := svc.List(ctx, model.KindCreditor)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, model.KindCreditor, list[0].Kind)
	assert.True(t, list[0].Credit.Equal(dec("40")))
}

func TestImport_AllOrNothingValidation(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	entries := []model.Entry{
		oneSided(model.KindIncome, "4010", "200"),
		oneSided(model.KindIncome, "4010", "0"),
	}
	_, err := svc.Import(ctx, model.KindIncome, entries)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Contains(t, err.Error(), "entry 2")

	list, err := svc.List(ctx, model.KindIncome)
	require.NoError(t, err)
	assert.Empty(t, list)

	entries[1].Amount = dec("300")
	stored, err := svc.Import(ctx, model.KindIncome, entries)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}
