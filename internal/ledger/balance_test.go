package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/bursar/internal/model"
)

func TestWithRunningBalance(t *testing.T) {
	lines := []model.LedgerLine{
		{Date: date(2024, 1, 1), Debit: dec("100"), Credit: dec("0")},
		{Date: date(2024, 1, 2), Debit: dec("50"), Credit: dec("30")},
	}
	got := WithRunningBalance(lines)
	assert.Equal(t, []string{"100", "120"}, balances(got))
}

func TestWithRunningBalance_GoesNegative(t *testing.T) {
	lines := []model.LedgerLine{
		{Debit: dec("0"), Credit: dec("200")},
		{Debit: dec("50.25"), Credit: dec("0")},
		{Debit: dec("0"), Credit: dec("0.25")},
	}
	assert.Equal(t, []string{"-200", "-149.75", "-150"}, balances(WithRunningBalance(lines)))
}

func TestWithRunningBalance_DoesNotMutateInput(t *testing.T) {
	lines := []model.LedgerLine{
		{Debit: dec("10"), Credit: dec("0"), Balance: dec("999")},
	}
	got := WithRunningBalance(lines)
	require.Len(t, got, 1)
	assert.Equal(t, "10", got[0].Balance.String())
	assert.Equal(t, "999", lines[0].Balance.String())
}

func TestWithRunningBalance_Empty(t *testing.T) {
	assert.Empty(t, WithRunningBalance(nil))
}

func TestWithRunningBalance_StartsFromZeroPerWindow(t *testing.T) {
	c := Collections{
		model.KindExpense: {
			expense(date(2024, 1, 10), "5010", "100"),
			expense(date(2024, 2, 10), "5010", "40"),
		},
	}
	feb := WithRunningBalance(Merge(c, Query{Start: datePtr(2024, 2, 1)}))
	require.Len(t, feb, 1)
	assert.Equal(t, "40", feb[0].Balance.String(), "January activity is not carried forward")
}
