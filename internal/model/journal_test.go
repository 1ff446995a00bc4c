package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"Debtor", KindDebtor},
		{"creditor", KindCreditor},
		{"generalJournal", KindJournal},
		{"journal", KindJournal},
		{"incomeEntries", KindIncome},
		{"EXPENSE", KindExpense},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.input)
		require.NoError(t, err, "input: %s", tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("payroll")
	assert.Error(t, err)
}

func TestKindCollection(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Kinds {
		c := k.Collection()
		assert.NotEmpty(t, c, "kind %s has no collection", k)
		assert.False(t, seen[c], "collection %s reused", c)
		seen[c] = true
	}
	assert.Empty(t, Kind("Other").Collection())
}

func TestKindTwoSided(t *testing.T) {
	assert.True(t, KindDebtor.TwoSided())
	assert.True(t, KindCreditor.TwoSided())
	assert.True(t, KindJournal.TwoSided())
	assert.False(t, KindIncome.TwoSided())
	assert.False(t, KindExpense.TwoSided())
}

func TestPatchApply(t *testing.T) {
	orig := Entry{
		Kind:        KindIncome,
		Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Account:     "4010",
		Description: "Term fees",
		Amount:      decimal.NewFromInt(200),
	}
	amt := decimal.NewFromInt(250)
	notes := "adjusted"
	got := Patch{Amount: &amt, Notes: &notes}.Apply(orig)

	assert.True(t, got.Amount.Equal(amt))
	assert.Equal(t, "adjusted", got.Notes)
	assert.Equal(t, orig.Account, got.Account)
	assert.True(t, orig.Amount.Equal(decimal.NewFromInt(200)), "original must be untouched")
}
