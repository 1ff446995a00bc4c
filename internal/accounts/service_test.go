package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/bursar/internal/model"
	"github.com/cleared-dev/bursar/internal/store"
)

func TestNewService(t *testing.T) {
	chart := DefaultChart("boarding")
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart("boarding"))

	acct, ok := svc.Get("4010")
	assert.True(t, ok)
	assert.Equal(t, "Tuition Fees", acct.Name)

	_, ok = svc.Get("9999")
	assert.False(t, ok)

	assert.True(t, svc.Exists("1010"))
	assert.False(t, svc.Exists("9999"))
}

func TestByType(t *testing.T) {
	svc := NewService(DefaultChart("boarding"))

	assets := svc.ByType(model.AccountTypeAsset)
	assert.Len(t, assets, 3)
	for _, a := range assets {
		assert.Equal(t, model.AccountTypeAsset, a.Type)
	}

	assert.Len(t, svc.ByType(model.AccountTypeRevenue), 4)
	assert.Len(t, svc.ByType(model.AccountTypeExpense), 5)
}

func TestSeedAndLoad(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory()
	chart := DefaultChart("day")

	n, err := Seed(ctx, s, chart)
	require.NoError(t, err)
	assert.Equal(t, len(chart), n)

	svc, err := Load(ctx, s)
	require.NoError(t, err)
	require.Len(t, svc.All(), len(chart))
	for i, a := range svc.All() {
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, chart[i].Code, a.Code, "store order follows seed order")
	}

	// Seeding a larger chart only adds the missing codes.
	n, err = Seed(ctx, s, DefaultChart("boarding"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	svc, err = Load(ctx, s)
	require.NoError(t, err)
	assert.Len(t, svc.All(), len(DefaultChart("boarding")))
}

func TestLoad_Empty(t *testing.T) {
	svc, err := Load(context.Background(), store.NewMemory())
	require.NoError(t, err)
	assert.Empty(t, svc.All())
	assert.False(t, svc.Exists("1010"))
}
