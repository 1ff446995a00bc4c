package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/bursar/internal/store"
	"github.com/cleared-dev/bursar/internal/store/storetest"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "bursar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return openTemp(t)
	})
}

func TestReopenKeepsDocuments(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bursar.db")

	s, err := Open(ctx, path)
	require.NoError(t, err)
	created, err := store.Insert(ctx, s, "incomeEntries", map[string]any{"amount": "200"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	// Migrations are already applied; reopening must not fail.
	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	got, err := store.Get[map[string]any](ctx, s, "incomeEntries", created["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "200", got["amount"])
}
