// Package storetest holds behaviour checks shared by every store.Store
// implementation.
package storetest

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/bursar/internal/store"
)

type doc struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// Run exercises s against the Store contract. s must start empty.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("CreateAssignsID", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		got, err := store.Insert(ctx, s, "things", doc{Name: "a", Amount: 1})
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
		assert.Equal(t, "a", got.Name)

		again, err := store.Get[doc](ctx, s, "things", got.ID)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	})

	t.Run("GetAllInsertionOrder", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		for _, name := range []string{"c", "a", "b"} {
			_, err := store.Insert(ctx, s, "things", doc{Name: name})
			require.NoError(t, err)
		}
		_, err := store.Insert(ctx, s, "other", doc{Name: "x"})
		require.NoError(t, err)

		all, err := store.All[doc](ctx, s, "things")
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "c", all[0].Name)
		assert.Equal(t, "a", all[1].Name)
		assert.Equal(t, "b", all[2].Name)
	})

	t.Run("GetAllEmptyCollection", func(t *testing.T) {
		s := newStore(t)
		docs, err := s.GetAll(context.Background(), "nothing")
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("UpdateMergesPatch", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		created, err := store.Insert(ctx, s, "things", doc{Name: "a", Amount: 1, Notes: "n"})
		require.NoError(t, err)

		got, err := store.Patch[doc](ctx, s, "things", created.ID, map[string]any{"amount": 5, "notes": nil, "id": "hijack"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "a", got.Name)
		assert.Equal(t, 5, got.Amount)
		assert.Empty(t, got.Notes)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Update(context.Background(), "things", "nope", json.RawMessage(`{"amount":1}`))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		a, err := store.Insert(ctx, s, "things", doc{Name: "a"})
		require.NoError(t, err)
		b, err := store.Insert(ctx, s, "things", doc{Name: "b"})
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, "things", a.ID))

		_, err = s.GetByID(ctx, "things", a.ID)
		assert.ErrorIs(t, err, store.ErrNotFound)

		all, err := store.All[doc](ctx, s, "things")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, b.ID, all[0].ID)

		assert.ErrorIs(t, s.Delete(ctx, "things", a.ID), store.ErrNotFound)
	})

	t.Run("CreateRejectsNonObject", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Create(context.Background(), "things", json.RawMessage(`[1,2]`))
		assert.Error(t, err)
	})

	t.Run("ConcurrentCreates", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := store.Insert(ctx, s, "things", doc{Amount: n})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		all, err := store.All[doc](ctx, s, "things")
		require.NoError(t, err)
		assert.Len(t, all, 20)
	})
}
