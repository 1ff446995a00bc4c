package store_test

import (
	"testing"

	"github.com/cleared-dev/bursar/internal/store"
	"github.com/cleared-dev/bursar/internal/store/storetest"
)

func TestMemory(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return store.NewMemory()
	})
}
