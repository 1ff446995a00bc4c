package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached wraps a Store with a read-through cache of whole collections.
// Any write through Cached drops the cached copy of that collection; writes
// that bypass it are visible only after the TTL expires.
type Cached struct {
	Store
	cache *cache.Cache

	mu    sync.Mutex
	gen   map[string]uint64 // bumped on every write to the collection
	epoch uint64            // bumped on Flush
}

// NewCached wraps s, keeping GetAll results for ttl.
func NewCached(s Store, ttl time.Duration) *Cached {
	return &Cached{Store: s, cache: cache.New(ttl, 2*ttl), gen: make(map[string]uint64)}
}

func (c *Cached) GetAll(ctx context.Context, collection string) ([]Document, error) {
	if v, ok := c.cache.Get(collection); ok {
		return slices.Clone(v.([]Document)), nil
	}

	c.mu.Lock()
	gen, epoch := c.gen[collection], c.epoch
	c.mu.Unlock()

	docs, err := c.Store.GetAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	// A write that landed during the read may not be in docs.
	c.mu.Lock()
	if c.gen[collection] == gen && c.epoch == epoch {
		c.cache.Set(collection, slices.Clone(docs), cache.DefaultExpiration)
	}
	c.mu.Unlock()
	return docs, nil
}

func (c *Cached) invalidate(collection string) {
	c.mu.Lock()
	c.gen[collection]++
	c.cache.Delete(collection)
	c.mu.Unlock()
}

func (c *Cached) Create(ctx context.Context, collection string, data json.RawMessage) (Document, error) {
	defer c.invalidate(collection)
	return c.Store.Create(ctx, collection, data)
}

func (c *Cached) Update(ctx context.Context, collection, id string, patch json.RawMessage) (Document, error) {
	defer c.invalidate(collection)
	return c.Store.Update(ctx, collection, id, patch)
}

func (c *Cached) Delete(ctx context.Context, collection, id string) error {
	defer c.invalidate(collection)
	return c.Store.Delete(ctx, collection, id)
}

// Flush drops every cached collection.
func (c *Cached) Flush() {
	c.mu.Lock()
	c.epoch++
	c.cache.Flush()
	c.mu.Unlock()
}
