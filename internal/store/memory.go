package store

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Store backed by maps.
type Memory struct {
	mu    sync.RWMutex
	colls map[string]*collection
}

type collection struct {
	order []string
	docs  map[string]json.RawMessage
}

// NewMemory creates an empty Memory store.
func NewMemory() *Memory {
	return &Memory{colls: make(map[string]*collection)}
}

func (m *Memory) GetAll(ctx context.Context, name string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.colls[name]
	if !ok {
		return nil, nil
	}
	docs := make([]Document, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, Document{ID: id, Data: slices.Clone(c.docs[id])})
	}
	return docs, nil
}

func (m *Memory) GetByID(ctx context.Context, name, id string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.colls[name]
	if !ok {
		return Document{}, NotFound(name, id)
	}
	data, ok := c.docs[id]
	if !ok {
		return Document{}, NotFound(name, id)
	}
	return Document{ID: id, Data: slices.Clone(data)}, nil
}

func (m *Memory) Create(ctx context.Context, name string, data json.RawMessage) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	id := uuid.NewString()
	stored, err := WithID(data, id)
	if err != nil {
		return Document{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.colls[name]
	if !ok {
		c = &collection{docs: make(map[string]json.RawMessage)}
		m.colls[name] = c
	}
	c.order = append(c.order, id)
	c.docs[id] = stored
	return Document{ID: id, Data: slices.Clone(stored)}, nil
}

func (m *Memory) Update(ctx context.Context, name, id string, patch json.RawMessage) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.colls[name]
	if !ok {
		return Document{}, NotFound(name, id)
	}
	data, ok := c.docs[id]
	if !ok {
		return Document{}, NotFound(name, id)
	}
	merged, err := Merge(data, patch)
	if err != nil {
		return Document{}, err
	}
	c.docs[id] = merged
	return Document{ID: id, Data: slices.Clone(merged)}, nil
}

func (m *Memory) Delete(ctx context.Context, name, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.colls[name]
	if !ok {
		return NotFound(name, id)
	}
	if _, ok := c.docs[id]; !ok {
		return NotFound(name, id)
	}
	delete(c.docs, id)
	c.order = slices.DeleteFunc(c.order, func(s string) bool { return s == id })
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
