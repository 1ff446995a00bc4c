// Package store defines the generic collection-keyed CRUD collaborator that
// entry and account data is persisted through.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a document id does not exist in a collection.
var ErrNotFound = errors.New("document not found")

// Document is a stored JSON object. The "id" member of Data always equals ID.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Store is a collection-keyed document store.
//
// GetAll returns the collection as of a single point in time, in insertion
// order. Implementations must be safe for concurrent use.
type Store interface {
	GetAll(ctx context.Context, collection string) ([]Document, error)
	GetByID(ctx context.Context, collection, id string) (Document, error)
	Create(ctx context.Context, collection string, data json.RawMessage) (Document, error)
	Update(ctx context.Context, collection, id string, patch json.RawMessage) (Document, error)
	Delete(ctx context.Context, collection, id string) error
	Close() error
}

// NotFound wraps ErrNotFound with the collection and id.
func NotFound(collection, id string) error {
	return fmt.Errorf("%s/%s: %w", collection, id, ErrNotFound)
}

// WithID returns data with its "id" member set to id.
func WithID(data json.RawMessage, id string) (json.RawMessage, error) {
	obj, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	obj["id"] = raw
	return json.Marshal(obj)
}

// Merge applies a shallow JSON merge patch to doc. A null member in patch
// removes the member. The "id" member cannot be changed.
func Merge(doc, patch json.RawMessage) (json.RawMessage, error) {
	base, err := decodeObject(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	changes, err := decodeObject(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	for k, v := range changes {
		if k == "id" {
			continue
		}
		if string(v) == "null" {
			delete(base, k)
			continue
		}
		base[k] = v
	}
	return json.Marshal(base)
}

func decodeObject(data json.RawMessage) (map[string]json.RawMessage, error) {
	obj := make(map[string]json.RawMessage)
	if len(data) == 0 {
		return obj, nil
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("document must be a JSON object: %w", err)
	}
	if obj == nil {
		obj = make(map[string]json.RawMessage)
	}
	return obj, nil
}
