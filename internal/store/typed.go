package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// All decodes every document in a collection into T.
func All[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	docs, err := s.GetAll(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", collection, err)
	}
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		v, err := decode[T](d)
		if err != nil {
			return nil, fmt.Errorf("decoding %s/%s: %w", collection, d.ID, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Get decodes a single document into T.
func Get[T any](ctx context.Context, s Store, collection, id string) (T, error) {
	var zero T
	d, err := s.GetByID(ctx, collection, id)
	if err != nil {
		return zero, err
	}
	return decode[T](d)
}

// Insert encodes v, stores it as a new document and returns the stored value
// with its generated id.
func Insert[T any](ctx context.Context, s Store, collection string, v T) (T, error) {
	var zero T
	data, err := json.Marshal(v)
	if err != nil {
		return zero, fmt.Errorf("encoding %s document: %w", collection, err)
	}
	d, err := s.Create(ctx, collection, data)
	if err != nil {
		return zero, err
	}
	return decode[T](d)
}

// Patch encodes patch as a merge patch, applies it and returns the result.
func Patch[T any](ctx context.Context, s Store, collection, id string, patch any) (T, error) {
	var zero T
	data, err := json.Marshal(patch)
	if err != nil {
		return zero, fmt.Errorf("encoding %s patch: %w", collection, err)
	}
	d, err := s.Update(ctx, collection, id, data)
	if err != nil {
		return zero, err
	}
	return decode[T](d)
}

func decode[T any](d Document) (T, error) {
	var v T
	if err := json.Unmarshal(d.Data, &v); err != nil {
		return v, err
	}
	return v, nil
}
