package journal

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cleared-dev/bursar/internal/model"
	"github.com/cleared-dev/bursar/internal/store"
)

// Service validates entries and persists them through a store.
// Nothing reaches the store until the entry passes validation.
type Service struct {
	store    store.Store
	accounts AccountChecker
	log      *zap.Logger
}

// NewService creates a journal Service. accounts may be nil, in which case
// account codes are not checked against the chart.
func NewService(s store.Store, accounts AccountChecker, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: s, accounts: accounts, log: log}
}

func (s *Service) validate(e model.Entry) error {
	if err := Validate(e); err != nil {
		return err
	}
	return checkAccount(e, s.accounts)
}

// Create validates e and stores it in its kind's collection.
func (s *Service) Create(ctx context.Context, e model.Entry) (model.Entry, error) {
	if err := s.validate(e); err != nil {
		return model.Entry{}, err
	}
	e.ID = ""
	created, err := store.Insert(ctx, s.store, e.Kind.Collection(), e)
	if err != nil {
		return model.Entry{}, fmt.Errorf("creating %s entry: %w", e.Kind, err)
	}
	created.Kind = e.Kind
	s.log.Info("entry created",
		zap.String("kind", string(e.Kind)),
		zap.String("id", created.ID),
		zap.Time("date", e.Date),
		zap.String("account", e.Account),
	)
	return created, nil
}

// Update applies p to the stored entry, validates the result and writes it.
func (s *Service) Update(ctx context.Context, kind model.Kind, id string, p model.Patch) (model.Entry, error) {
	current, err := s.Get(ctx, kind, id)
	if err != nil {
		return model.Entry{}, err
	}
	next := p.Apply(current)
	if err := s.validate(next); err != nil {
		return model.Entry{}, err
	}
	// Only the fields set in p are sent, so a cleared string field is
	// written as "" rather than dropped by omitempty.
	updated, err := store.Patch[model.Entry](ctx, s.store, kind.Collection(), id, p)
	if err != nil {
		return model.Entry{}, fmt.Errorf("updating %s entry %s: %w", kind, id, err)
	}
	updated.Kind = kind
	s.log.Info("entry updated", zap.String("kind", string(kind)), zap.String("id", id))
	return updated, nil
}

// Delete removes an entry.
func (s *Service) Delete(ctx context.Context, kind model.Kind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, kind.Collection(), id); err != nil {
		return fmt.Errorf("deleting %s entry %s: %w", kind, id, err)
	}
	s.log.Info("entry deleted", zap.String("kind", string(kind)), zap.String("id", id))
	return nil
}

// Get returns a single entry.
func (s *Service) Get(ctx context.Context, kind model.Kind, id string) (model.Entry, error) {
	if err := checkKind(kind); err != nil {
		return model.Entry{}, err
	}
	e, err := store.Get[model.Entry](ctx, s.store, kind.Collection(), id)
	if err != nil {
		return model.Entry{}, fmt.Errorf("reading %s entry %s: %w", kind, id, err)
	}
	e.Kind = kind
	return e, nil
}

// List returns every entry of a kind in store order.
func (s *Service) List(ctx context.Context, kind model.Kind) ([]model.Entry, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return ListKind(ctx, s.store, kind)
}

// Import validates every entry first and only then stores them, so a bad
// row leaves the collection untouched. Returns the stored entries.
func (s *Service) Import(ctx context.Context, kind model.Kind, entries []model.Entry) ([]model.Entry, error) {
	for i := range entries {
		entries[i].Kind = kind
		if err := s.validate(entries[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
	}
	out := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		created, err := s.Create(ctx, e)
		if err != nil {
			return out, err
		}
		out = append(out, created)
	}
	return out, nil
}

// ListKind reads a kind's collection, stamping each entry with the kind.
func ListKind(ctx context.Context, s store.Store, kind model.Kind) ([]model.Entry, error) {
	entries, err := store.All[model.Entry](ctx, s, kind.Collection())
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Kind = kind
	}
	return entries, nil
}

func checkKind(kind model.Kind) error {
	if kind.Collection() == "" {
		return ValidationError{Code: CodeUnknownKind, Kind: kind, Field: "kind", Message: fmt.Sprintf("unknown entry kind %q", kind)}
	}
	return nil
}
