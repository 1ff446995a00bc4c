package accounts

import (
	"context"
	"fmt"

	"github.com/cleared-dev/bursar/internal/model"
	"github.com/cleared-dev/bursar/internal/store"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode}
}

// Load reads the chart of accounts from the store.
func Load(ctx context.Context, s store.Store) (*Service, error) {
	accts, err := store.All[model.Account](ctx, s, model.CollectionAccounts)
	if err != nil {
		return nil, fmt.Errorf("loading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// Seed stores every account whose code is not already in the chart and
// returns how many were added.
func Seed(ctx context.Context, s store.Store, chart []model.Account) (int, error) {
	existing, err := Load(ctx, s)
	if err != nil {
		return 0, err
	}
	added := 0
	for _, a := range chart {
		if existing.Exists(a.Code) {
			continue
		}
		a.ID = ""
		if _, err := store.Insert(ctx, s, model.CollectionAccounts, a); err != nil {
			return added, fmt.Errorf("storing account %s: %w", a.Code, err)
		}
		existing.byCode[a.Code] = a
		added++
	}
	return added, nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}
