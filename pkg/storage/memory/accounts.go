package memory

import (
	"context"
	"fmt"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// CreateAccount stores a new account. New accounts start active.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	a := *account
	a.Id = s.accounts.nextID()
	a.AccountNumber = fmt.Sprintf("%010d", 1000000000+s.accounts.seq)
	if a.Status == "" {
		a.Status = models.AccountActive
	}
	a.CreatedAt = now
	a.UpdatedAt = now
	a.ClosedAt = nil
	s.accounts.insert(a.Id, a)

	return &a, nil
}

// GetAccount retrieves an account by its ID.
func (s *Store) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.accounts.get(id)
	if !ok {
		return nil, notFound("account", id)
	}
	out := *a
	return &out, nil
}

// ListAccounts retrieves accounts matching the filter in creation order.
func (s *Store) ListAccounts(ctx context.Context, filter storage.AccountFilter) ([]models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.accounts.collect(filter.Match), nil
}

// UpdateAccount merges the patch over the stored account.
func (s *Store) UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accounts.get(id)
	if !ok {
		return nil, notFound("account", id)
	}
	now := s.clock()
	if patch.Status != nil {
		transition(&a.Status, *patch.Status, a, accountTransitions, now)
	}
	a.UpdatedAt = now

	out := *a
	return &out, nil
}
