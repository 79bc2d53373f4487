package memory

import (
	"context"
	"fmt"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// CreateTransaction stores a new pending transaction, generating a reference when none is given.
func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	t := *tx
	t.Id = s.transactions.nextID()
	if t.Reference == "" {
		t.Reference = fmt.Sprintf("REF-%d-%03d", now.UnixMilli(), s.transactions.seq)
	}
	if t.Status == "" {
		t.Status = models.TransactionPending
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	t.ClearedAt = nil
	if t.Status == models.TransactionCleared {
		setOnce(&t.ClearedAt, now)
	}
	s.transactions.insert(t.Id, t)

	return &t, nil
}

func (s *Store) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions.get(id)
	if !ok {
		return nil, notFound("transaction", id)
	}
	out := *t
	return &out, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter storage.TransactionFilter) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transactions.collect(filter.Match), nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.transactions.get(id)
	if !ok {
		return nil, notFound("transaction", id)
	}
	now := s.clock()
	if patch.Status != nil {
		transition(&t.Status, *patch.Status, t, transactionTransitions, now)
	}
	t.UpdatedAt = now

	out := *t
	return &out, nil
}
