package memory

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// CreatePayment stores a new pending payment.
func (s *Store) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	p := *payment
	p.Id = s.payments.nextID()
	p.Status = models.PaymentPending
	p.CreatedAt = now
	p.UpdatedAt = now
	p.CompletedAt = nil
	p.CancelledAt = nil
	s.payments.insert(p.Id, p)

	return &p, nil
}

func (s *Store) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.payments.get(id)
	if !ok {
		return nil, notFound("payment", id)
	}
	out := *p
	return &out, nil
}

func (s *Store) ListPayments(ctx context.Context, filter storage.PaymentFilter) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.payments.collect(filter.Match), nil
}

func (s *Store) UpdatePayment(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments.get(id)
	if !ok {
		return nil, notFound("payment", id)
	}
	now := s.clock()
	if patch.Status != nil {
		transition(&p.Status, *patch.Status, p, paymentTransitions, now)
	}
	p.UpdatedAt = now

	out := *p
	return &out, nil
}

// CancelPayment cancels a payment if it is still pending.
func (s *Store) CancelPayment(ctx context.Context, id string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.payments.get(id)
	if !ok {
		return nil, notFound("payment", id)
	}
	if p.Status != models.PaymentPending {
		return nil, invalidTransition("payment", id, p.Status)
	}
	now := s.clock()
	transition(&p.Status, models.PaymentCancelled, p, paymentTransitions, now)
	p.UpdatedAt = now

	out := *p
	return &out, nil
}
