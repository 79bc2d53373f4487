package memory

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// CreateAirtimePurchase stores a new pending purchase awaiting delivery.
func (s *Store) CreateAirtimePurchase(ctx context.Context, purchase *models.AirtimePurchase) (*models.AirtimePurchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	a := *purchase
	a.Id = s.airtime.nextID()
	a.Status = models.AirtimePending
	a.DeliveryStatus = models.DeliveryPending
	a.CreatedAt = now
	a.UpdatedAt = now
	a.CompletedAt = nil
	s.airtime.insert(a.Id, a)

	return &a, nil
}

func (s *Store) GetAirtimePurchase(ctx context.Context, id string) (*models.AirtimePurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.airtime.get(id)
	if !ok {
		return nil, notFound("airtime purchase", id)
	}
	out := *a
	return &out, nil
}

func (s *Store) ListAirtimePurchases(ctx context.Context, filter storage.AirtimeFilter) ([]models.AirtimePurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.airtime.collect(filter.Match), nil
}

// UpdateAirtimePurchase applies an explicit status change. Moving a completed purchase
// back to pending is refused with ErrInvalidTransition.
func (s *Store) UpdateAirtimePurchase(ctx context.Context, id string, patch models.AirtimePatch) (*models.AirtimePurchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.airtime.get(id)
	if !ok {
		return nil, notFound("airtime purchase", id)
	}
	// A delivered purchase cannot be reopened; its completedAt is final.
	if patch.Status != nil && a.Status == models.AirtimeCompleted && *patch.Status != models.AirtimeCompleted {
		return nil, invalidTransition("airtime purchase", id, a.Status)
	}
	now := s.clock()
	if patch.Status != nil {
		transition(&a.Status, *patch.Status, a, airtimeTransitions, now)
	}
	a.UpdatedAt = now

	out := *a
	return &out, nil
}

// CompletePendingAirtime completes a purchase only if it is still pending.
// A purchase already moved by an explicit update is returned unchanged with applied=false.
func (s *Store) CompletePendingAirtime(ctx context.Context, id string) (*models.AirtimePurchase, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.airtime.get(id)
	if !ok {
		return nil, false, notFound("airtime purchase", id)
	}
	if a.Status != models.AirtimePending {
		out := *a
		return &out, false, nil
	}
	now := s.clock()
	transition(&a.Status, models.AirtimeCompleted, a, airtimeTransitions, now)
	a.UpdatedAt = now

	out := *a
	return &out, true, nil
}
