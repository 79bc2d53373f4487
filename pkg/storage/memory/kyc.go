package memory

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// Defaults for KYC records created lazily by the first update.
const (
	defaultKycLevel = "basic"
	defaultKycRisk  = models.RiskMedium
)

func (s *Store) GetKyc(ctx context.Context, customerID string) (*models.KycRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	k, ok := s.kyc.get(customerID)
	if !ok {
		return nil, notFound("kyc record for customer", customerID)
	}
	out := k.Clone()
	return &out, nil
}

func (s *Store) ListKyc(ctx context.Context, filter storage.KycFilter) ([]models.KycRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.kyc.collect(filter.Match)
	for i := range records {
		records[i] = records[i].Clone()
	}
	return records, nil
}

// UpsertKyc merges the patch over the customer's record, creating a pending record first if absent.
func (s *Store) UpsertKyc(ctx context.Context, customerID string, patch models.KycPatch) (*models.KycRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	k, ok := s.kyc.get(customerID)
	if !ok {
		s.kyc.insert(customerID, models.KycRecord{
			CustomerId:   customerID,
			Status:       models.KycPending,
			Level:        defaultKycLevel,
			Documents:    []string{},
			RiskRating:   defaultKycRisk,
			PendingItems: []string{},
			CreatedAt:    now,
		})
		k, _ = s.kyc.get(customerID)
	}

	if patch.Level != nil {
		k.Level = *patch.Level
	}
	if patch.RiskRating != nil {
		k.RiskRating = *patch.RiskRating
	}
	if patch.Documents != nil {
		k.Documents = append([]string{}, patch.Documents...)
	}
	if patch.PendingItems != nil {
		k.PendingItems = append([]string{}, patch.PendingItems...)
	}
	if patch.RejectionReason != nil {
		k.RejectionReason = *patch.RejectionReason
	}
	if patch.Refreshed {
		k.LastRefreshedAt = ptr(now)
	}
	if patch.Status != nil {
		transition(&k.Status, *patch.Status, k, kycTransitions, now)
	}
	k.UpdatedAt = now

	out := k.Clone()
	return &out, nil
}
