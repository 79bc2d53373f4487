package memory

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// defaultCurrency applies to limits of an unknown account.
const defaultCurrency = "USD"

func (s *Store) GetLimit(ctx context.Context, accountID string) (*models.AccountLimit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.limits.get(accountID)
	if !ok {
		return nil, notFound("limits for account", accountID)
	}
	out := *l
	return &out, nil
}

// UpsertLimit merges the patch over the account's limits. Absent limits start from the defaults
// in the account's currency, or USD when the account is unknown.
func (s *Store) UpsertLimit(ctx context.Context, accountID string, patch models.LimitPatch) (*models.AccountLimit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	l, ok := s.limits.get(accountID)
	if !ok {
		currency := defaultCurrency
		if a, found := s.accounts.get(accountID); found && a.Currency != "" {
			currency = a.Currency
		}
		limit := models.NewAccountLimit(accountID, currency)
		limit.CreatedAt = now
		s.limits.insert(accountID, limit)
		l, _ = s.limits.get(accountID)
	}

	if patch.DailyLimit != nil {
		l.DailyLimit = *patch.DailyLimit
	}
	if patch.MonthlyLimit != nil {
		l.MonthlyLimit = *patch.MonthlyLimit
	}
	if patch.DailyUsed != nil {
		l.DailyUsed = *patch.DailyUsed
	}
	if patch.MonthlyUsed != nil {
		l.MonthlyUsed = *patch.MonthlyUsed
	}
	if patch.Currency != nil {
		l.Currency = *patch.Currency
	}
	l.UpdatedAt = now

	out := *l
	return &out, nil
}
