package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// LimitStore defines the interface for managing account limits.
type LimitStore interface {
	AccountReader

	// GetLimit retrieves the limits of an account.
	GetLimit(ctx context.Context, accountID string) (*models.AccountLimit, error)

	// UpsertLimit merges the patch over the account's limits, creating them with defaults if absent.
	UpsertLimit(ctx context.Context, accountID string, patch models.LimitPatch) (*models.AccountLimit, error)
}
