package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// AccountReader defines the interface for reading account data.
type AccountReader interface {
	// GetAccount retrieves an account by its ID.
	GetAccount(ctx context.Context, id string) (*models.Account, error)

	// ListAccounts retrieves accounts matching the filter in creation order.
	ListAccounts(ctx context.Context, filter AccountFilter) ([]models.Account, error)
}

// AccountStore combines account reads with creation and status updates.
type AccountStore interface {
	AccountReader

	// CreateAccount assigns an ID, account number and timestamps and stores the account.
	CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error)

	// UpdateAccount merges the patch over the stored account.
	UpdateAccount(ctx context.Context, id string, patch models.AccountPatch) (*models.Account, error)
}
