package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// TransactionStore defines the interface for managing account transactions.
// Transactions need to see accounts to validate and default new records.
type TransactionStore interface {
	AccountReader

	// GetTransaction retrieves a transaction by its ID.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// ListTransactions retrieves transactions matching the filter in creation order.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)

	// CreateTransaction creates a new transaction and returns the created transaction.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// UpdateTransaction merges the patch over the stored transaction.
	UpdateTransaction(ctx context.Context, id string, patch models.TransactionPatch) (*models.Transaction, error)
}
