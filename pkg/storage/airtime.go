package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// AirtimeStore defines the interface for managing airtime purchases.
type AirtimeStore interface {
	AccountReader

	GetAirtimePurchase(ctx context.Context, id string) (*models.AirtimePurchase, error)
	ListAirtimePurchases(ctx context.Context, filter AirtimeFilter) ([]models.AirtimePurchase, error)
	CreateAirtimePurchase(ctx context.Context, purchase *models.AirtimePurchase) (*models.AirtimePurchase, error)
	UpdateAirtimePurchase(ctx context.Context, id string, patch models.AirtimePatch) (*models.AirtimePurchase, error)

	// CompletePendingAirtime completes a purchase only if it is still pending.
	// The boolean reports whether the completion was applied.
	CompletePendingAirtime(ctx context.Context, id string) (*models.AirtimePurchase, bool, error)
}
