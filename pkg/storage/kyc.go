package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// KycReader defines the interface for reading KYC records.
type KycReader interface {
	// GetKyc retrieves the KYC record of a customer.
	GetKyc(ctx context.Context, customerID string) (*models.KycRecord, error)
}

// KycStore defines the interface for managing KYC records.
type KycStore interface {
	KycReader

	ListKyc(ctx context.Context, filter KycFilter) ([]models.KycRecord, error)

	// UpsertKyc merges the patch over the customer's record, creating it first if absent.
	UpsertKyc(ctx context.Context, customerID string, patch models.KycPatch) (*models.KycRecord, error)
}
