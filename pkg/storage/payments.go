package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// PaymentStore defines the interface for managing payments.
// Payments need to see accounts and KYC records to derive readiness flags at creation time.
type PaymentStore interface {
	AccountReader
	KycReader

	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]models.Payment, error)
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	UpdatePayment(ctx context.Context, id string, patch models.PaymentPatch) (*models.Payment, error)

	// CancelPayment cancels a payment if it is still pending.
	CancelPayment(ctx context.Context, id string) (*models.Payment, error)
}
