package storage

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// LoanStore defines the interface for managing loan applications.
type LoanStore interface {
	AccountReader

	GetLoan(ctx context.Context, id string) (*models.Loan, error)
	ListLoans(ctx context.Context, filter LoanFilter) ([]models.Loan, error)
	CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error)
	UpdateLoan(ctx context.Context, id string, patch models.LoanPatch) (*models.Loan, error)

	// ApproveLoan moves a pending loan to approved.
	ApproveLoan(ctx context.Context, id string) (*models.Loan, error)

	// RejectLoan moves a pending loan to rejected and records the reason.
	RejectLoan(ctx context.Context, id, reason string) (*models.Loan, error)
}
