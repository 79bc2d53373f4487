package memory

import (
	"context"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// CreateLoan stores a new pending loan application. Pricing and scoring are done by the caller.
func (s *Store) CreateLoan(ctx context.Context, loan *models.Loan) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	l := *loan
	l.Id = s.loans.nextID()
	l.Status = models.LoanPending
	l.CreatedAt = now
	l.UpdatedAt = now
	l.ApprovedAt = nil
	l.RejectedAt = nil
	l.DisbursedAt = nil
	s.loans.insert(l.Id, l)

	return &l, nil
}

func (s *Store) GetLoan(ctx context.Context, id string) (*models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.loans.get(id)
	if !ok {
		return nil, notFound("loan", id)
	}
	out := *l
	return &out, nil
}

func (s *Store) ListLoans(ctx context.Context, filter storage.LoanFilter) ([]models.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loans.collect(filter.Match), nil
}

// UpdateLoan merges the patch without any status guard; the guarded paths are ApproveLoan and RejectLoan.
func (s *Store) UpdateLoan(ctx context.Context, id string, patch models.LoanPatch) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans.get(id)
	if !ok {
		return nil, notFound("loan", id)
	}
	now := s.clock()
	if patch.RejectionReason != nil {
		l.RejectionReason = *patch.RejectionReason
	}
	if patch.Status != nil {
		transition(&l.Status, *patch.Status, l, loanTransitions, now)
	}
	l.UpdatedAt = now

	out := *l
	return &out, nil
}

// ApproveLoan moves a pending loan to approved.
func (s *Store) ApproveLoan(ctx context.Context, id string) (*models.Loan, error) {
	return s.decideLoan(id, models.LoanApproved, "")
}

// RejectLoan moves a pending loan to rejected and records the reason.
func (s *Store) RejectLoan(ctx context.Context, id, reason string) (*models.Loan, error) {
	return s.decideLoan(id, models.LoanRejected, reason)
}

func (s *Store) decideLoan(id string, next models.LoanStatus, reason string) (*models.Loan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.loans.get(id)
	if !ok {
		return nil, notFound("loan", id)
	}
	if l.Status != models.LoanPending {
		return nil, invalidTransition("loan", id, l.Status)
	}
	now := s.clock()
	if next == models.LoanRejected {
		l.RejectionReason = reason
	}
	transition(&l.Status, next, l, loanTransitions, now)
	l.UpdatedAt = now

	out := *l
	return &out, nil
}
