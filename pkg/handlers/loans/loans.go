package loans

import (
	"net/http"
	"strings"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/handlers/httpx"
	"github.com/chris/fintech-checker-api/pkg/mapping"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/scoring"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// DefaultRejectionReason is recorded when a loan is rejected without a reason.
const DefaultRejectionReason = "Application did not meet lending criteria"

// LoansHandler holds the dependencies for loan-related handlers.
type LoansHandler struct {
	Store  storage.LoanStore
	Pricer *scoring.Pricer
}

// NewLoansHandler creates a new LoansHandler. A nil pricer scores applications at random.
func NewLoansHandler(store storage.LoanStore, pricer *scoring.Pricer) *LoansHandler {
	if pricer == nil {
		pricer = scoring.NewPricer(nil)
	}
	return &LoansHandler{Store: store, Pricer: pricer}
}

// ListLoans handles the logic for listing loans matching the query filters.
func (h *LoansHandler) ListLoans(w http.ResponseWriter, r *http.Request, params api.ListLoansParams) {
	loans, err := h.Store.ListLoans(r.Context(), mapping.ToLoanFilter(params))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteList(w, r, loans)
}

// ApplyForLoan handles the logic for submitting and pricing a loan application.
func (h *LoansHandler) ApplyForLoan(w http.ResponseWriter, r *http.Request) {
	var application api.LoanApplication
	if err := httpx.DecodeJSON(r, &application); err != nil {
		api.WriteError(w, r, err)
		return
	}

	loan := mapping.ToDomainNewLoan(&application)
	if err := validate(loan); err != nil {
		api.WriteError(w, r, err)
		return
	}
	if _, err := h.Store.GetAccount(r.Context(), loan.AccountId); err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}

	quote := h.Pricer.Quote(loan.CustomerId, loan.Amount, loan.Tenure)
	loan.InterestRate = quote.InterestRate
	loan.MonthlyPayment = quote.MonthlyPayment
	loan.CreditScore = quote.CreditScore
	loan.Eligible = quote.Eligible

	created, err := h.Store.CreateLoan(r.Context(), loan)
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusCreated, created)
}

// GetLoanById handles the logic for retrieving a loan by its ID.
func (h *LoansHandler) GetLoanById(w http.ResponseWriter, r *http.Request, id string) {
	loan, err := h.Store.GetLoan(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Loan not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, loan)
}

// UpdateLoanStatus handles the logic for setting a loan's status directly.
// Unlike approve and reject it is not restricted to pending loans.
func (h *LoansHandler) UpdateLoanStatus(w http.ResponseWriter, r *http.Request, id string) {
	var update api.LoanStatusUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	patch := mapping.ToLoanPatch(&update)
	if !patch.Status.Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid status %q, expected one of pending, approved, rejected, disbursed", update.Status))
		return
	}

	loan, err := h.Store.UpdateLoan(r.Context(), id, patch)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Loan not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, loan)
}

// ApproveLoan handles the logic for approving a pending loan.
func (h *LoansHandler) ApproveLoan(w http.ResponseWriter, r *http.Request, id string) {
	loan, err := h.Store.ApproveLoan(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Loan not found", "Only pending loans can be approved"))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, loan)
}

// RejectLoan handles the logic for rejecting a pending loan. The body is optional.
func (h *LoansHandler) RejectLoan(w http.ResponseWriter, r *http.Request, id string) {
	var rejection api.LoanRejection
	if _, err := httpx.DecodeOptionalJSON(r, &rejection); err != nil {
		api.WriteError(w, r, err)
		return
	}
	reason := DefaultRejectionReason
	if rejection.Reason != nil && strings.TrimSpace(*rejection.Reason) != "" {
		reason = strings.TrimSpace(*rejection.Reason)
	}

	loan, err := h.Store.RejectLoan(r.Context(), id, reason)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Loan not found", "Only pending loans can be rejected"))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, loan)
}

// CheckLoanEligible handles the logic for checking whether an applicant qualifies.
func (h *LoansHandler) CheckLoanEligible(w http.ResponseWriter, r *http.Request, id string) {
	h.check(w, r, id, checker.LoanEligible)
}

// CheckLoanApproved handles the logic for checking whether a loan has been approved.
func (h *LoansHandler) CheckLoanApproved(w http.ResponseWriter, r *http.Request, id string) {
	h.check(w, r, id, checker.LoanApproved)
}

func (h *LoansHandler) check(w http.ResponseWriter, r *http.Request, id string, predicate func(*models.Loan) checker.Result) {
	loan, err := h.Store.GetLoan(r.Context(), id)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("Loan", "loanId", id))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteCheck(w, r, predicate(loan))
}

func validate(l *models.Loan) error {
	if l.CustomerId == "" {
		return apperrors.Invalid("customerId is required")
	}
	if l.AccountId == "" {
		return apperrors.Invalid("accountId is required")
	}
	if l.Amount <= 0 {
		return apperrors.Invalid("amount must be greater than 0")
	}
	if l.Tenure <= 0 {
		return apperrors.Invalid("tenure must be a positive number of months")
	}
	return nil
}
