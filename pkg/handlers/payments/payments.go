package payments

import (
	"context"
	"net/http"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/handlers/httpx"
	"github.com/chris/fintech-checker-api/pkg/mapping"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// PaymentsHandler holds the dependencies for payment-related handlers.
type PaymentsHandler struct {
	Store storage.PaymentStore
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(store storage.PaymentStore) *PaymentsHandler {
	return &PaymentsHandler{Store: store}
}

// ListPayments handles the logic for listing payments matching the query filters.
func (h *PaymentsHandler) ListPayments(w http.ResponseWriter, r *http.Request, params api.ListPaymentsParams) {
	payments, err := h.Store.ListPayments(r.Context(), mapping.ToPaymentFilter(params))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteList(w, r, payments)
}

// CreatePayment handles the logic for creating a payment from an account.
func (h *PaymentsHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var newPayment api.NewPayment
	if err := httpx.DecodeJSON(r, &newPayment); err != nil {
		api.WriteError(w, r, err)
		return
	}

	payment := mapping.ToDomainNewPayment(&newPayment)
	if err := validate(payment); err != nil {
		api.WriteError(w, r, err)
		return
	}

	account, err := h.Store.GetAccount(r.Context(), payment.AccountId)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	if payment.Currency == "" {
		payment.Currency = account.Currency
	}

	if newPayment.KycComplete != nil {
		payment.KycComplete = *newPayment.KycComplete
	} else {
		kycComplete, err := h.kycApproved(r.Context(), account.CustomerId)
		if err != nil {
			api.WriteError(w, r, apperrors.Wrap(err))
			return
		}
		payment.KycComplete = kycComplete
	}
	if newPayment.SufficientBalance != nil {
		payment.SufficientBalance = *newPayment.SufficientBalance
	} else {
		payment.SufficientBalance = account.Balance >= payment.Amount
	}

	created, err := h.Store.CreatePayment(r.Context(), payment)
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusCreated, created)
}

// GetPaymentById handles the logic for retrieving a payment by its ID.
func (h *PaymentsHandler) GetPaymentById(w http.ResponseWriter, r *http.Request, id string) {
	payment, err := h.Store.GetPayment(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Payment not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, payment)
}

// UpdatePaymentStatus handles the logic for changing a payment's status.
func (h *PaymentsHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request, id string) {
	var update api.StatusUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	status := models.PaymentStatus(update.Status)
	if !status.Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid status %q, expected one of pending, completed, cancelled", update.Status))
		return
	}

	payment, err := h.Store.UpdatePayment(r.Context(), id, models.PaymentPatch{Status: &status})
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Payment not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, payment)
}

// CancelPayment handles the logic for cancelling a pending payment.
func (h *PaymentsHandler) CancelPayment(w http.ResponseWriter, r *http.Request, id string) {
	payment, err := h.Store.CancelPayment(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Payment not found", "Only pending payments can be cancelled"))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, payment)
}

// CheckPaymentReady handles the logic for checking whether a payment can be processed.
func (h *PaymentsHandler) CheckPaymentReady(w http.ResponseWriter, r *http.Request, id string) {
	payment, err := h.Store.GetPayment(r.Context(), id)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("Payment", "paymentId", id))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteCheck(w, r, checker.PaymentReady(payment))
}

// kycApproved reports whether the customer's KYC is approved. A missing record counts as not approved.
func (h *PaymentsHandler) kycApproved(ctx context.Context, customerID string) (bool, error) {
	kyc, err := h.Store.GetKyc(ctx, customerID)
	if err != nil {
		if httpx.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return kyc.Status == models.KycApproved, nil
}

func validate(p *models.Payment) error {
	if p.AccountId == "" {
		return apperrors.Invalid("accountId is required")
	}
	if p.BeneficiaryName == "" {
		return apperrors.Invalid("beneficiaryName is required")
	}
	if p.Amount <= 0 {
		return apperrors.Invalid("amount must be greater than 0")
	}
	if !p.Method.Valid() {
		return apperrors.Invalid("Invalid payment method %q, expected one of bank_transfer, mobile_money, card", p.Method)
	}
	return nil
}
