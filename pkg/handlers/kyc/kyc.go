package kyc

import (
	"net/http"
	"strings"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/handlers/httpx"
	"github.com/chris/fintech-checker-api/pkg/mapping"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// MinimumRefreshDocuments is the number of documents a refresh needs for approval.
const MinimumRefreshDocuments = 2

// OutstandingItems are reported on a refresh that supplied too few documents.
var OutstandingItems = []string{"proof_of_address", "government_id"}

// KycHandler holds the dependencies for KYC-related handlers.
type KycHandler struct {
	Store storage.KycStore
}

// NewKycHandler creates a new KycHandler.
func NewKycHandler(store storage.KycStore) *KycHandler {
	return &KycHandler{Store: store}
}

// ListKycRecords handles the logic for listing KYC records matching the query filters.
func (h *KycHandler) ListKycRecords(w http.ResponseWriter, r *http.Request, params api.ListKycRecordsParams) {
	records, err := h.Store.ListKyc(r.Context(), mapping.ToKycFilter(params))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteList(w, r, records)
}

// GetKycByCustomerId handles the logic for retrieving a customer's KYC record.
func (h *KycHandler) GetKycByCustomerId(w http.ResponseWriter, r *http.Request, customerId string) {
	record, err := h.Store.GetKyc(r.Context(), customerId)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "KYC record not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, record)
}

// UpdateKycStatus handles the logic for setting a customer's KYC status.
// A record is created for customers that have none yet.
func (h *KycHandler) UpdateKycStatus(w http.ResponseWriter, r *http.Request, customerId string) {
	var update api.KycStatusUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	if !models.KycStatus(update.Status).Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid status %q, expected one of pending, approved, rejected", update.Status))
		return
	}
	if update.RiskRating != nil && !models.RiskRating(*update.RiskRating).Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid riskRating %q, expected one of low, medium, high", *update.RiskRating))
		return
	}
	if update.Level != nil && strings.TrimSpace(*update.Level) == "" {
		api.WriteError(w, r, apperrors.Invalid("level must not be empty"))
		return
	}

	record, err := h.Store.UpsertKyc(r.Context(), customerId, mapping.ToKycPatch(&update))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, record)
}

// RefreshKyc handles the logic for re-running verification against a new set of documents.
func (h *KycHandler) RefreshKyc(w http.ResponseWriter, r *http.Request, customerId string) {
	var refresh api.KycRefresh
	if _, err := httpx.DecodeOptionalJSON(r, &refresh); err != nil {
		api.WriteError(w, r, err)
		return
	}

	record, err := h.Store.UpsertKyc(r.Context(), customerId, refreshOutcome(refresh.Documents))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, record)
}

// CheckKycApproved handles the logic for checking whether a customer's KYC is approved.
func (h *KycHandler) CheckKycApproved(w http.ResponseWriter, r *http.Request, customerId string) {
	record, err := h.Store.GetKyc(r.Context(), customerId)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("KYC record", "customerId", customerId))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteCheck(w, r, checker.KycApproved(record))
}

// refreshOutcome approves at low risk when enough documents are supplied and
// otherwise leaves the record pending at medium risk with the outstanding items.
func refreshOutcome(documents []string) models.KycPatch {
	docs := make([]string, 0, len(documents))
	for _, d := range documents {
		if d = strings.TrimSpace(d); d != "" {
			docs = append(docs, d)
		}
	}

	status, risk, pending := models.KycPending, models.RiskMedium, append([]string{}, OutstandingItems...)
	if len(docs) >= MinimumRefreshDocuments {
		status, risk, pending = models.KycApproved, models.RiskLow, []string{}
	}
	return models.KycPatch{
		Status:       &status,
		RiskRating:   &risk,
		Documents:    docs,
		PendingItems: pending,
		Refreshed:    true,
	}
}
