package airtime

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/handlers/httpx"
	"github.com/chris/fintech-checker-api/pkg/mapping"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/scheduler"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// AirtimeHandler holds the dependencies for airtime-related handlers.
type AirtimeHandler struct {
	Store     storage.AirtimeStore
	Scheduler scheduler.Scheduler
	Delay     time.Duration
	Logger    *slog.Logger
}

// NewAirtimeHandler creates a new AirtimeHandler. Purchases complete delay after creation
// unless their status is set explicitly first.
func NewAirtimeHandler(store storage.AirtimeStore, sched scheduler.Scheduler, delay time.Duration, logger *slog.Logger) *AirtimeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AirtimeHandler{Store: store, Scheduler: sched, Delay: delay, Logger: logger}
}

// ListAirtimePurchases handles the logic for listing purchases matching the query filters.
func (h *AirtimeHandler) ListAirtimePurchases(w http.ResponseWriter, r *http.Request, params api.ListAirtimePurchasesParams) {
	purchases, err := h.Store.ListAirtimePurchases(r.Context(), mapping.ToAirtimeFilter(params))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteList(w, r, purchases)
}

// PurchaseAirtime handles the logic for buying airtime and scheduling its completion.
func (h *AirtimeHandler) PurchaseAirtime(w http.ResponseWriter, r *http.Request) {
	var newPurchase api.NewAirtimePurchase
	if err := httpx.DecodeJSON(r, &newPurchase); err != nil {
		api.WriteError(w, r, err)
		return
	}

	purchase := mapping.ToDomainNewAirtimePurchase(&newPurchase)
	if err := validate(purchase); err != nil {
		api.WriteError(w, r, err)
		return
	}

	account, err := h.Store.GetAccount(r.Context(), purchase.AccountId)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	if purchase.Currency == "" {
		purchase.Currency = account.Currency
	}

	created, err := h.Store.CreateAirtimePurchase(r.Context(), purchase)
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}

	// The purchase stays pending until updated explicitly if scheduling fails.
	if h.Scheduler != nil {
		if err := h.Scheduler.ScheduleCompletion(r.Context(), created.Id, h.Delay); err != nil {
			h.Logger.Error("airtime purchase created but completion not scheduled", "purchaseId", created.Id, "error", err)
		}
	}

	api.WriteSuccess(w, r, http.StatusCreated, created)
}

// GetAirtimePurchaseById handles the logic for retrieving a purchase by its ID.
func (h *AirtimeHandler) GetAirtimePurchaseById(w http.ResponseWriter, r *http.Request, id string) {
	purchase, err := h.Store.GetAirtimePurchase(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Airtime purchase not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, purchase)
}

// UpdateAirtimeStatus handles the logic for setting a purchase's status explicitly.
// Any pending automatic completion is cancelled first.
func (h *AirtimeHandler) UpdateAirtimeStatus(w http.ResponseWriter, r *http.Request, id string) {
	var update api.StatusUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	status := models.AirtimeStatus(update.Status)
	if !status.Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid status %q, expected one of pending, completed", update.Status))
		return
	}

	if h.Scheduler != nil {
		h.Scheduler.CancelCompletion(id)
	}
	purchase, err := h.Store.UpdateAirtimePurchase(r.Context(), id, models.AirtimePatch{Status: &status})
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Airtime purchase not found", "Completed airtime purchase cannot be reopened"))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, purchase)
}

// CheckAirtimeCompleted handles the logic for checking whether a purchase has completed.
func (h *AirtimeHandler) CheckAirtimeCompleted(w http.ResponseWriter, r *http.Request, id string) {
	purchase, err := h.Store.GetAirtimePurchase(r.Context(), id)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("Airtime purchase", "purchaseId", id))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteCheck(w, r, checker.AirtimeCompleted(purchase))
}

func validate(a *models.AirtimePurchase) error {
	if a.AccountId == "" {
		return apperrors.Invalid("accountId is required")
	}
	if a.PhoneNumber == "" {
		return apperrors.Invalid("phoneNumber is required")
	}
	if a.Provider == "" {
		return apperrors.Invalid("provider is required")
	}
	if a.Amount <= 0 {
		return apperrors.Invalid("amount must be greater than 0")
	}
	return nil
}
