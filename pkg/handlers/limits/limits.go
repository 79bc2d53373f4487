package limits

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

// LimitsHandler holds the dependencies for account limit handlers.
type LimitsHandler struct {
	Store storage.LimitStore
}

// NewLimitsHandler creates a new LimitsHandler.
func NewLimitsHandler(store storage.LimitStore) *LimitsHandler {
	return &LimitsHandler{Store: store}
}

// GetAccountLimits handles the logic for reading an account's limits with their remaining amounts.
func (h *LimitsHandler) GetAccountLimits(w http.ResponseWriter, r *http.Request, accountId string) {
	limit, err := h.limitFor(r.Context(), accountId)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, mapping.ToApiLimitView(limit))
}

// UpdateAccountLimits handles the logic for changing an account's limits or usage.
// Limits are keyed by account id alone, so an unknown id gets a new record in USD.
func (h *LimitsHandler) UpdateAccountLimits(w http.ResponseWriter, r *http.Request, accountId string) {
	var update api.LimitUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	patch := mapping.ToLimitPatch(&update)
	if err := validate(patch); err != nil {
		api.WriteError(w, r, err)
		return
	}

	limit, err := h.Store.UpsertLimit(r.Context(), accountId, patch)
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, mapping.ToApiLimitView(limit))
}

// CheckLimitAvailable handles the logic for checking whether an amount fits the remaining limit.
// The amount and period are read from the query string, falling back to the JSON body.
// An unreadable body is a failed check, not a client error.
func (h *LimitsHandler) CheckLimitAvailable(w http.ResponseWriter, r *http.Request, accountId string, params api.CheckLimitAvailableParams) {
	limit, err := h.limitFor(r.Context(), accountId)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("Account", "accountId", accountId))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}

	var body api.LimitCheck
	if _, err := httpx.DecodeOptionalJSON(r, &body); err != nil {
		api.WriteCheck(w, r, checker.InvalidBody("accountId", accountId))
		return
	}
	api.WriteCheck(w, r, checker.LimitAvailable(limit, mapping.ToLimitQuery(params, &body)))
}

// limitFor returns the stored limits of an account, or the defaults when an
// existing account has none yet. The defaults are not persisted.
func (h *LimitsHandler) limitFor(ctx context.Context, accountId string) (*models.AccountLimit, error) {
	limit, err := h.Store.GetLimit(ctx, accountId)
	if err == nil {
		return limit, nil
	}
	if !httpx.IsNotFound(err) {
		return nil, err
	}

	account, accErr := h.Store.GetAccount(ctx, accountId)
	if accErr != nil {
		return nil, accErr
	}
	defaults := models.NewAccountLimit(account.Id, account.Currency)
	defaults.CreatedAt = account.CreatedAt
	defaults.UpdatedAt = account.CreatedAt
	return &defaults, nil
}

func validate(u models.LimitPatch) error {
	fields := []struct {
		name  string
		value *float64
	}{
		{"dailyLimit", u.DailyLimit},
		{"monthlyLimit", u.MonthlyLimit},
		{"dailyUsed", u.DailyUsed},
		{"monthlyUsed", u.MonthlyUsed},
	}
	for _, f := range fields {
		if f.value != nil && *f.value < 0 {
			return apperrors.Invalid("%s must not be negative", f.name)
		}
	}
	if u.Currency != nil && !mapping.ValidCurrency(*u.Currency) {
		return apperrors.Invalid("currency must be a three-letter ISO code")
	}
	return nil
}
