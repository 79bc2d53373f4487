package accounts

import (
	"net/http"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/handlers/httpx"
	"github.com/chris/fintech-checker-api/pkg/mapping"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// AccountsHandler holds the dependencies for account-related handlers.
type AccountsHandler struct {
	Store storage.AccountStore
}

// NewAccountsHandler creates a new AccountsHandler.
func NewAccountsHandler(store storage.AccountStore) *AccountsHandler {
	return &AccountsHandler{Store: store}
}

// ListAccounts handles the logic for listing accounts matching the query filters.
func (h *AccountsHandler) ListAccounts(w http.ResponseWriter, r *http.Request, params api.ListAccountsParams) {
	accounts, err := h.Store.ListAccounts(r.Context(), mapping.ToAccountFilter(params))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteList(w, r, accounts)
}

// CreateAccount handles the logic for opening a new account.
func (h *AccountsHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var newAccount api.NewAccount
	if err := httpx.DecodeJSON(r, &newAccount); err != nil {
		api.WriteError(w, r, err)
		return
	}

	account := mapping.ToDomainNewAccount(&newAccount)
	if err := validate(account); err != nil {
		api.WriteError(w, r, err)
		return
	}

	created, err := h.Store.CreateAccount(r.Context(), account)
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusCreated, created)
}

// GetAccountById handles the logic for retrieving an account by its ID.
func (h *AccountsHandler) GetAccountById(w http.ResponseWriter, r *http.Request, id string) {
	account, err := h.Store.GetAccount(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, account)
}

// GetAccountBalance handles the logic for retrieving an account's balance.
func (h *AccountsHandler) GetAccountBalance(w http.ResponseWriter, r *http.Request, id string) {
	account, err := h.Store.GetAccount(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, mapping.ToApiAccountBalance(account))
}

// UpdateAccountStatus handles the logic for changing an account's status.
func (h *AccountsHandler) UpdateAccountStatus(w http.ResponseWriter, r *http.Request, id string) {
	var update api.StatusUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	status := models.AccountStatus(update.Status)
	if !status.Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid status %q, expected one of active, suspended, closed", update.Status))
		return
	}

	account, err := h.Store.UpdateAccount(r.Context(), id, models.AccountPatch{Status: &status})
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, account)
}

// CheckAccountActive handles the logic for checking whether an account is active.
func (h *AccountsHandler) CheckAccountActive(w http.ResponseWriter, r *http.Request, id string) {
	account, err := h.Store.GetAccount(r.Context(), id)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("Account", "accountId", id))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteCheck(w, r, checker.AccountActive(account))
}

func validate(a *models.Account) error {
	if a.CustomerId == "" {
		return apperrors.Invalid("customerId is required")
	}
	if !a.Type.Valid() {
		return apperrors.Invalid("Invalid account type %q, expected one of savings, current, wallet", a.Type)
	}
	if !mapping.ValidCurrency(a.Currency) {
		return apperrors.Invalid("currency must be a three-letter ISO code")
	}
	if a.Balance < 0 {
		return apperrors.Invalid("balance must not be negative")
	}
	return nil
}
