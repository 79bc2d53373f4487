package transactions

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

// TransactionsHandler holds the dependencies for transaction-related handlers.
type TransactionsHandler struct {
	Store storage.TransactionStore
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(store storage.TransactionStore) *TransactionsHandler {
	return &TransactionsHandler{Store: store}
}

// ListTransactions handles the logic for listing transactions matching the query filters.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request, params api.ListTransactionsParams) {
	txs, err := h.Store.ListTransactions(r.Context(), mapping.ToTransactionFilter(params))
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteList(w, r, txs)
}

// CreateTransaction handles the logic for posting a transaction against an account.
func (h *TransactionsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var newTx api.NewTransaction
	if err := httpx.DecodeJSON(r, &newTx); err != nil {
		api.WriteError(w, r, err)
		return
	}

	tx := mapping.ToDomainNewTransaction(&newTx)
	if err := validate(tx); err != nil {
		api.WriteError(w, r, err)
		return
	}

	account, err := h.Store.GetAccount(r.Context(), tx.AccountId)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Account not found", ""))
		return
	}
	if tx.Currency == "" {
		tx.Currency = account.Currency
	}

	created, err := h.Store.CreateTransaction(r.Context(), tx)
	if err != nil {
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteSuccess(w, r, http.StatusCreated, created)
}

// GetTransactionById handles the logic for retrieving a transaction by its ID.
func (h *TransactionsHandler) GetTransactionById(w http.ResponseWriter, r *http.Request, id string) {
	tx, err := h.Store.GetTransaction(r.Context(), id)
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Transaction not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, tx)
}

// UpdateTransactionStatus handles the logic for changing a transaction's status.
func (h *TransactionsHandler) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request, id string) {
	var update api.StatusUpdate
	if err := httpx.DecodeJSON(r, &update); err != nil {
		api.WriteError(w, r, err)
		return
	}
	status := models.TransactionStatus(update.Status)
	if !status.Valid() {
		api.WriteError(w, r, apperrors.Invalid("Invalid status %q, expected one of pending, cleared", update.Status))
		return
	}

	tx, err := h.Store.UpdateTransaction(r.Context(), id, models.TransactionPatch{Status: &status})
	if err != nil {
		api.WriteError(w, r, httpx.StoreError(err, "Transaction not found", ""))
		return
	}
	api.WriteSuccess(w, r, http.StatusOK, tx)
}

// CheckTransactionCleared handles the logic for checking whether a transaction has cleared.
func (h *TransactionsHandler) CheckTransactionCleared(w http.ResponseWriter, r *http.Request, id string) {
	tx, err := h.Store.GetTransaction(r.Context(), id)
	if err != nil {
		if httpx.IsNotFound(err) {
			api.WriteCheck(w, r, checker.NotFound("Transaction", "transactionId", id))
			return
		}
		api.WriteError(w, r, apperrors.Wrap(err))
		return
	}
	api.WriteCheck(w, r, checker.TransactionCleared(tx))
}

func validate(tx *models.Transaction) error {
	if tx.AccountId == "" {
		return apperrors.Invalid("accountId is required")
	}
	if !tx.Type.Valid() {
		return apperrors.Invalid("Invalid transaction type %q, expected one of debit, credit", tx.Type)
	}
	if tx.Amount <= 0 {
		return apperrors.Invalid("amount must be greater than 0")
	}
	return nil
}
