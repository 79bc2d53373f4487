package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/handlers/accounts"
	"github.com/chris/fintech-checker-api/pkg/handlers/airtime"
	"github.com/chris/fintech-checker-api/pkg/handlers/kyc"
	"github.com/chris/fintech-checker-api/pkg/handlers/limits"
	"github.com/chris/fintech-checker-api/pkg/handlers/loans"
	"github.com/chris/fintech-checker-api/pkg/handlers/payments"
	"github.com/chris/fintech-checker-api/pkg/handlers/transactions"
	"github.com/chris/fintech-checker-api/pkg/scheduler"
	"github.com/chris/fintech-checker-api/pkg/scoring"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "fintech-checker-api"

// ApiHandler implements the server interface by composing the per-resource handlers.
// The resource handlers share one store but never call each other.
type ApiHandler struct {
	*accounts.AccountsHandler
	*transactions.TransactionsHandler
	*payments.PaymentsHandler
	*loans.LoansHandler
	*airtime.AirtimeHandler
	*kyc.KycHandler
	*limits.LimitsHandler
}

// Options carries the collaborators of the handlers that need more than the store.
type Options struct {
	Pricer       *scoring.Pricer
	Scheduler    scheduler.Scheduler
	AirtimeDelay time.Duration
	Logger       *slog.Logger
}

// NewApiHandler creates a new ApiHandler backed by store.
func NewApiHandler(store storage.ApiStore, opts Options) *ApiHandler {
	return &ApiHandler{
		AccountsHandler:     accounts.NewAccountsHandler(store),
		TransactionsHandler: transactions.NewTransactionsHandler(store),
		PaymentsHandler:     payments.NewPaymentsHandler(store),
		LoansHandler:        loans.NewLoansHandler(store, opts.Pricer),
		AirtimeHandler:      airtime.NewAirtimeHandler(store, opts.Scheduler, opts.AirtimeDelay, opts.Logger),
		KycHandler:          kyc.NewKycHandler(store),
		LimitsHandler:       limits.NewLimitsHandler(store),
	}
}

// Make sure we conform to the interface
var _ api.ServerInterface = (*ApiHandler)(nil)

// GetHealth handles the logic for the liveness probe.
func (h *ApiHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	api.WriteSuccess(w, r, http.StatusOK, api.Health{Status: "ok", Service: ServiceName})
}
