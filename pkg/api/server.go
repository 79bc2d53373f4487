package api

import (
	"fmt"
	"net/http"

	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Report liveness
	// (GET /health)
	GetHealth(w http.ResponseWriter, r *http.Request)
	// List accounts
	// (GET /accounts)
	ListAccounts(w http.ResponseWriter, r *http.Request, params ListAccountsParams)
	// Open an account
	// (POST /accounts)
	CreateAccount(w http.ResponseWriter, r *http.Request)
	// Get an account
	// (GET /accounts/{id})
	GetAccountById(w http.ResponseWriter, r *http.Request, id string)
	// Get an account's balance
	// (GET /accounts/{id}/balance)
	GetAccountBalance(w http.ResponseWriter, r *http.Request, id string)
	// Update an account's status
	// (PATCH /accounts/{id}/status)
	UpdateAccountStatus(w http.ResponseWriter, r *http.Request, id string)
	// Check the account is active
	// (GET|POST /accounts/{id}/check-active)
	CheckAccountActive(w http.ResponseWriter, r *http.Request, id string)
	// List transactions
	// (GET /transactions)
	ListTransactions(w http.ResponseWriter, r *http.Request, params ListTransactionsParams)
	// Post a transaction
	// (POST /transactions)
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	// Get a transaction
	// (GET /transactions/{id})
	GetTransactionById(w http.ResponseWriter, r *http.Request, id string)
	// Update a transaction's status
	// (PATCH /transactions/{id}/status)
	UpdateTransactionStatus(w http.ResponseWriter, r *http.Request, id string)
	// Check the transaction has cleared
	// (GET|POST /transactions/{id}/check-cleared)
	CheckTransactionCleared(w http.ResponseWriter, r *http.Request, id string)
	// List payments
	// (GET /payments)
	ListPayments(w http.ResponseWriter, r *http.Request, params ListPaymentsParams)
	// Create a payment
	// (POST /payments)
	CreatePayment(w http.ResponseWriter, r *http.Request)
	// Get a payment
	// (GET /payments/{id})
	GetPaymentById(w http.ResponseWriter, r *http.Request, id string)
	// Update a payment's status
	// (PATCH /payments/{id}/status)
	UpdatePaymentStatus(w http.ResponseWriter, r *http.Request, id string)
	// Cancel a pending payment
	// (POST /payments/{id}/cancel)
	CancelPayment(w http.ResponseWriter, r *http.Request, id string)
	// Check the payment is ready for processing
	// (GET|POST /payments/{id}/check-ready)
	CheckPaymentReady(w http.ResponseWriter, r *http.Request, id string)
	// List loan applications
	// (GET /loans)
	ListLoans(w http.ResponseWriter, r *http.Request, params ListLoansParams)
	// Apply for a loan
	// (POST /loans)
	ApplyForLoan(w http.ResponseWriter, r *http.Request)
	// Get a loan application
	// (GET /loans/{id})
	GetLoanById(w http.ResponseWriter, r *http.Request, id string)
	// Update a loan's status
	// (PATCH /loans/{id}/status)
	UpdateLoanStatus(w http.ResponseWriter, r *http.Request, id string)
	// Approve a pending loan
	// (POST /loans/{id}/approve)
	ApproveLoan(w http.ResponseWriter, r *http.Request, id string)
	// Reject a pending loan
	// (POST /loans/{id}/reject)
	RejectLoan(w http.ResponseWriter, r *http.Request, id string)
	// Check the applicant is eligible
	// (GET|POST /loans/{id}/check-eligible)
	CheckLoanEligible(w http.ResponseWriter, r *http.Request, id string)
	// Check the loan is approved
	// (GET|POST /loans/{id}/check-approved)
	CheckLoanApproved(w http.ResponseWriter, r *http.Request, id string)
	// List airtime purchases
	// (GET /airtime)
	ListAirtimePurchases(w http.ResponseWriter, r *http.Request, params ListAirtimePurchasesParams)
	// Purchase airtime
	// (POST /airtime)
	PurchaseAirtime(w http.ResponseWriter, r *http.Request)
	// Get an airtime purchase
	// (GET /airtime/{id})
	GetAirtimePurchaseById(w http.ResponseWriter, r *http.Request, id string)
	// Update an airtime purchase's status
	// (PATCH /airtime/{id}/status)
	UpdateAirtimeStatus(w http.ResponseWriter, r *http.Request, id string)
	// Check the airtime purchase completed
	// (GET|POST /airtime/{id}/check-completed)
	CheckAirtimeCompleted(w http.ResponseWriter, r *http.Request, id string)
	// List KYC records
	// (GET /kyc)
	ListKycRecords(w http.ResponseWriter, r *http.Request, params ListKycRecordsParams)
	// Get a customer's KYC record
	// (GET /kyc/{customerId})
	GetKycByCustomerId(w http.ResponseWriter, r *http.Request, customerId string)
	// Update a customer's KYC status
	// (PATCH /kyc/{customerId}/status)
	UpdateKycStatus(w http.ResponseWriter, r *http.Request, customerId string)
	// Refresh a customer's KYC documents
	// (POST /kyc/{customerId}/refresh)
	RefreshKyc(w http.ResponseWriter, r *http.Request, customerId string)
	// Check the customer's KYC is approved
	// (GET|POST /kyc/{customerId}/check-approved)
	CheckKycApproved(w http.ResponseWriter, r *http.Request, customerId string)
	// Get an account's limits
	// (GET /limits/{accountId})
	GetAccountLimits(w http.ResponseWriter, r *http.Request, accountId string)
	// Update an account's limits
	// (PATCH /limits/{accountId})
	UpdateAccountLimits(w http.ResponseWriter, r *http.Request, accountId string)
	// Check an amount fits the remaining limit
	// (GET|POST /limits/{accountId}/check-available)
	CheckLimitAvailable(w http.ResponseWriter, r *http.Request, accountId string, params CheckLimitAvailableParams)
}

// MiddlewareFunc wraps a single route handler.
type MiddlewareFunc func(http.Handler) http.Handler

// ServerInterfaceWrapper converts router requests to ServerInterface calls.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

func (siw *ServerInterfaceWrapper) serve(w http.ResponseWriter, r *http.Request, fn http.HandlerFunc) {
	handler := http.Handler(fn)
	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}
	handler.ServeHTTP(w, r)
}

func (siw *ServerInterfaceWrapper) pathParam(w http.ResponseWriter, r *http.Request, name string, dest *string) bool {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return false
	}
	return true
}

func (siw *ServerInterfaceWrapper) queryParam(w http.ResponseWriter, r *http.Request, name string, dest **string) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dest); err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: name, Err: err})
		return false
	}
	return true
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	})
}

// ListAccounts operation middleware
func (siw *ServerInterfaceWrapper) ListAccounts(w http.ResponseWriter, r *http.Request) {
	var params ListAccountsParams
	if !siw.queryParam(w, r, "customerId", &params.CustomerId) {
		return
	}
	if !siw.queryParam(w, r, "status", &params.Status) {
		return
	}
	if !siw.queryParam(w, r, "type", &params.Type) {
		return
	}
	if !siw.queryParam(w, r, "currency", &params.Currency) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListAccounts(w, r, params)
	})
}

// CreateAccount operation middleware
func (siw *ServerInterfaceWrapper) CreateAccount(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateAccount(w, r)
	})
}

// GetAccountById operation middleware
func (siw *ServerInterfaceWrapper) GetAccountById(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAccountById(w, r, id)
	})
}

// GetAccountBalance operation middleware
func (siw *ServerInterfaceWrapper) GetAccountBalance(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAccountBalance(w, r, id)
	})
}

// UpdateAccountStatus operation middleware
func (siw *ServerInterfaceWrapper) UpdateAccountStatus(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateAccountStatus(w, r, id)
	})
}

// CheckAccountActive operation middleware
func (siw *ServerInterfaceWrapper) CheckAccountActive(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckAccountActive(w, r, id)
	})
}

// ListTransactions operation middleware
func (siw *ServerInterfaceWrapper) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var params ListTransactionsParams
	if !siw.queryParam(w, r, "accountId", &params.AccountId) {
		return
	}
	if !siw.queryParam(w, r, "type", &params.Type) {
		return
	}
	if !siw.queryParam(w, r, "status", &params.Status) {
		return
	}
	if !siw.queryParam(w, r, "startDate", &params.StartDate) {
		return
	}
	if !siw.queryParam(w, r, "endDate", &params.EndDate) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTransactions(w, r, params)
	})
}

// CreateTransaction operation middleware
func (siw *ServerInterfaceWrapper) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateTransaction(w, r)
	})
}

// GetTransactionById operation middleware
func (siw *ServerInterfaceWrapper) GetTransactionById(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetTransactionById(w, r, id)
	})
}

// UpdateTransactionStatus operation middleware
func (siw *ServerInterfaceWrapper) UpdateTransactionStatus(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateTransactionStatus(w, r, id)
	})
}

// CheckTransactionCleared operation middleware
func (siw *ServerInterfaceWrapper) CheckTransactionCleared(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckTransactionCleared(w, r, id)
	})
}

// ListPayments operation middleware
func (siw *ServerInterfaceWrapper) ListPayments(w http.ResponseWriter, r *http.Request) {
	var params ListPaymentsParams
	if !siw.queryParam(w, r, "accountId", &params.AccountId) {
		return
	}
	if !siw.queryParam(w, r, "status", &params.Status) {
		return
	}
	if !siw.queryParam(w, r, "method", &params.Method) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListPayments(w, r, params)
	})
}

// CreatePayment operation middleware
func (siw *ServerInterfaceWrapper) CreatePayment(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreatePayment(w, r)
	})
}

// GetPaymentById operation middleware
func (siw *ServerInterfaceWrapper) GetPaymentById(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetPaymentById(w, r, id)
	})
}

// UpdatePaymentStatus operation middleware
func (siw *ServerInterfaceWrapper) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdatePaymentStatus(w, r, id)
	})
}

// CancelPayment operation middleware
func (siw *ServerInterfaceWrapper) CancelPayment(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CancelPayment(w, r, id)
	})
}

// CheckPaymentReady operation middleware
func (siw *ServerInterfaceWrapper) CheckPaymentReady(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckPaymentReady(w, r, id)
	})
}

// ListLoans operation middleware
func (siw *ServerInterfaceWrapper) ListLoans(w http.ResponseWriter, r *http.Request) {
	var params ListLoansParams
	if !siw.queryParam(w, r, "customerId", &params.CustomerId) {
		return
	}
	if !siw.queryParam(w, r, "accountId", &params.AccountId) {
		return
	}
	if !siw.queryParam(w, r, "status", &params.Status) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListLoans(w, r, params)
	})
}

// ApplyForLoan operation middleware
func (siw *ServerInterfaceWrapper) ApplyForLoan(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ApplyForLoan(w, r)
	})
}

// GetLoanById operation middleware
func (siw *ServerInterfaceWrapper) GetLoanById(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetLoanById(w, r, id)
	})
}

// UpdateLoanStatus operation middleware
func (siw *ServerInterfaceWrapper) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateLoanStatus(w, r, id)
	})
}

// ApproveLoan operation middleware
func (siw *ServerInterfaceWrapper) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ApproveLoan(w, r, id)
	})
}

// RejectLoan operation middleware
func (siw *ServerInterfaceWrapper) RejectLoan(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.RejectLoan(w, r, id)
	})
}

// CheckLoanEligible operation middleware
func (siw *ServerInterfaceWrapper) CheckLoanEligible(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckLoanEligible(w, r, id)
	})
}

// CheckLoanApproved operation middleware
func (siw *ServerInterfaceWrapper) CheckLoanApproved(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckLoanApproved(w, r, id)
	})
}

// ListAirtimePurchases operation middleware
func (siw *ServerInterfaceWrapper) ListAirtimePurchases(w http.ResponseWriter, r *http.Request) {
	var params ListAirtimePurchasesParams
	if !siw.queryParam(w, r, "accountId", &params.AccountId) {
		return
	}
	if !siw.queryParam(w, r, "status", &params.Status) {
		return
	}
	if !siw.queryParam(w, r, "provider", &params.Provider) {
		return
	}
	if !siw.queryParam(w, r, "phoneNumber", &params.PhoneNumber) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListAirtimePurchases(w, r, params)
	})
}

// PurchaseAirtime operation middleware
func (siw *ServerInterfaceWrapper) PurchaseAirtime(w http.ResponseWriter, r *http.Request) {
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.PurchaseAirtime(w, r)
	})
}

// GetAirtimePurchaseById operation middleware
func (siw *ServerInterfaceWrapper) GetAirtimePurchaseById(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAirtimePurchaseById(w, r, id)
	})
}

// UpdateAirtimeStatus operation middleware
func (siw *ServerInterfaceWrapper) UpdateAirtimeStatus(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateAirtimeStatus(w, r, id)
	})
}

// CheckAirtimeCompleted operation middleware
func (siw *ServerInterfaceWrapper) CheckAirtimeCompleted(w http.ResponseWriter, r *http.Request) {
	var id string
	if !siw.pathParam(w, r, "id", &id) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckAirtimeCompleted(w, r, id)
	})
}

// ListKycRecords operation middleware
func (siw *ServerInterfaceWrapper) ListKycRecords(w http.ResponseWriter, r *http.Request) {
	var params ListKycRecordsParams
	if !siw.queryParam(w, r, "status", &params.Status) {
		return
	}
	if !siw.queryParam(w, r, "level", &params.Level) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListKycRecords(w, r, params)
	})
}

// GetKycByCustomerId operation middleware
func (siw *ServerInterfaceWrapper) GetKycByCustomerId(w http.ResponseWriter, r *http.Request) {
	var customerId string
	if !siw.pathParam(w, r, "customerId", &customerId) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetKycByCustomerId(w, r, customerId)
	})
}

// UpdateKycStatus operation middleware
func (siw *ServerInterfaceWrapper) UpdateKycStatus(w http.ResponseWriter, r *http.Request) {
	var customerId string
	if !siw.pathParam(w, r, "customerId", &customerId) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateKycStatus(w, r, customerId)
	})
}

// RefreshKyc operation middleware
func (siw *ServerInterfaceWrapper) RefreshKyc(w http.ResponseWriter, r *http.Request) {
	var customerId string
	if !siw.pathParam(w, r, "customerId", &customerId) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.RefreshKyc(w, r, customerId)
	})
}

// CheckKycApproved operation middleware
func (siw *ServerInterfaceWrapper) CheckKycApproved(w http.ResponseWriter, r *http.Request) {
	var customerId string
	if !siw.pathParam(w, r, "customerId", &customerId) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckKycApproved(w, r, customerId)
	})
}

// GetAccountLimits operation middleware
func (siw *ServerInterfaceWrapper) GetAccountLimits(w http.ResponseWriter, r *http.Request) {
	var accountId string
	if !siw.pathParam(w, r, "accountId", &accountId) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetAccountLimits(w, r, accountId)
	})
}

// UpdateAccountLimits operation middleware
func (siw *ServerInterfaceWrapper) UpdateAccountLimits(w http.ResponseWriter, r *http.Request) {
	var accountId string
	if !siw.pathParam(w, r, "accountId", &accountId) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateAccountLimits(w, r, accountId)
	})
}

// CheckLimitAvailable operation middleware
func (siw *ServerInterfaceWrapper) CheckLimitAvailable(w http.ResponseWriter, r *http.Request) {
	var accountId string
	if !siw.pathParam(w, r, "accountId", &accountId) {
		return
	}
	var params CheckLimitAvailableParams
	if !siw.queryParam(w, r, "amount", &params.Amount) {
		return
	}
	if !siw.queryParam(w, r, "period", &params.Period) {
		return
	}
	siw.serve(w, r, func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CheckLimitAvailable(w, r, accountId, params)
	})
}

// InvalidParamFormatError is passed to ErrorHandlerFunc when a parameter cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// ChiServerOptions configures HandlerWithOptions.
type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// Handler creates http.Handler with routing matching the API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

// HandlerFromMux creates http.Handler with routing matching the API, mounted on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{BaseRouter: r})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter
	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			WriteError(w, r, apperrors.Invalid("%s", err.Error()))
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}
	base := options.BaseURL

	r.Group(func(r chi.Router) {
		r.Get(base+"/health", wrapper.GetHealth)
		r.Get(base+"/accounts", wrapper.ListAccounts)
		r.Post(base+"/accounts", wrapper.CreateAccount)
		r.Get(base+"/accounts/{id}", wrapper.GetAccountById)
		r.Get(base+"/accounts/{id}/balance", wrapper.GetAccountBalance)
		r.Patch(base+"/accounts/{id}/status", wrapper.UpdateAccountStatus)
		r.Get(base+"/accounts/{id}/check-active", wrapper.CheckAccountActive)
		r.Post(base+"/accounts/{id}/check-active", wrapper.CheckAccountActive)
		r.Get(base+"/transactions", wrapper.ListTransactions)
		r.Post(base+"/transactions", wrapper.CreateTransaction)
		r.Get(base+"/transactions/{id}", wrapper.GetTransactionById)
		r.Patch(base+"/transactions/{id}/status", wrapper.UpdateTransactionStatus)
		r.Get(base+"/transactions/{id}/check-cleared", wrapper.CheckTransactionCleared)
		r.Post(base+"/transactions/{id}/check-cleared", wrapper.CheckTransactionCleared)
		r.Get(base+"/payments", wrapper.ListPayments)
		r.Post(base+"/payments", wrapper.CreatePayment)
		r.Get(base+"/payments/{id}", wrapper.GetPaymentById)
		r.Patch(base+"/payments/{id}/status", wrapper.UpdatePaymentStatus)
		r.Post(base+"/payments/{id}/cancel", wrapper.CancelPayment)
		r.Get(base+"/payments/{id}/check-ready", wrapper.CheckPaymentReady)
		r.Post(base+"/payments/{id}/check-ready", wrapper.CheckPaymentReady)
		r.Get(base+"/loans", wrapper.ListLoans)
		r.Post(base+"/loans", wrapper.ApplyForLoan)
		r.Get(base+"/loans/{id}", wrapper.GetLoanById)
		r.Patch(base+"/loans/{id}/status", wrapper.UpdateLoanStatus)
		r.Post(base+"/loans/{id}/approve", wrapper.ApproveLoan)
		r.Post(base+"/loans/{id}/reject", wrapper.RejectLoan)
		r.Get(base+"/loans/{id}/check-eligible", wrapper.CheckLoanEligible)
		r.Post(base+"/loans/{id}/check-eligible", wrapper.CheckLoanEligible)
		r.Get(base+"/loans/{id}/check-approved", wrapper.CheckLoanApproved)
		r.Post(base+"/loans/{id}/check-approved", wrapper.CheckLoanApproved)
		r.Get(base+"/airtime", wrapper.ListAirtimePurchases)
		r.Post(base+"/airtime", wrapper.PurchaseAirtime)
		r.Get(base+"/airtime/{id}", wrapper.GetAirtimePurchaseById)
		r.Patch(base+"/airtime/{id}/status", wrapper.UpdateAirtimeStatus)
		r.Get(base+"/airtime/{id}/check-completed", wrapper.CheckAirtimeCompleted)
		r.Post(base+"/airtime/{id}/check-completed", wrapper.CheckAirtimeCompleted)
		r.Get(base+"/kyc", wrapper.ListKycRecords)
		r.Get(base+"/kyc/{customerId}", wrapper.GetKycByCustomerId)
		r.Patch(base+"/kyc/{customerId}/status", wrapper.UpdateKycStatus)
		r.Post(base+"/kyc/{customerId}/refresh", wrapper.RefreshKyc)
		r.Get(base+"/kyc/{customerId}/check-approved", wrapper.CheckKycApproved)
		r.Post(base+"/kyc/{customerId}/check-approved", wrapper.CheckKycApproved)
		r.Get(base+"/limits/{accountId}", wrapper.GetAccountLimits)
		r.Patch(base+"/limits/{accountId}", wrapper.UpdateAccountLimits)
		r.Get(base+"/limits/{accountId}/check-available", wrapper.CheckLimitAvailable)
		r.Post(base+"/limits/{accountId}/check-available", wrapper.CheckLimitAvailable)
	})

	return r
}
