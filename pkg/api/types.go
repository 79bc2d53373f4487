// Package api defines the HTTP surface: request bodies, query parameters,
// response envelopes and the route table.
package api

import (
	"bytes"
	"encoding/json"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// NewAccount is the request body for opening an account.
type NewAccount struct {
	CustomerId string   `json:"customerId"`
	Type       *string  `json:"type,omitempty"`
	Currency   *string  `json:"currency,omitempty"`
	Balance    *float64 `json:"balance,omitempty"`
}

// StatusUpdate is the request body of every PATCH .../status route without extra fields.
type StatusUpdate struct {
	Status string `json:"status"`
}

type NewTransaction struct {
	AccountId    string  `json:"accountId"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Currency     *string `json:"currency,omitempty"`
	Counterparty *string `json:"counterparty,omitempty"`
	Reference    *string `json:"reference,omitempty"`
	Description  *string `json:"description,omitempty"`
}

// NewPayment is the request body for creating a payment.
// KycComplete and SufficientBalance are derived when omitted.
type NewPayment struct {
	AccountId          string  `json:"accountId"`
	BeneficiaryName    string  `json:"beneficiaryName"`
	BeneficiaryAccount *string `json:"beneficiaryAccount,omitempty"`
	Amount             float64 `json:"amount"`
	Currency           *string `json:"currency,omitempty"`
	Method             *string `json:"method,omitempty"`
	Narration          *string `json:"narration,omitempty"`
	KycComplete        *bool   `json:"kycComplete,omitempty"`
	SufficientBalance  *bool   `json:"sufficientBalance,omitempty"`
}

// LoanApplication is the request body for applying for a loan. Tenure is in months.
type LoanApplication struct {
	CustomerId string  `json:"customerId"`
	AccountId  string  `json:"accountId"`
	Amount     float64 `json:"amount"`
	Tenure     int     `json:"tenure"`
	Purpose    *string `json:"purpose,omitempty"`
}

type LoanStatusUpdate struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

type LoanRejection struct {
	Reason *string `json:"reason,omitempty"`
}

type NewAirtimePurchase struct {
	AccountId   string  `json:"accountId"`
	PhoneNumber string  `json:"phoneNumber"`
	Amount      float64 `json:"amount"`
	Currency    *string `json:"currency,omitempty"`
	Provider    string  `json:"provider"`
}

type KycStatusUpdate struct {
	Status          string  `json:"status"`
	Level           *string `json:"level,omitempty"`
	RiskRating      *string `json:"riskRating,omitempty"`
	RejectionReason *string `json:"rejectionReason,omitempty"`
}

type KycRefresh struct {
	Documents []string `json:"documents"`
}

type LimitUpdate struct {
	DailyLimit   *float64 `json:"dailyLimit,omitempty"`
	MonthlyLimit *float64 `json:"monthlyLimit,omitempty"`
	DailyUsed    *float64 `json:"dailyUsed,omitempty"`
	MonthlyUsed  *float64 `json:"monthlyUsed,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
}

// LimitCheck is the optional body of POST /limits/{accountId}/check-available.
type LimitCheck struct {
	Amount Amount  `json:"amount"`
	Period *string `json:"period,omitempty"`
}

// Amount holds a JSON number or numeric string verbatim so checkers can report bad input.
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Amount(s)
		return nil
	}
	*a = Amount(b)
	return nil
}

// AccountBalance is the view returned by GET /accounts/{id}/balance.
type AccountBalance struct {
	AccountId     string               `json:"accountId"`
	AccountNumber string               `json:"accountNumber"`
	Balance       float64              `json:"balance"`
	Currency      string               `json:"currency"`
	Status        models.AccountStatus `json:"status"`
}

// LimitView is an account limit with its derived availability.
type LimitView struct {
	models.AccountLimit
	DailyRemaining   float64 `json:"dailyRemaining"`
	MonthlyRemaining float64 `json:"monthlyRemaining"`
	DailyAvailable   bool    `json:"dailyAvailable"`
	MonthlyAvailable bool    `json:"monthlyAvailable"`
}

type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ListAccountsParams defines parameters for ListAccounts.
type ListAccountsParams struct {
	CustomerId *string `form:"customerId,omitempty" json:"customerId,omitempty"`
	Status     *string `form:"status,omitempty" json:"status,omitempty"`
	Type       *string `form:"type,omitempty" json:"type,omitempty"`
	Currency   *string `form:"currency,omitempty" json:"currency,omitempty"`
}

// ListTransactionsParams defines parameters for ListTransactions.
type ListTransactionsParams struct {
	AccountId *string `form:"accountId,omitempty" json:"accountId,omitempty"`
	Type      *string `form:"type,omitempty" json:"type,omitempty"`
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	StartDate *string `form:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate   *string `form:"endDate,omitempty" json:"endDate,omitempty"`
}

// ListPaymentsParams defines parameters for ListPayments.
type ListPaymentsParams struct {
	AccountId *string `form:"accountId,omitempty" json:"accountId,omitempty"`
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Method    *string `form:"method,omitempty" json:"method,omitempty"`
}

// ListLoansParams defines parameters for ListLoans.
type ListLoansParams struct {
	CustomerId *string `form:"customerId,omitempty" json:"customerId,omitempty"`
	AccountId  *string `form:"accountId,omitempty" json:"accountId,omitempty"`
	Status     *string `form:"status,omitempty" json:"status,omitempty"`
}

// ListAirtimePurchasesParams defines parameters for ListAirtimePurchases.
type ListAirtimePurchasesParams struct {
	AccountId   *string `form:"accountId,omitempty" json:"accountId,omitempty"`
	Status      *string `form:"status,omitempty" json:"status,omitempty"`
	Provider    *string `form:"provider,omitempty" json:"provider,omitempty"`
	PhoneNumber *string `form:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
}

// ListKycRecordsParams defines parameters for ListKycRecords.
type ListKycRecordsParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
	Level  *string `form:"level,omitempty" json:"level,omitempty"`
}

// CheckLimitAvailableParams defines parameters for CheckLimitAvailable.
// Amount stays a string so malformed input folds into a false verdict.
type CheckLimitAvailableParams struct {
	Amount *string `form:"amount,omitempty" json:"amount,omitempty"`
	Period *string `form:"period,omitempty" json:"period,omitempty"`
}
