package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ISOLayout renders timestamps the way list filters compare them.
const ISOLayout = "2006-01-02T15:04:05.000Z07:00"

// ISO formats t in UTC using ISOLayout.
func ISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// Account represents a customer's bank account.
type Account struct {
	Id            string        `json:"id"`
	CustomerId    string        `json:"customerId"`
	AccountNumber string        `json:"accountNumber"`
	Type          AccountType   `json:"type"`
	Currency      string        `json:"currency"`
	Balance       float64       `json:"balance"`
	Status        AccountStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	ClosedAt      *time.Time    `json:"closedAt,omitempty"`
}

// AccountPatch holds the mutable fields of an account.
type AccountPatch struct {
	Status *AccountStatus
}

// Transaction represents a single debit or credit posted against an account.
type Transaction struct {
	Id           string            `json:"id"`
	AccountId    string            `json:"accountId"`
	Type         TransactionType   `json:"type"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	Counterparty string            `json:"counterparty,omitempty"`
	Reference    string            `json:"reference"`
	Description  string            `json:"description,omitempty"`
	Status       TransactionStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
	ClearedAt    *time.Time        `json:"clearedAt,omitempty"`
}

type TransactionPatch struct {
	Status *TransactionStatus
}

// Payment represents an outbound payment to a beneficiary.
type Payment struct {
	Id                 string        `json:"id"`
	AccountId          string        `json:"accountId"`
	BeneficiaryName    string        `json:"beneficiaryName"`
	BeneficiaryAccount string        `json:"beneficiaryAccount,omitempty"`
	Amount             float64       `json:"amount"`
	Currency           string        `json:"currency"`
	Method             PaymentMethod `json:"method"`
	Narration          string        `json:"narration,omitempty"`
	KycComplete        bool          `json:"kycComplete"`
	SufficientBalance  bool          `json:"sufficientBalance"`
	Status             PaymentStatus `json:"status"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	CompletedAt        *time.Time    `json:"completedAt,omitempty"`
	CancelledAt        *time.Time    `json:"cancelledAt,omitempty"`
}

type PaymentPatch struct {
	Status *PaymentStatus
}

// Loan represents a loan application and its pricing.
type Loan struct {
	Id              string     `json:"id"`
	CustomerId      string     `json:"customerId"`
	AccountId       string     `json:"accountId"`
	Amount          float64    `json:"amount"`
	Tenure          int        `json:"tenure"`
	Purpose         string     `json:"purpose,omitempty"`
	InterestRate    float64    `json:"interestRate"`
	MonthlyPayment  float64    `json:"monthlyPayment"`
	CreditScore     int        `json:"creditScore"`
	Eligible        bool       `json:"eligible"`
	Status          LoanStatus `json:"status"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	DisbursedAt     *time.Time `json:"disbursedAt,omitempty"`
}

type LoanPatch struct {
	Status          *LoanStatus
	RejectionReason *string
}

// AirtimePurchase represents a mobile airtime top-up paid from an account.
type AirtimePurchase struct {
	Id             string         `json:"id"`
	AccountId      string         `json:"accountId"`
	PhoneNumber    string         `json:"phoneNumber"`
	Amount         float64        `json:"amount"`
	Currency       string         `json:"currency"`
	Provider       string         `json:"provider"`
	Status         AirtimeStatus  `json:"status"`
	DeliveryStatus DeliveryStatus `json:"deliveryStatus"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
}

type AirtimePatch struct {
	Status *AirtimeStatus
}

// KycRecord is the know-your-customer state of a single customer.
type KycRecord struct {
	CustomerId      string     `json:"customerId"`
	Status          KycStatus  `json:"status"`
	Level           string     `json:"level"`
	Documents       []string   `json:"documents"`
	RiskRating      RiskRating `json:"riskRating"`
	PendingItems    []string   `json:"pendingItems"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	LastRefreshedAt *time.Time `json:"lastRefreshedAt,omitempty"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
}

// Clone returns a copy of k that shares no slices with it.
func (k KycRecord) Clone() KycRecord {
	k.Documents = append([]string{}, k.Documents...)
	k.PendingItems = append([]string{}, k.PendingItems...)
	return k
}

type KycPatch struct {
	Status          *KycStatus
	Level           *string
	RiskRating      *RiskRating
	Documents       []string
	PendingItems    []string
	RejectionReason *string
	Refreshed       bool
}

// AccountLimit holds the spending limits and usage of a single account.
type AccountLimit struct {
	AccountId    string    `json:"accountId"`
	DailyLimit   float64   `json:"dailyLimit"`
	MonthlyLimit float64   `json:"monthlyLimit"`
	DailyUsed    float64   `json:"dailyUsed"`
	MonthlyUsed  float64   `json:"monthlyUsed"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Limits applied to an account before any are set explicitly.
const (
	DefaultDailyLimit   = 5000.0
	DefaultMonthlyLimit = 50000.0
)

// NewAccountLimit returns the default limits for an account with no usage.
func NewAccountLimit(accountID, currency string) AccountLimit {
	return AccountLimit{
		AccountId:    accountID,
		DailyLimit:   DefaultDailyLimit,
		MonthlyLimit: DefaultMonthlyLimit,
		Currency:     currency,
	}
}

// Window returns the limit and usage for the given period.
func (l AccountLimit) Window(p LimitPeriod) (limit, used float64) {
	if p == Monthly {
		return l.MonthlyLimit, l.MonthlyUsed
	}
	return l.DailyLimit, l.DailyUsed
}

// Remaining returns limit minus used for the given period.
func (l AccountLimit) Remaining(p LimitPeriod) float64 {
	limit, used := l.Window(p)
	return decimal.NewFromFloat(limit).Sub(decimal.NewFromFloat(used)).InexactFloat64()
}

type LimitPatch struct {
	DailyLimit   *float64
	MonthlyLimit *float64
	DailyUsed    *float64
	MonthlyUsed  *float64
	Currency     *string
}
