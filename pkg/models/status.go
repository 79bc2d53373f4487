package models

// AccountStatus defines the possible states of an account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
	AccountClosed    AccountStatus = "closed"
)

// Valid reports whether s is a known account status.
func (s AccountStatus) Valid() bool {
	switch s {
	case AccountActive, AccountSuspended, AccountClosed:
		return true
	}
	return false
}

// AccountType defines the kinds of account that can be opened.
type AccountType string

const (
	AccountSavings AccountType = "savings"
	AccountCurrent AccountType = "current"
	AccountWallet  AccountType = "wallet"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountSavings, AccountCurrent, AccountWallet:
		return true
	}
	return false
}

// TransactionType is the direction of a transaction relative to its account.
type TransactionType string

const (
	Debit  TransactionType = "debit"
	Credit TransactionType = "credit"
)

func (t TransactionType) Valid() bool {
	switch t {
	case Debit, Credit:
		return true
	}
	return false
}

// TransactionStatus defines the possible states of a transaction.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionCleared TransactionStatus = "cleared"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionPending, TransactionCleared:
		return true
	}
	return false
}

// PaymentStatus defines the possible states of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentCancelled:
		return true
	}
	return false
}

// PaymentMethod is the rail a payment is sent over.
type PaymentMethod string

const (
	BankTransfer PaymentMethod = "bank_transfer"
	MobileMoney  PaymentMethod = "mobile_money"
	Card         PaymentMethod = "card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case BankTransfer, MobileMoney, Card:
		return true
	}
	return false
}

// LoanStatus defines the possible states of a loan application.
type LoanStatus string

const (
	LoanPending   LoanStatus = "pending"
	LoanApproved  LoanStatus = "approved"
	LoanRejected  LoanStatus = "rejected"
	LoanDisbursed LoanStatus = "disbursed"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanApproved, LoanRejected, LoanDisbursed:
		return true
	}
	return false
}

// AirtimeStatus defines the possible states of an airtime purchase.
type AirtimeStatus string

const (
	AirtimePending   AirtimeStatus = "pending"
	AirtimeCompleted AirtimeStatus = "completed"
)

func (s AirtimeStatus) Valid() bool {
	switch s {
	case AirtimePending, AirtimeCompleted:
		return true
	}
	return false
}

// DeliveryStatus tracks whether purchased airtime reached the handset.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// KycStatus defines the possible states of a customer's KYC record.
type KycStatus string

const (
	KycPending  KycStatus = "pending"
	KycApproved KycStatus = "approved"
	KycRejected KycStatus = "rejected"
)

func (s KycStatus) Valid() bool {
	switch s {
	case KycPending, KycApproved, KycRejected:
		return true
	}
	return false
}

// RiskRating is the risk band assigned during KYC review.
type RiskRating string

const (
	RiskLow    RiskRating = "low"
	RiskMedium RiskRating = "medium"
	RiskHigh   RiskRating = "high"
)

func (r RiskRating) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// LimitPeriod selects which window of an account limit applies.
type LimitPeriod string

const (
	Daily   LimitPeriod = "daily"
	Monthly LimitPeriod = "monthly"
)

func (p LimitPeriod) Valid() bool {
	switch p {
	case Daily, Monthly:
		return true
	}
	return false
}
