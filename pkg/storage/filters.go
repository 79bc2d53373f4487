package storage

import (
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// Empty filter fields match everything.

type AccountFilter struct {
	CustomerId string
	Status     models.AccountStatus
	Type       models.AccountType
	Currency   string
}

func (f AccountFilter) Match(a *models.Account) bool {
	return eq(f.CustomerId, a.CustomerId) &&
		eq(string(f.Status), string(a.Status)) &&
		eq(string(f.Type), string(a.Type)) &&
		eq(f.Currency, a.Currency)
}

// TransactionFilter bounds StartDate and EndDate are inclusive and compared
// as ISO-8601 strings against the transaction's creation time.
type TransactionFilter struct {
	AccountId string
	Type      models.TransactionType
	Status    models.TransactionStatus
	StartDate string
	EndDate   string
}

func (f TransactionFilter) Match(t *models.Transaction) bool {
	return eq(f.AccountId, t.AccountId) &&
		eq(string(f.Type), string(t.Type)) &&
		eq(string(f.Status), string(t.Status)) &&
		within(t.CreatedAt, f.StartDate, f.EndDate)
}

type PaymentFilter struct {
	AccountId string
	Status    models.PaymentStatus
	Method    models.PaymentMethod
}

func (f PaymentFilter) Match(p *models.Payment) bool {
	return eq(f.AccountId, p.AccountId) &&
		eq(string(f.Status), string(p.Status)) &&
		eq(string(f.Method), string(p.Method))
}

type LoanFilter struct {
	CustomerId string
	AccountId  string
	Status     models.LoanStatus
}

func (f LoanFilter) Match(l *models.Loan) bool {
	return eq(f.CustomerId, l.CustomerId) &&
		eq(f.AccountId, l.AccountId) &&
		eq(string(f.Status), string(l.Status))
}

type AirtimeFilter struct {
	AccountId   string
	Status      models.AirtimeStatus
	Provider    string
	PhoneNumber string
}

func (f AirtimeFilter) Match(a *models.AirtimePurchase) bool {
	return eq(f.AccountId, a.AccountId) &&
		eq(string(f.Status), string(a.Status)) &&
		eq(f.Provider, a.Provider) &&
		eq(f.PhoneNumber, a.PhoneNumber)
}

type KycFilter struct {
	Status models.KycStatus
	Level  string
}

func (f KycFilter) Match(k *models.KycRecord) bool {
	return eq(string(f.Status), string(k.Status)) && eq(f.Level, k.Level)
}

func eq(want, got string) bool {
	return want == "" || want == got
}

func within(t time.Time, start, end string) bool {
	ts := models.ISO(t)
	if start != "" && ts < start {
		return false
	}
	if end != "" && ts > end {
		return false
	}
	return true
}
