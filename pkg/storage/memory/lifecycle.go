package memory

import (
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// kycValidity is how long an approved KYC verification stays valid.
const kycValidity = 365 * 24 * time.Hour

// setOnce stamps a terminal timestamp the first time a record enters a state.
func setOnce(field **time.Time, now time.Time) {
	if *field == nil {
		*field = ptr(now)
	}
}

var accountTransitions = map[models.AccountStatus]func(*models.Account, time.Time){
	models.AccountClosed: func(a *models.Account, now time.Time) { setOnce(&a.ClosedAt, now) },
}

var transactionTransitions = map[models.TransactionStatus]func(*models.Transaction, time.Time){
	models.TransactionCleared: func(t *models.Transaction, now time.Time) { setOnce(&t.ClearedAt, now) },
}

var paymentTransitions = map[models.PaymentStatus]func(*models.Payment, time.Time){
	models.PaymentCompleted: func(p *models.Payment, now time.Time) { setOnce(&p.CompletedAt, now) },
	models.PaymentCancelled: func(p *models.Payment, now time.Time) { setOnce(&p.CancelledAt, now) },
}

var loanTransitions = map[models.LoanStatus]func(*models.Loan, time.Time){
	models.LoanApproved:  func(l *models.Loan, now time.Time) { setOnce(&l.ApprovedAt, now) },
	models.LoanRejected:  func(l *models.Loan, now time.Time) { setOnce(&l.RejectedAt, now) },
	models.LoanDisbursed: func(l *models.Loan, now time.Time) { setOnce(&l.DisbursedAt, now) },
}

var airtimeTransitions = map[models.AirtimeStatus]func(*models.AirtimePurchase, time.Time){
	models.AirtimeCompleted: func(a *models.AirtimePurchase, now time.Time) {
		setOnce(&a.CompletedAt, now)
		a.DeliveryStatus = models.DeliveryDelivered
	},
}

var kycTransitions = map[models.KycStatus]func(*models.KycRecord, time.Time){
	models.KycApproved: func(k *models.KycRecord, now time.Time) {
		setOnce(&k.VerifiedAt, now)
		setOnce(&k.ExpiresAt, now.Add(kycValidity))
	},
}

// transition sets the new status and applies the side effects registered for it.
func transition[S comparable, R any](status *S, next S, record *R, rules map[S]func(*R, time.Time), now time.Time) {
	*status = next
	if rule, ok := rules[next]; ok {
		rule(record, now)
	}
}
