// Package checker holds the read-only readiness predicates exposed by the check-* endpoints.
//
// Every predicate is a pure function of the record it is given. A missing record is not an
// error: it yields a false Result whose reason names the resource and whose metadata carries
// only the requested id.
package checker

import (
	"fmt"
	"strings"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/scoring"
)

// Result is a boolean verdict with a human readable explanation.
type Result struct {
	Result   bool           `json:"result"`
	Reason   string         `json:"reason"`
	Metadata map[string]any `json:"metadata"`
}

// PendingLoanChecks are the checks reported for a loan that is not yet approved.
var PendingLoanChecks = []string{"credit_check", "document_verification", "risk_assessment"}

// NotFound is the verdict for an id that does not resolve.
func NotFound(resource, idKey, id string) Result {
	return Result{
		Result:   false,
		Reason:   resource + " not found",
		Metadata: map[string]any{idKey: id},
	}
}

// InvalidBody is the verdict for a check whose request body cannot be read.
func InvalidBody(idKey, id string) Result {
	return Result{
		Result:   false,
		Reason:   "Invalid request body",
		Metadata: map[string]any{idKey: id},
	}
}

// AccountActive passes when the account status is active.
func AccountActive(a *models.Account) Result {
	r := Result{
		Result: a.Status == models.AccountActive,
		Metadata: map[string]any{
			"accountId":     a.Id,
			"accountNumber": a.AccountNumber,
			"status":        a.Status,
		},
	}
	if r.Result {
		r.Reason = "Account is active"
	} else {
		r.Reason = fmt.Sprintf("Account is %s", a.Status)
	}
	return r
}

// TransactionCleared passes when the transaction status is cleared.
func TransactionCleared(t *models.Transaction) Result {
	r := Result{
		Result: t.Status == models.TransactionCleared,
		Metadata: map[string]any{
			"transactionId": t.Id,
			"status":        t.Status,
			"amount":        t.Amount,
			"reference":     t.Reference,
			"clearedAt":     t.ClearedAt,
		},
	}
	if r.Result {
		r.Reason = "Transaction has cleared"
	} else {
		r.Reason = fmt.Sprintf("Transaction is %s", t.Status)
	}
	return r
}

// PaymentReady passes when KYC is complete, the balance is sufficient and the payment is pending.
// Failing clauses are reported in the fixed order kyc, balance, status.
func PaymentReady(p *models.Payment) Result {
	var failures []string
	if !p.KycComplete {
		failures = append(failures, "KYC not complete")
	}
	if !p.SufficientBalance {
		failures = append(failures, "Insufficient balance")
	}
	if p.Status != models.PaymentPending {
		failures = append(failures, fmt.Sprintf("Payment is %s", p.Status))
	}

	r := Result{
		Result: len(failures) == 0,
		Metadata: map[string]any{
			"paymentId":         p.Id,
			"status":            p.Status,
			"kycComplete":       p.KycComplete,
			"sufficientBalance": p.SufficientBalance,
			"amount":            p.Amount,
		},
	}
	if r.Result {
		r.Reason = "Payment is ready for processing"
	} else {
		r.Reason = strings.Join(failures, ", ")
	}
	return r
}

// LoanEligible passes when the loan is flagged eligible and the credit score meets the minimum.
func LoanEligible(l *models.Loan) Result {
	r := Result{
		Result: l.Eligible && l.CreditScore >= scoring.MinimumCreditScore,
		Metadata: map[string]any{
			"loanId":       l.Id,
			"creditScore":  l.CreditScore,
			"minimumScore": scoring.MinimumCreditScore,
			"eligible":     l.Eligible,
		},
	}
	switch {
	case r.Result:
		r.Reason = fmt.Sprintf("Credit score %d meets the minimum of %d", l.CreditScore, scoring.MinimumCreditScore)
	case l.CreditScore < scoring.MinimumCreditScore:
		r.Reason = fmt.Sprintf("Credit score %d is below the minimum threshold of %d", l.CreditScore, scoring.MinimumCreditScore)
	default:
		r.Reason = "Customer is not eligible for this loan"
	}
	return r
}

// LoanApproved passes when the loan status is approved.
func LoanApproved(l *models.Loan) Result {
	r := Result{
		Result: l.Status == models.LoanApproved,
		Metadata: map[string]any{
			"loanId":     l.Id,
			"status":     l.Status,
			"approvedAt": l.ApprovedAt,
		},
	}
	if r.Result {
		r.Reason = "Loan has been approved"
	} else {
		r.Reason = fmt.Sprintf("Loan is %s", l.Status)
		r.Metadata["pendingChecks"] = append([]string{}, PendingLoanChecks...)
	}
	return r
}

// AirtimeCompleted passes when the purchase status is completed.
func AirtimeCompleted(a *models.AirtimePurchase) Result {
	r := Result{
		Result: a.Status == models.AirtimeCompleted,
		Metadata: map[string]any{
			"purchaseId":     a.Id,
			"status":         a.Status,
			"deliveryStatus": a.DeliveryStatus,
			"completedAt":    a.CompletedAt,
		},
	}
	if r.Result {
		r.Reason = "Airtime purchase completed"
	} else {
		r.Reason = fmt.Sprintf("Airtime purchase is %s", a.Status)
	}
	return r
}

// KycApproved passes when the customer's KYC status is approved.
func KycApproved(k *models.KycRecord) Result {
	r := Result{
		Result: k.Status == models.KycApproved,
		Metadata: map[string]any{
			"customerId":   k.CustomerId,
			"status":       k.Status,
			"level":        k.Level,
			"riskRating":   k.RiskRating,
			"pendingItems": append([]string{}, k.PendingItems...),
			"expiresAt":    k.ExpiresAt,
		},
	}
	if r.Result {
		r.Reason = "KYC is approved"
	} else {
		r.Reason = fmt.Sprintf("KYC is %s", k.Status)
	}
	return r
}
