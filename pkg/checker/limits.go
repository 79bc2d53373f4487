package checker

import (
	"fmt"
	"math"
	"strconv"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// LimitQuery is the raw input of a limit availability check.
// Amount is kept as text so malformed input folds into a false verdict instead of an error.
type LimitQuery struct {
	Amount string
	Period string
}

// LimitAvailable passes when the remaining limit for the period covers the amount.
// An invalid amount or period yields a false verdict without computing the remaining limit.
func LimitAvailable(l *models.AccountLimit, q LimitQuery) Result {
	period := models.LimitPeriod(q.Period)
	if period == "" {
		period = models.Daily
	}
	meta := map[string]any{
		"accountId": l.AccountId,
		"period":    period,
		"currency":  l.Currency,
	}

	amount, err := strconv.ParseFloat(q.Amount, 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		meta["amount"] = q.Amount
		return Result{Result: false, Reason: "A positive numeric amount is required", Metadata: meta}
	}
	meta["amount"] = amount

	if !period.Valid() {
		return Result{
			Result:   false,
			Reason:   fmt.Sprintf("Unsupported period %q, expected daily or monthly", q.Period),
			Metadata: meta,
		}
	}

	limit, used := l.Window(period)
	remaining := l.Remaining(period)
	meta["limit"] = limit
	meta["used"] = used
	meta["remaining"] = remaining

	if remaining >= amount {
		return Result{
			Result:   true,
			Reason:   fmt.Sprintf("Amount is within the %s limit", period),
			Metadata: meta,
		}
	}
	return Result{
		Result:   false,
		Reason:   fmt.Sprintf("Amount exceeds the remaining %s limit of %s", period, strconv.FormatFloat(remaining, 'f', -1, 64)),
		Metadata: meta,
	}
}
