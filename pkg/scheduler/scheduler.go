package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
)

// ErrStopped is returned when scheduling on a scheduler that has been stopped.
var ErrStopped = errors.New("scheduler stopped")

// Scheduler defines the interface for a component that completes airtime purchases after a delay.
type Scheduler interface {
	// ScheduleCompletion arranges for the purchase to be completed once delay has elapsed.
	ScheduleCompletion(ctx context.Context, purchaseID string, delay time.Duration) error

	// CancelCompletion drops a pending completion. It reports whether one was pending.
	CancelCompletion(purchaseID string) bool

	// Stop cancels every pending completion and refuses new ones.
	Stop()
}

// AirtimeCompleter applies a deferred completion to the store.
type AirtimeCompleter interface {
	CompletePendingAirtime(ctx context.Context, id string) (*models.AirtimePurchase, bool, error)
}
