package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/websockets"
)

// TimerScheduler implements the Scheduler interface with in-process timers.
//
// An explicit status update that cancels a completion before its timer fires always wins:
// the timer is removed under the lock, and the completer only moves purchases that are
// still pending.
type TimerScheduler struct {
	completer AirtimeCompleter
	publisher websockets.Publisher
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[string]*task
	stopped bool
}

type task struct {
	timer *time.Timer
	ctx   context.Context
}

// Option configures a TimerScheduler.
type Option func(*TimerScheduler)

// WithPublisher announces every applied completion to p.
func WithPublisher(p websockets.Publisher) Option {
	return func(s *TimerScheduler) { s.publisher = p }
}

// NewTimerScheduler creates a new TimerScheduler.
func NewTimerScheduler(completer AirtimeCompleter, logger *slog.Logger, opts ...Option) *TimerScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &TimerScheduler{
		completer: completer,
		publisher: &websockets.NoOpPublisher{},
		logger:    logger,
		pending:   make(map[string]*task),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Make sure we conform to the interface
var _ Scheduler = (*TimerScheduler)(nil)

// ScheduleCompletion replaces any completion already pending for the purchase.
func (s *TimerScheduler) ScheduleCompletion(ctx context.Context, purchaseID string, delay time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	if prev, ok := s.pending[purchaseID]; ok {
		prev.timer.Stop()
	}

	// The request context ends with the response; keep its values but not its cancellation.
	t := &task{ctx: context.WithoutCancel(ctx)}
	t.timer = time.AfterFunc(delay, func() { s.fire(purchaseID, t) })
	s.pending[purchaseID] = t

	s.logger.Debug("airtime completion scheduled", "purchaseId", purchaseID, "delay", delay.String())
	return nil
}

// CancelCompletion drops a pending completion.
func (s *TimerScheduler) CancelCompletion(purchaseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.pending[purchaseID]
	if !ok {
		return false
	}
	t.timer.Stop()
	delete(s.pending, purchaseID)

	s.logger.Debug("airtime completion cancelled", "purchaseId", purchaseID)
	return true
}

// Stop cancels every pending completion and refuses new ones.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.pending {
		t.timer.Stop()
		delete(s.pending, id)
	}
	s.stopped = true
}

// Pending returns the number of completions waiting to fire.
func (s *TimerScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *TimerScheduler) fire(purchaseID string, t *task) {
	s.mu.Lock()
	if s.pending[purchaseID] != t {
		// Cancelled or replaced after the timer had already started.
		s.mu.Unlock()
		return
	}
	delete(s.pending, purchaseID)
	s.mu.Unlock()

	purchase, applied, err := s.completer.CompletePendingAirtime(t.ctx, purchaseID)
	if err != nil {
		s.logger.Error("failed to complete airtime purchase", "purchaseId", purchaseID, "error", err)
		return
	}
	if !applied {
		s.logger.Info("airtime completion skipped", "purchaseId", purchaseID, "status", purchase.Status)
		return
	}
	s.logger.Info("airtime purchase completed", "purchaseId", purchaseID)

	at := purchase.UpdatedAt
	if purchase.CompletedAt != nil {
		at = *purchase.CompletedAt
	}
	msg := websockets.StatusChange("airtime", purchase.Id, string(purchase.Status), models.ISO(at))
	if err := s.publisher.Publish(t.ctx, msg); err != nil {
		s.logger.Error("failed to publish airtime completion", "purchaseId", purchaseID, "error", err)
	}
}
