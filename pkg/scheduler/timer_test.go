package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/scheduler/mocks"
	"github.com/chris/fintech-checker-api/pkg/storage/memory"
	"github.com/chris/fintech-checker-api/pkg/websockets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPurchase(t *testing.T, store *memory.Store) *models.AirtimePurchase {
	t.Helper()
	p, err := store.CreateAirtimePurchase(context.Background(), &models.AirtimePurchase{
		AccountId:   "acc-001",
		PhoneNumber: "+2348012345678",
		Amount:      10,
		Provider:    "MTN",
	})
	require.NoError(t, err)
	return p
}

func TestTimerScheduler_Fires(t *testing.T) {
	store := memory.New()
	s := NewTimerScheduler(store, quietLogger())
	defer s.Stop()
	p := newPurchase(t, store)

	err := s.ScheduleCompletion(context.Background(), p.Id, 10*time.Millisecond)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		got, err := store.GetAirtimePurchase(context.Background(), p.Id)
		return err == nil && got.Status == models.AirtimeCompleted
	}, time.Second, 5*time.Millisecond)

	got, _ := store.GetAirtimePurchase(context.Background(), p.Id)
	assert.Equal(t, models.DeliveryDelivered, got.DeliveryStatus)
	assert.NotNil(t, got.CompletedAt)
	assert.Zero(t, s.Pending())
}

func TestTimerScheduler_Cancel(t *testing.T) {
	store := memory.New()
	s := NewTimerScheduler(store, quietLogger())
	defer s.Stop()
	p := newPurchase(t, store)

	require.NoError(t, s.ScheduleCompletion(context.Background(), p.Id, 20*time.Millisecond))
	assert.True(t, s.CancelCompletion(p.Id))
	assert.False(t, s.CancelCompletion(p.Id))

	time.Sleep(50 * time.Millisecond)

	got, err := store.GetAirtimePurchase(context.Background(), p.Id)
	require.NoError(t, err)
	assert.Equal(t, models.AirtimePending, got.Status)
}

func TestTimerScheduler_ExplicitUpdateWins(t *testing.T) {
	ctx := context.Background()

	t.Run("Update Before Fire Without Cancel", func(t *testing.T) {
		store := memory.New()
		s := NewTimerScheduler(store, quietLogger())
		defer s.Stop()
		p := newPurchase(t, store)

		require.NoError(t, s.ScheduleCompletion(ctx, p.Id, 10*time.Millisecond))
		completed := models.AirtimeCompleted
		explicit, err := store.UpdateAirtimePurchase(ctx, p.Id, models.AirtimePatch{Status: &completed})
		require.NoError(t, err)

		assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, 5*time.Millisecond)
		time.Sleep(10 * time.Millisecond)

		got, _ := store.GetAirtimePurchase(ctx, p.Id)
		assert.Equal(t, models.AirtimeCompleted, got.Status)
		assert.Equal(t, explicit.CompletedAt, got.CompletedAt)
		assert.Equal(t, explicit.UpdatedAt, got.UpdatedAt)
	})

	t.Run("Cancelled Before Fire Stays Put", func(t *testing.T) {
		store := memory.New()
		s := NewTimerScheduler(store, quietLogger())
		defer s.Stop()
		p := newPurchase(t, store)

		require.NoError(t, s.ScheduleCompletion(ctx, p.Id, 10*time.Millisecond))
		s.CancelCompletion(p.Id)
		pending := models.AirtimePending
		_, err := store.UpdateAirtimePurchase(ctx, p.Id, models.AirtimePatch{Status: &pending})
		require.NoError(t, err)

		time.Sleep(40 * time.Millisecond)
		got, _ := store.GetAirtimePurchase(ctx, p.Id)
		assert.Equal(t, models.AirtimePending, got.Status)
		assert.Nil(t, got.CompletedAt)
	})
}

func TestTimerScheduler_Reschedule(t *testing.T) {
	done := make(chan struct{})
	completer := mocks.NewAirtimeCompleter(t)
	completer.On("CompletePendingAirtime", mock.Anything, "air-001").
		Return(&models.AirtimePurchase{Id: "air-001", Status: models.AirtimeCompleted}, true, nil).
		Run(func(args mock.Arguments) { close(done) }).Once()

	s := NewTimerScheduler(completer, quietLogger())
	defer s.Stop()

	require.NoError(t, s.ScheduleCompletion(context.Background(), "air-001", time.Hour))
	require.NoError(t, s.ScheduleCompletion(context.Background(), "air-001", 5*time.Millisecond))
	assert.Equal(t, 1, s.Pending())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion never ran")
	}
	assert.Zero(t, s.Pending())
}

func TestTimerScheduler_CompleterError(t *testing.T) {
	done := make(chan struct{})
	completer := mocks.NewAirtimeCompleter(t)
	completer.On("CompletePendingAirtime", mock.Anything, "air-404").
		Return(nil, false, errors.New("record not found")).
		Run(func(args mock.Arguments) { close(done) }).Once()

	s := NewTimerScheduler(completer, quietLogger())
	defer s.Stop()

	require.NoError(t, s.ScheduleCompletion(context.Background(), "air-404", time.Millisecond))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion never ran")
	}
}

func TestTimerScheduler_CancelledRequestContext(t *testing.T) {
	store := memory.New()
	s := NewTimerScheduler(store, quietLogger())
	defer s.Stop()
	p := newPurchase(t, store)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.ScheduleCompletion(ctx, p.Id, 10*time.Millisecond))
	cancel()

	assert.Eventually(t, func() bool {
		got, _ := store.GetAirtimePurchase(context.Background(), p.Id)
		return got.Status == models.AirtimeCompleted
	}, time.Second, 5*time.Millisecond)
}

func TestTimerScheduler_Stop(t *testing.T) {
	completer := mocks.NewAirtimeCompleter(t)
	s := NewTimerScheduler(completer, quietLogger())

	require.NoError(t, s.ScheduleCompletion(context.Background(), "air-001", 10*time.Millisecond))
	s.Stop()
	assert.Zero(t, s.Pending())

	err := s.ScheduleCompletion(context.Background(), "air-002", time.Millisecond)
	assert.ErrorIs(t, err, ErrStopped)

	time.Sleep(30 * time.Millisecond)
	completer.AssertNotCalled(t, "CompletePendingAirtime", mock.Anything, mock.Anything)
}

type recordingPublisher struct {
	messages chan websockets.Message
}

func (p *recordingPublisher) Publish(ctx context.Context, message websockets.Message) error {
	p.messages <- message
	return nil
}

func TestTimerScheduler_PublishesCompletion(t *testing.T) {
	store := memory.New()
	publisher := &recordingPublisher{messages: make(chan websockets.Message, 1)}
	s := NewTimerScheduler(store, quietLogger(), WithPublisher(publisher))
	defer s.Stop()
	p := newPurchase(t, store)

	require.NoError(t, s.ScheduleCompletion(context.Background(), p.Id, time.Millisecond))

	select {
	case msg := <-publisher.messages:
		assert.Equal(t, websockets.MessageTypeStatusChange, msg.Type)
		payload, ok := msg.Payload.(websockets.StatusChangePayload)
		require.True(t, ok)
		assert.Equal(t, "airtime", payload.Resource)
		assert.Equal(t, p.Id, payload.Id)
		assert.Equal(t, string(models.AirtimeCompleted), payload.Status)
		assert.NotEmpty(t, payload.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("completion was never published")
	}
}

func TestTimerScheduler_SkippedCompletionIsNotPublished(t *testing.T) {
	store := memory.New()
	publisher := &recordingPublisher{messages: make(chan websockets.Message, 1)}
	s := NewTimerScheduler(store, quietLogger(), WithPublisher(publisher))
	defer s.Stop()
	p := newPurchase(t, store)

	completed := models.AirtimeCompleted
	_, err := store.UpdateAirtimePurchase(context.Background(), p.Id, models.AirtimePatch{Status: &completed})
	require.NoError(t, err)
	require.NoError(t, s.ScheduleCompletion(context.Background(), p.Id, time.Millisecond))

	assert.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	assert.Empty(t, publisher.messages)
}
