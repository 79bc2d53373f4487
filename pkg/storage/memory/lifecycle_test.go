package memory

import (
	"context"
	"testing"
	"time"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed Stamps Once", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreatePayment(ctx, &models.Payment{AccountId: "acc-001", Amount: 100})

		completed := models.PaymentCompleted
		first, err := store.UpdatePayment(ctx, "pay-001", models.PaymentPatch{Status: &completed})
		require.NoError(t, err)
		require.NotNil(t, first.CompletedAt)

		second, err := store.UpdatePayment(ctx, "pay-001", models.PaymentPatch{Status: &completed})
		require.NoError(t, err)
		assert.Equal(t, *first.CompletedAt, *second.CompletedAt)
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
	})

	t.Run("Cancel Only From Pending", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreatePayment(ctx, &models.Payment{AccountId: "acc-001", Amount: 100})
		_, _ = store.CreatePayment(ctx, &models.Payment{AccountId: "acc-001", Amount: 100})

		cancelled, err := store.CancelPayment(ctx, "pay-001")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CancelledAt)

		completed := models.PaymentCompleted
		before, _ := store.UpdatePayment(ctx, "pay-002", models.PaymentPatch{Status: &completed})

		_, err = store.CancelPayment(ctx, "pay-002")
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)

		after, _ := store.GetPayment(ctx, "pay-002")
		assert.Equal(t, before, after)
	})
}

func TestLoanLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve Pending", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateLoan(ctx, &models.Loan{CustomerId: "cust-001", Amount: 5000})

		loan, err := store.ApproveLoan(ctx, "loan-001")
		require.NoError(t, err)
		assert.Equal(t, models.LoanApproved, loan.Status)
		assert.NotNil(t, loan.ApprovedAt)
	})

	t.Run("Approve Or Reject Non Pending Is Conflict And Leaves State", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateLoan(ctx, &models.Loan{CustomerId: "cust-001", Amount: 5000})
		_, _ = store.RejectLoan(ctx, "loan-001", "low score")
		before, _ := store.GetLoan(ctx, "loan-001")

		_, err := store.ApproveLoan(ctx, "loan-001")
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)
		_, err = store.RejectLoan(ctx, "loan-001", "another reason")
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)

		after, _ := store.GetLoan(ctx, "loan-001")
		assert.Equal(t, before, after)
		assert.Equal(t, models.LoanRejected, after.Status)
		assert.Equal(t, "low score", after.RejectionReason)
		assert.Nil(t, after.ApprovedAt)
	})

	t.Run("Approved At Never Overwritten", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateLoan(ctx, &models.Loan{CustomerId: "cust-001", Amount: 5000})

		approved := models.LoanApproved
		first, _ := store.UpdateLoan(ctx, "loan-001", models.LoanPatch{Status: &approved})
		second, _ := store.UpdateLoan(ctx, "loan-001", models.LoanPatch{Status: &approved})
		assert.Equal(t, *first.ApprovedAt, *second.ApprovedAt)
	})

	t.Run("Disbursed Stamps Disbursed At", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateLoan(ctx, &models.Loan{CustomerId: "cust-001", Amount: 5000})
		_, _ = store.ApproveLoan(ctx, "loan-001")

		disbursed := models.LoanDisbursed
		loan, err := store.UpdateLoan(ctx, "loan-001", models.LoanPatch{Status: &disbursed})
		require.NoError(t, err)
		assert.NotNil(t, loan.DisbursedAt)
		assert.NotNil(t, loan.ApprovedAt)
	})
}

func TestAirtimeLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("Explicit Completion Marks Delivered", func(t *testing.T) {
		store := newTestStore()
		created, _ := store.CreateAirtimePurchase(ctx, &models.AirtimePurchase{AccountId: "acc-001", Amount: 5})
		assert.Equal(t, models.DeliveryPending, created.DeliveryStatus)

		completed := models.AirtimeCompleted
		a, err := store.UpdateAirtimePurchase(ctx, "air-001", models.AirtimePatch{Status: &completed})
		require.NoError(t, err)
		assert.Equal(t, models.DeliveryDelivered, a.DeliveryStatus)
		assert.NotNil(t, a.CompletedAt)
	})

	t.Run("Deferred Completion Applies Only While Pending", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateAirtimePurchase(ctx, &models.AirtimePurchase{AccountId: "acc-001", Amount: 5})

		first, applied, err := store.CompletePendingAirtime(ctx, "air-001")
		require.NoError(t, err)
		assert.True(t, applied)

		second, applied, err := store.CompletePendingAirtime(ctx, "air-001")
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, first, second)
	})

	t.Run("Completed Cannot Return To Pending", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateAirtimePurchase(ctx, &models.AirtimePurchase{AccountId: "acc-001", Amount: 5})
		completed, pending := models.AirtimeCompleted, models.AirtimePending
		before, err := store.UpdateAirtimePurchase(ctx, "air-001", models.AirtimePatch{Status: &completed})
		require.NoError(t, err)

		_, err = store.UpdateAirtimePurchase(ctx, "air-001", models.AirtimePatch{Status: &pending})
		assert.ErrorIs(t, err, storage.ErrInvalidTransition)

		after, _ := store.GetAirtimePurchase(ctx, "air-001")
		assert.Equal(t, before, after)
		assert.Equal(t, models.DeliveryDelivered, after.DeliveryStatus)

		again, err := store.UpdateAirtimePurchase(ctx, "air-001", models.AirtimePatch{Status: &completed})
		require.NoError(t, err)
		assert.Equal(t, before.CompletedAt, again.CompletedAt)
	})
}

func TestKycUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Created Lazily", func(t *testing.T) {
		store := newTestStore()
		k, err := store.UpsertKyc(ctx, "cust-009", models.KycPatch{})
		require.NoError(t, err)
		assert.Equal(t, models.KycPending, k.Status)
		assert.Equal(t, "basic", k.Level)
		assert.Equal(t, models.RiskMedium, k.RiskRating)
	})

	t.Run("Approval Stamps Verification Window Once", func(t *testing.T) {
		store := newTestStore()
		approved := models.KycApproved
		first, err := store.UpsertKyc(ctx, "cust-001", models.KycPatch{Status: &approved})
		require.NoError(t, err)
		require.NotNil(t, first.VerifiedAt)
		require.NotNil(t, first.ExpiresAt)
		assert.Equal(t, first.VerifiedAt.Add(365*24*time.Hour), *first.ExpiresAt)

		second, _ := store.UpsertKyc(ctx, "cust-001", models.KycPatch{Status: &approved})
		assert.Equal(t, *first.VerifiedAt, *second.VerifiedAt)
		assert.Equal(t, *first.ExpiresAt, *second.ExpiresAt)
	})
}

func TestLimitUpsert(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults From Account Currency", func(t *testing.T) {
		store := newTestStore()
		_, _ = store.CreateAccount(ctx, &models.Account{CustomerId: "cust-001", Currency: "NGN"})

		l, err := store.UpsertLimit(ctx, "acc-001", models.LimitPatch{})
		require.NoError(t, err)
		assert.Equal(t, models.DefaultDailyLimit, l.DailyLimit)
		assert.Equal(t, models.DefaultMonthlyLimit, l.MonthlyLimit)
		assert.Equal(t, "NGN", l.Currency)
	})

	t.Run("Merges Patch", func(t *testing.T) {
		store := newTestStore()
		daily, used := 1000.0, 250.0
		_, _ = store.UpsertLimit(ctx, "acc-001", models.LimitPatch{DailyLimit: &daily})
		l, err := store.UpsertLimit(ctx, "acc-001", models.LimitPatch{DailyUsed: &used})
		require.NoError(t, err)
		assert.Equal(t, 1000.0, l.DailyLimit)
		assert.Equal(t, 250.0, l.DailyUsed)
		assert.Equal(t, 750.0, l.Remaining(models.Daily))
		assert.Equal(t, "USD", l.Currency)
	})
}
