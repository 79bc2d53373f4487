package memory

import (
	"context"
	"testing"

	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids[T any](rows []T, id func(T) string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = id(r)
	}
	return out
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, _ = store.CreateAccount(ctx, &models.Account{CustomerId: "cust-001", Type: models.AccountSavings, Currency: "USD"})
	_, _ = store.CreateAccount(ctx, &models.Account{CustomerId: "cust-002", Type: models.AccountCurrent, Currency: "NGN"})
	_, _ = store.CreateAccount(ctx, &models.Account{CustomerId: "cust-001", Type: models.AccountCurrent, Currency: "USD"})
	suspended := models.AccountSuspended
	_, _ = store.UpdateAccount(ctx, "acc-002", models.AccountPatch{Status: &suspended})

	accountID := func(a models.Account) string { return a.Id }

	testCases := []struct {
		name     string
		filter   storage.AccountFilter
		expected []string
	}{
		{"No Filter Keeps Creation Order", storage.AccountFilter{}, []string{"acc-001", "acc-002", "acc-003"}},
		{"By Customer", storage.AccountFilter{CustomerId: "cust-001"}, []string{"acc-001", "acc-003"}},
		{"By Status", storage.AccountFilter{Status: models.AccountSuspended}, []string{"acc-002"}},
		{"By Type And Currency", storage.AccountFilter{Type: models.AccountCurrent, Currency: "USD"}, []string{"acc-003"}},
		{"No Match", storage.AccountFilter{Currency: "EUR"}, []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.ListAccounts(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ids(got, accountID))
		})
	}
}

func TestListTransactionsDateRange(t *testing.T) {
	ctx := context.Background()
	// The test clock ticks one second per call, so the three creates land at :00, :01 and :02.
	store := newTestStore()

	_, _ = store.CreateTransaction(ctx, &models.Transaction{AccountId: "acc-001", Type: models.Debit, Amount: 10})
	_, _ = store.CreateTransaction(ctx, &models.Transaction{AccountId: "acc-001", Type: models.Credit, Amount: 20})
	_, _ = store.CreateTransaction(ctx, &models.Transaction{AccountId: "acc-002", Type: models.Debit, Amount: 30})

	txID := func(t models.Transaction) string { return t.Id }

	testCases := []struct {
		name     string
		filter   storage.TransactionFilter
		expected []string
	}{
		{"Inclusive Start", storage.TransactionFilter{StartDate: "2024-01-15T10:00:01.000Z"}, []string{"txn-002", "txn-003"}},
		{"Inclusive End", storage.TransactionFilter{EndDate: "2024-01-15T10:00:01.000Z"}, []string{"txn-001", "txn-002"}},
		{"Both Bounds", storage.TransactionFilter{StartDate: "2024-01-15T10:00:01.000Z", EndDate: "2024-01-15T10:00:01.000Z"}, []string{"txn-002"}},
		{"Date Only Start", storage.TransactionFilter{StartDate: "2024-01-15"}, []string{"txn-001", "txn-002", "txn-003"}},
		{"Range Plus Account", storage.TransactionFilter{AccountId: "acc-001", StartDate: "2024-01-15T10:00:01.000Z"}, []string{"txn-002"}},
		{"By Type", storage.TransactionFilter{Type: models.Debit}, []string{"txn-001", "txn-003"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := store.ListTransactions(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ids(got, txID))
		})
	}
}

func TestListOtherResources(t *testing.T) {
	ctx := context.Background()
	store := newTestStore()

	_, _ = store.CreatePayment(ctx, &models.Payment{AccountId: "acc-001", Method: models.BankTransfer})
	_, _ = store.CreatePayment(ctx, &models.Payment{AccountId: "acc-002", Method: models.MobileMoney})
	payments, _ := store.ListPayments(ctx, storage.PaymentFilter{Method: models.MobileMoney})
	assert.Equal(t, []string{"pay-002"}, ids(payments, func(p models.Payment) string { return p.Id }))

	_, _ = store.CreateLoan(ctx, &models.Loan{CustomerId: "cust-001", AccountId: "acc-001"})
	_, _ = store.CreateLoan(ctx, &models.Loan{CustomerId: "cust-002", AccountId: "acc-002"})
	_, _ = store.ApproveLoan(ctx, "loan-002")
	loans, _ := store.ListLoans(ctx, storage.LoanFilter{Status: models.LoanApproved})
	assert.Equal(t, []string{"loan-002"}, ids(loans, func(l models.Loan) string { return l.Id }))

	_, _ = store.CreateAirtimePurchase(ctx, &models.AirtimePurchase{AccountId: "acc-001", Provider: "MTN", PhoneNumber: "+2348010000001"})
	_, _ = store.CreateAirtimePurchase(ctx, &models.AirtimePurchase{AccountId: "acc-001", Provider: "Airtel", PhoneNumber: "+2348010000002"})
	purchases, _ := store.ListAirtimePurchases(ctx, storage.AirtimeFilter{Provider: "Airtel"})
	assert.Equal(t, []string{"air-002"}, ids(purchases, func(a models.AirtimePurchase) string { return a.Id }))

	approved := models.KycApproved
	_, _ = store.UpsertKyc(ctx, "cust-001", models.KycPatch{})
	_, _ = store.UpsertKyc(ctx, "cust-002", models.KycPatch{Status: &approved})
	records, _ := store.ListKyc(ctx, storage.KycFilter{Status: models.KycApproved})
	assert.Equal(t, []string{"cust-002"}, ids(records, func(k models.KycRecord) string { return k.CustomerId }))
}
