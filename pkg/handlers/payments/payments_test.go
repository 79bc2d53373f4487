package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/chris/fintech-checker-api/pkg/storage"
	"github.com/chris/fintech-checker-api/pkg/storage/memory"
	"github.com/chris/fintech-checker-api/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentEnvelope struct {
	Data models.Payment `json:"data"`
}

func newStore(t *testing.T, balance float64, kyc *models.KycStatus) (*memory.Store, *models.Account) {
	t.Helper()
	ctx := context.Background()
	store := memory.New()
	a, err := store.CreateAccount(ctx, &models.Account{CustomerId: "cust-001", Type: models.AccountSavings, Currency: "USD", Balance: balance})
	require.NoError(t, err)
	if kyc != nil {
		_, err := store.UpsertKyc(ctx, "cust-001", models.KycPatch{Status: kyc})
		require.NoError(t, err)
	}
	return store, a
}

func create(t *testing.T, h *PaymentsHandler, body string) (*httptest.ResponseRecorder, models.Payment) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.CreatePayment(rr, httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body)))
	var resp paymentEnvelope
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	return rr, resp.Data
}

func TestCreatePayment(t *testing.T) {
	approved := models.KycApproved

	t.Run("Derived Flags Ready", func(t *testing.T) {
		store, a := newStore(t, 1000, &approved)
		rr, p := create(t, NewPaymentsHandler(store), fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"Jane","amount":500}`, a.Id))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "pay-001", p.Id)
		assert.Equal(t, models.BankTransfer, p.Method)
		assert.Equal(t, "USD", p.Currency)
		assert.True(t, p.KycComplete)
		assert.True(t, p.SufficientBalance)
		assert.Equal(t, models.PaymentPending, p.Status)
	})

	t.Run("Derived Flags Not Ready", func(t *testing.T) {
		store, a := newStore(t, 100, nil)
		rr, p := create(t, NewPaymentsHandler(store), fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"Jane","amount":500}`, a.Id))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.False(t, p.KycComplete)
		assert.False(t, p.SufficientBalance)
	})

	t.Run("Explicit Flags Win", func(t *testing.T) {
		store, a := newStore(t, 100, nil)
		rr, p := create(t, NewPaymentsHandler(store), fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"Jane","amount":500,"kycComplete":true,"sufficientBalance":true}`, a.Id))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.True(t, p.KycComplete)
		assert.True(t, p.SufficientBalance)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		store := memory.New()
		rr, _ := create(t, NewPaymentsHandler(store), `{"accountId":"acc-404","beneficiaryName":"Jane","amount":5}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	testCases := []struct {
		name string
		body string
	}{
		{"Missing Beneficiary", `{"accountId":"acc-001","amount":5}`},
		{"Zero Amount", `{"accountId":"acc-001","beneficiaryName":"Jane","amount":0}`},
		{"Invalid Method", `{"accountId":"acc-001","beneficiaryName":"Jane","amount":5,"method":"cheque"}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, _ := newStore(t, 100, nil)
			rr, _ := create(t, NewPaymentsHandler(store), tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			all, _ := store.ListPayments(context.Background(), storage.PaymentFilter{})
			assert.Empty(t, all)
		})
	}

	t.Run("KYC Lookup Failure", func(t *testing.T) {
		mockStore := mocks.NewPaymentStore(t)
		mockStore.On("GetAccount", mock.Anything, "acc-001").Return(&models.Account{Id: "acc-001", CustomerId: "cust-001", Currency: "USD"}, nil)
		mockStore.On("GetKyc", mock.Anything, "cust-001").Return(nil, errors.New("connection reset"))

		rr, _ := create(t, NewPaymentsHandler(mockStore), `{"accountId":"acc-001","beneficiaryName":"Jane","amount":5}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockStore.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
	})
}

func TestCancelPayment(t *testing.T) {
	store, a := newStore(t, 1000, nil)
	h := NewPaymentsHandler(store)
	_, p := create(t, h, fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"Jane","amount":5}`, a.Id))

	rr := httptest.NewRecorder()
	h.CancelPayment(rr, httptest.NewRequest(http.MethodPost, "/", nil), p.Id)
	require.Equal(t, http.StatusOK, rr.Code)
	var resp paymentEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.PaymentCancelled, resp.Data.Status)
	assert.NotNil(t, resp.Data.CancelledAt)

	t.Run("Second Cancel Conflicts", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CancelPayment(rr, httptest.NewRequest(http.MethodPost, "/", nil), p.Id)
		assert.Equal(t, http.StatusConflict, rr.Code)

		got, _ := store.GetPayment(context.Background(), p.Id)
		assert.True(t, resp.Data.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("Missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		h.CancelPayment(rr, httptest.NewRequest(http.MethodPost, "/", nil), "pay-404")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCheckPaymentReady(t *testing.T) {
	approved := models.KycApproved
	store, a := newStore(t, 1000, &approved)
	h := NewPaymentsHandler(store)
	_, p := create(t, h, fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"Jane","amount":5}`, a.Id))

	check := func(id string) api.CheckResponse {
		rr := httptest.NewRecorder()
		h.CheckPaymentReady(rr, httptest.NewRequest(http.MethodGet, "/", nil), id)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.CheckResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}

	first := check(p.Id)
	assert.True(t, first.Result)
	assert.Equal(t, first.Reason, check(p.Id).Reason)

	rr := httptest.NewRecorder()
	h.UpdatePaymentStatus(rr, httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"status":"completed"}`)), p.Id)
	require.Equal(t, http.StatusOK, rr.Code)

	after := check(p.Id)
	assert.False(t, after.Result)
	assert.Equal(t, "Payment is completed", after.Reason)

	missing := check("pay-404")
	assert.False(t, missing.Result)
	assert.Equal(t, "Payment not found", missing.Reason)
}

func TestListPayments(t *testing.T) {
	store, a := newStore(t, 1000, nil)
	h := NewPaymentsHandler(store)
	create(t, h, fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"A","amount":5,"method":"card"}`, a.Id))
	create(t, h, fmt.Sprintf(`{"accountId":%q,"beneficiaryName":"B","amount":5}`, a.Id))

	method := "card"
	rr := httptest.NewRecorder()
	h.ListPayments(rr, httptest.NewRequest(http.MethodGet, "/payments?method=card", nil), api.ListPaymentsParams{Method: &method})

	var resp struct {
		Data  []models.Payment `json:"data"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "A", resp.Data[0].BeneficiaryName)
}
