package limits

import (
	"context"
	"encoding/json"
	"errors"
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

type limitEnvelope struct {
	Data api.LimitView `json:"data"`
}

func newStore(t *testing.T) (*memory.Store, *models.Account) {
	t.Helper()
	store := memory.New()
	a, err := store.CreateAccount(context.Background(), &models.Account{CustomerId: "cust-001", Type: models.AccountCurrent, Currency: "KES"})
	require.NoError(t, err)
	return store, a
}

func patch(t *testing.T, h *LimitsHandler, accountId, body string) (*httptest.ResponseRecorder, api.LimitView) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.UpdateAccountLimits(rr, httptest.NewRequest(http.MethodPatch, "/limits/"+accountId, strings.NewReader(body)), accountId)
	var resp limitEnvelope
	_ = json.Unmarshal(rr.Body.Bytes(), &resp)
	return rr, resp.Data
}

func TestGetAccountLimits(t *testing.T) {
	t.Run("Defaults For Account Without Limits", func(t *testing.T) {
		store, a := newStore(t)
		h := NewLimitsHandler(store)

		rr := httptest.NewRecorder()
		h.GetAccountLimits(rr, httptest.NewRequest(http.MethodGet, "/", nil), a.Id)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp limitEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.DefaultDailyLimit, resp.Data.DailyLimit)
		assert.Equal(t, models.DefaultMonthlyLimit, resp.Data.MonthlyLimit)
		assert.Equal(t, "KES", resp.Data.Currency)
		assert.Equal(t, models.DefaultDailyLimit, resp.Data.DailyRemaining)
		assert.True(t, resp.Data.DailyAvailable)

		_, err := store.GetLimit(context.Background(), a.Id)
		assert.ErrorIs(t, err, storage.ErrNotFound, "defaults are not persisted")
	})

	t.Run("Derived Remaining", func(t *testing.T) {
		store, a := newStore(t)
		h := NewLimitsHandler(store)
		_, _ = patch(t, h, a.Id, `{"dailyLimit":1000,"dailyUsed":1000,"monthlyUsed":300.1}`)

		rr := httptest.NewRecorder()
		h.GetAccountLimits(rr, httptest.NewRequest(http.MethodGet, "/", nil), a.Id)

		var resp limitEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, 0.0, resp.Data.DailyRemaining)
		assert.False(t, resp.Data.DailyAvailable)
		assert.Equal(t, 49699.9, resp.Data.MonthlyRemaining)
		assert.True(t, resp.Data.MonthlyAvailable)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		store, _ := newStore(t)
		rr := httptest.NewRecorder()
		NewLimitsHandler(store).GetAccountLimits(rr, httptest.NewRequest(http.MethodGet, "/", nil), "acc-404")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "Account not found")
	})
}

func TestUpdateAccountLimits(t *testing.T) {
	t.Run("Upsert Keeps Unspecified Fields", func(t *testing.T) {
		store, a := newStore(t)
		h := NewLimitsHandler(store)

		rr, first := patch(t, h, a.Id, `{"dailyLimit":2000}`)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 2000.0, first.DailyLimit)
		assert.Equal(t, models.DefaultMonthlyLimit, first.MonthlyLimit)
		assert.Equal(t, "KES", first.Currency)

		_, second := patch(t, h, a.Id, `{"dailyUsed":150,"currency":"usd"}`)
		assert.Equal(t, 2000.0, second.DailyLimit)
		assert.Equal(t, 150.0, second.DailyUsed)
		assert.Equal(t, 1850.0, second.DailyRemaining)
		assert.Equal(t, "USD", second.Currency)
		assert.True(t, first.CreatedAt.Equal(second.CreatedAt))
	})

	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{"Negative Limit", `{"dailyLimit":-1}`, http.StatusBadRequest},
		{"Negative Usage", `{"monthlyUsed":-0.01}`, http.StatusBadRequest},
		{"Bad Currency", `{"currency":"dollars"}`, http.StatusBadRequest},
		{"Malformed", `{"dailyLimit":"a lot"}`, http.StatusBadRequest},
		{"Zero Is Allowed", `{"dailyLimit":0}`, http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, a := newStore(t)
			rr, _ := patch(t, NewLimitsHandler(store), a.Id, tc.body)
			assert.Equal(t, tc.expected, rr.Code)
		})
	}

	t.Run("Unknown Account Is Upserted", func(t *testing.T) {
		store, _ := newStore(t)
		h := NewLimitsHandler(store)
		rr, view := patch(t, h, "acc-900", `{"dailyLimit":10}`)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "acc-900", view.AccountId)
		assert.Equal(t, 10.0, view.DailyLimit)
		assert.Equal(t, models.DefaultMonthlyLimit, view.MonthlyLimit)
		assert.Equal(t, "USD", view.Currency)

		stored, err := store.GetLimit(context.Background(), "acc-900")
		require.NoError(t, err)
		assert.Equal(t, 10.0, stored.DailyLimit)

		rr = httptest.NewRecorder()
		h.GetAccountLimits(rr, httptest.NewRequest(http.MethodGet, "/", nil), "acc-900")
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestCheckLimitAvailable(t *testing.T) {
	store, a := newStore(t)
	h := NewLimitsHandler(store)
	_, _ = patch(t, h, a.Id, `{"dailyLimit":1000,"dailyUsed":250,"monthlyLimit":5000,"monthlyUsed":4800}`)

	check := func(accountId string, params api.CheckLimitAvailableParams, body string) api.CheckResponse {
		rr := httptest.NewRecorder()
		h.CheckLimitAvailable(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)), accountId, params)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.CheckResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		return resp
	}
	str := func(s string) *string { return &s }

	t.Run("Query Amount", func(t *testing.T) {
		resp := check(a.Id, api.CheckLimitAvailableParams{Amount: str("500")}, "")
		assert.True(t, resp.Result)
		assert.Equal(t, 750.0, resp.Metadata["remaining"])
	})

	t.Run("Body Amount And Period", func(t *testing.T) {
		resp := check(a.Id, api.CheckLimitAvailableParams{}, `{"amount":500,"period":"monthly"}`)
		assert.False(t, resp.Result)
		assert.Equal(t, "Amount exceeds the remaining monthly limit of 200", resp.Reason)
	})

	t.Run("Query Wins Over Body", func(t *testing.T) {
		resp := check(a.Id, api.CheckLimitAvailableParams{Amount: str("100")}, `{"amount":"900"}`)
		assert.True(t, resp.Result)
	})

	t.Run("Missing Amount", func(t *testing.T) {
		resp := check(a.Id, api.CheckLimitAvailableParams{}, "")
		assert.False(t, resp.Result)
		assert.Equal(t, "A positive numeric amount is required", resp.Reason)
	})

	t.Run("Defaults For Account Without Limits", func(t *testing.T) {
		other, err := store.CreateAccount(context.Background(), &models.Account{CustomerId: "cust-002", Type: models.AccountSavings, Currency: "USD"})
		require.NoError(t, err)

		resp := check(other.Id, api.CheckLimitAvailableParams{Amount: str("5000")}, "")
		assert.True(t, resp.Result)
	})

	t.Run("Unknown Account", func(t *testing.T) {
		resp := check("acc-404", api.CheckLimitAvailableParams{Amount: str("1")}, "")
		assert.False(t, resp.Result)
		assert.Equal(t, "Account not found", resp.Reason)
		assert.Equal(t, map[string]any{"accountId": "acc-404"}, resp.Metadata)
	})

	t.Run("Unreadable Body Is A Failed Check", func(t *testing.T) {
		for _, body := range []string{`not json`, `{"period":5,"amount":10}`} {
			resp := check(a.Id, api.CheckLimitAvailableParams{}, body)
			assert.False(t, resp.Result, body)
			assert.Equal(t, "Invalid request body", resp.Reason, body)
			assert.Equal(t, a.Id, resp.Metadata["accountId"], body)
		}
	})

	t.Run("Storage Failure", func(t *testing.T) {
		mockStore := mocks.NewLimitStore(t)
		mockStore.On("GetLimit", mock.Anything, "acc-001").Return(nil, errors.New("something went wrong"))

		rr := httptest.NewRecorder()
		NewLimitsHandler(mockStore).CheckLimitAvailable(rr, httptest.NewRequest(http.MethodGet, "/", nil), "acc-001", api.CheckLimitAvailableParams{Amount: str("1")})
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
