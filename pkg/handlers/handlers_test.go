package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chris/fintech-checker-api/pkg/api"
	"github.com/chris/fintech-checker-api/pkg/middleware"
	"github.com/chris/fintech-checker-api/pkg/scheduler"
	"github.com/chris/fintech-checker-api/pkg/scoring"
	"github.com/chris/fintech-checker-api/pkg/storage/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data"`
	Count     *int            `json:"count"`
	Message   string          `json:"message"`
	Timestamp string          `json:"timestamp"`
	RequestId string          `json:"requestId"`
}

// newServer wires the full route table over a fresh store, the way main does.
func newServer(t *testing.T, score int) *httptest.Server {
	t.Helper()
	store := memory.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sched := scheduler.NewTimerScheduler(store, logger)
	t.Cleanup(sched.Stop)

	h := NewApiHandler(store, Options{
		Pricer:       scoring.NewPricer(scoring.FixedScorer(score)),
		Scheduler:    sched,
		AirtimeDelay: time.Hour,
		Logger:       logger,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	srv := httptest.NewServer(api.HandlerFromMux(h, r))
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHealth(t *testing.T) {
	srv := newServer(t, 700)

	resp, raw := do(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode[envelope](t, raw)
	assert.Equal(t, "success", env.Status)
	assert.NotEmpty(t, env.Timestamp)
	assert.Equal(t, resp.Header.Get(middleware.RequestIDHeader), env.RequestId)
	assert.Equal(t, api.Health{Status: "ok", Service: ServiceName}, decode[api.Health](t, env.Data))
}

func TestRequestIdIsEchoed(t *testing.T) {
	srv := newServer(t, 700)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/accounts/acc-404", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "req-123", resp.Header.Get(middleware.RequestIDHeader))
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, "Account not found", env.Message)
	assert.Equal(t, "req-123", env.RequestId)
}

func TestCheckersAcceptGetAndPost(t *testing.T) {
	srv := newServer(t, 700)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001"}`)

	paths := []string{
		"/accounts/acc-001/check-active",
		"/transactions/txn-404/check-cleared",
		"/payments/pay-404/check-ready",
		"/loans/loan-404/check-eligible",
		"/loans/loan-404/check-approved",
		"/airtime/air-404/check-completed",
		"/kyc/cust-404/check-approved",
		"/limits/acc-404/check-available",
	}
	for _, path := range paths {
		for _, method := range []string{http.MethodGet, http.MethodPost} {
			t.Run(method+" "+path, func(t *testing.T) {
				resp, raw := do(t, srv, method, path, "")
				assert.Equal(t, http.StatusOK, resp.StatusCode)

				check := decode[api.CheckResponse](t, raw)
				assert.NotEmpty(t, check.Reason)
				assert.NotEmpty(t, check.RequestId)
				assert.Equal(t, path == "/accounts/acc-001/check-active", check.Result)
			})
		}
	}
}

func TestListQueryBinding(t *testing.T) {
	srv := newServer(t, 700)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001","type":"wallet"}`)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-002"}`)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001","currency":"eur"}`)

	resp, raw := do(t, srv, http.MethodGet, "/accounts?customerId=cust-001", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	env := decode[envelope](t, raw)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	_, raw = do(t, srv, http.MethodGet, "/accounts?customerId=cust-001&type=wallet", "")
	env = decode[envelope](t, raw)
	assert.Equal(t, 1, *env.Count)

	_, raw = do(t, srv, http.MethodGet, "/accounts?currency=GBP", "")
	env = decode[envelope](t, raw)
	assert.Equal(t, 0, *env.Count)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestPaymentWorkflow(t *testing.T) {
	srv := newServer(t, 700)

	resp, _ := do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001","balance":1000}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Without KYC the payment is created but not ready.
	resp, _ = do(t, srv, http.MethodPost, "/payments", `{"accountId":"acc-001","beneficiaryName":"Jane","amount":400}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_, raw := do(t, srv, http.MethodGet, "/payments/pay-001/check-ready", "")
	check := decode[api.CheckResponse](t, raw)
	assert.False(t, check.Result)
	assert.Equal(t, "KYC not complete", check.Reason)

	// After a successful refresh new payments derive kycComplete.
	resp, _ = do(t, srv, http.MethodPost, "/kyc/cust-001/refresh", `{"documents":["passport","utility_bill"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, _ = do(t, srv, http.MethodPost, "/payments", `{"accountId":"acc-001","beneficiaryName":"Jane","amount":400}`)
	_, raw = do(t, srv, http.MethodPost, "/payments/pay-002/check-ready", "")
	assert.True(t, decode[api.CheckResponse](t, raw).Result)

	// A cancelled payment can not be cancelled again.
	resp, _ = do(t, srv, http.MethodPost, "/payments/pay-002/cancel", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, raw = do(t, srv, http.MethodPost, "/payments/pay-002/cancel", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Only pending payments can be cancelled", decode[envelope](t, raw).Message)
}

func TestLoanWorkflow(t *testing.T) {
	srv := newServer(t, 680)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001"}`)

	resp, _ := do(t, srv, http.MethodPost, "/loans", `{"customerId":"cust-001","accountId":"acc-001","amount":12000,"tenure":24}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, raw := do(t, srv, http.MethodGet, "/loans/loan-001/check-eligible", "")
	assert.True(t, decode[api.CheckResponse](t, raw).Result)

	resp, _ = do(t, srv, http.MethodPost, "/loans/loan-001/approve", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, srv, http.MethodPost, "/loans/loan-001/reject", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	_, raw = do(t, srv, http.MethodPost, "/loans/loan-001/check-approved", "")
	assert.True(t, decode[api.CheckResponse](t, raw).Result)
}

func TestLimitCheckQueryAndBody(t *testing.T) {
	srv := newServer(t, 700)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001"}`)
	resp, _ := do(t, srv, http.MethodPatch, "/limits/acc-001", `{"dailyLimit":1000,"dailyUsed":900}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, raw := do(t, srv, http.MethodGet, "/limits/acc-001/check-available?amount=100", "")
	assert.True(t, decode[api.CheckResponse](t, raw).Result)

	_, raw = do(t, srv, http.MethodPost, "/limits/acc-001/check-available", `{"amount":101}`)
	check := decode[api.CheckResponse](t, raw)
	assert.False(t, check.Result)
	assert.Equal(t, 100.0, check.Metadata["remaining"])

	_, raw = do(t, srv, http.MethodGet, "/limits/acc-001/check-available?amount=50&period=monthly", "")
	assert.True(t, decode[api.CheckResponse](t, raw).Result)

	resp, raw = do(t, srv, http.MethodPost, "/limits/acc-001/check-available", `not json`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	check = decode[api.CheckResponse](t, raw)
	assert.False(t, check.Result)
	assert.Equal(t, "Invalid request body", check.Reason)
}

func TestAirtimeExplicitUpdate(t *testing.T) {
	srv := newServer(t, 700)
	_, _ = do(t, srv, http.MethodPost, "/accounts", `{"customerId":"cust-001"}`)

	resp, _ := do(t, srv, http.MethodPost, "/airtime", `{"accountId":"acc-001","phoneNumber":"+15550100","amount":10,"provider":"Verizon"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	_, raw := do(t, srv, http.MethodGet, "/airtime/air-001/check-completed", "")
	assert.False(t, decode[api.CheckResponse](t, raw).Result)

	resp, _ = do(t, srv, http.MethodPatch, "/airtime/air-001/status", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_, raw = do(t, srv, http.MethodGet, "/airtime/air-001/check-completed", "")
	assert.True(t, decode[api.CheckResponse](t, raw).Result)
}

func TestMalformedBody(t *testing.T) {
	srv := newServer(t, 700)

	resp, raw := do(t, srv, http.MethodPost, "/accounts", `{"customerId":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decode[envelope](t, raw)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "Invalid request body")
}
