package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/checker"
	"github.com/chris/fintech-checker-api/pkg/models"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// SuccessResponse wraps the data of every successful non-checker response.
type SuccessResponse struct {
	Status    string `json:"status"`
	Data      any    `json:"data"`
	Count     *int   `json:"count,omitempty"`
	Timestamp string `json:"timestamp"`
	RequestId string `json:"requestId"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	RequestId string `json:"requestId"`
}

// CheckResponse is returned by every checker route.
type CheckResponse struct {
	Result    bool           `json:"result"`
	Reason    string         `json:"reason"`
	Metadata  map[string]any `json:"metadata"`
	Timestamp string         `json:"timestamp"`
	RequestId string         `json:"requestId"`
}

// WriteSuccess writes data in a success envelope.
func WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	writeJSON(w, r, status, SuccessResponse{
		Status:    statusSuccess,
		Data:      data,
		Timestamp: now(),
		RequestId: middleware.GetReqID(r.Context()),
	})
}

// WriteList writes items in a success envelope with their count.
func WriteList[T any](w http.ResponseWriter, r *http.Request, items []T) {
	if items == nil {
		items = []T{}
	}
	count := len(items)
	writeJSON(w, r, http.StatusOK, SuccessResponse{
		Status:    statusSuccess,
		Data:      items,
		Count:     &count,
		Timestamp: now(),
		RequestId: middleware.GetReqID(r.Context()),
	})
}

// WriteError writes err in an error envelope with the status its kind maps to.
// Internal errors are logged and replaced by a generic message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
	}
	writeJSON(w, r, status, ErrorResponse{
		Status:    statusError,
		Message:   apperrors.Message(err),
		Timestamp: now(),
		RequestId: middleware.GetReqID(r.Context()),
	})
}

// WriteCheck writes a checker verdict. Checkers always answer 200.
func WriteCheck(w http.ResponseWriter, r *http.Request, result checker.Result) {
	metadata := result.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	writeJSON(w, r, http.StatusOK, CheckResponse{
		Result:    result.Result,
		Reason:    result.Reason,
		Metadata:  metadata,
		Timestamp: now(),
		RequestId: middleware.GetReqID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", slog.Any("error", err))
	}
}

func now() string {
	return models.ISO(time.Now())
}
