// Package httpx holds request decoding and error translation shared by the resource handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/chris/fintech-checker-api/pkg/apperrors"
	"github.com/chris/fintech-checker-api/pkg/storage"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into dst. Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.Invalid("Request body is required")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.Invalid("Request body is required")
		}
		return apperrors.Invalid("Invalid request body: %v", err)
	}
	return nil
}

// DecodeOptionalJSON is DecodeJSON for routes where the body may be empty.
// It reports whether a body was decoded.
func DecodeOptionalJSON(r *http.Request, dst any) (bool, error) {
	if r.Body == nil {
		return false, nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, apperrors.Invalid("Invalid request body: %v", err)
	}
	return true, nil
}

// StoreError translates a storage error. notFound names the missing resource in
// the caller-facing message and conflict describes a refused transition.
func StoreError(err error, notFound, conflict string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.NotFound(notFound, err)
	case errors.Is(err, storage.ErrInvalidTransition):
		return apperrors.Conflict(conflict, err)
	default:
		return apperrors.Wrap(err)
	}
}

// IsNotFound reports whether err is a storage not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
