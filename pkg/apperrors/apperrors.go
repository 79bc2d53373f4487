// Package apperrors classifies failures surfaced to API callers.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind identifies the class of an application error.
type Kind uint8

const (
	Internal Kind = iota
	Validation
	NotFoundKind
	ConflictKind
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFoundKind:
		return "not_found"
	case ConflictKind:
		return "conflict"
	}
	return "internal"
}

// InternalMessage replaces the message of every internal error shown to callers.
const InternalMessage = "Internal server error"

// Error is an error with a Kind and a message safe to show to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Invalid returns a validation error.
func Invalid(format string, args ...any) error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

// NotFound returns a not found error wrapping err.
func NotFound(msg string, err error) error {
	return &Error{Kind: NotFoundKind, Message: msg, Err: err}
}

// Conflict returns a conflict error wrapping err.
func Conflict(msg string, err error) error {
	return &Error{Kind: ConflictKind, Message: msg, Err: err}
}

// Wrap returns an internal error wrapping err.
func Wrap(err error) error {
	return &Error{Kind: Internal, Message: InternalMessage, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// HTTPStatus maps err to a response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFoundKind:
		return http.StatusNotFound
	case ConflictKind:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Message returns the caller-facing message for err.
// Internal errors never expose their cause.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Message
	}
	return InternalMessage
}
