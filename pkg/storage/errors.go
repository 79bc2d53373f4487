package storage

import "errors"

// ErrNotFound is returned when no record exists for the requested id.
var ErrNotFound = errors.New("record not found")

// ErrInvalidTransition is returned when an action is not allowed from the record's current status,
// e.g., approving a loan that is no longer pending.
var ErrInvalidTransition = errors.New("action not allowed in current status")
