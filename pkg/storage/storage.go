package storage

import "context"

// Storage defines the root interface for the entire data layer.
// Components should depend on the more granular interfaces instead of this one.
type Storage interface {
	ApiStore

	// Reset drops every record and restarts the id sequences.
	Reset(ctx context.Context)
}
