// Package store defines the persistence interfaces for the append-only
// record store. Implementations assign record identity, created_at and the
// ingest source on insert; callers cannot backdate records or spoof the
// source tag.
package store

import (
	"context"

	"github.com/ncinga/temi-event-backend/types"
)

// RegistrationStore handles registration record persistence.
type RegistrationStore interface {
	// Insert appends a registration, stamping created_at (UTC) and the
	// ingest source, and returns the generated id.
	Insert(ctx context.Context, reg *types.Registration, source types.Source) (string, error)
	// ListByEvent returns at most limit registrations for one event,
	// newest-created first. Records beyond the limit are omitted.
	ListByEvent(ctx context.Context, eventID string, limit int64) ([]types.Registration, error)
	// ListAll returns at most limit registrations across all events,
	// newest-created first. Used only by the bulk-export path.
	ListAll(ctx context.Context, limit int64) ([]types.Registration, error)
	// Count returns the total number of stored registrations.
	Count(ctx context.Context) (int64, error)
}

// FeedbackStore handles feedback record persistence.
type FeedbackStore interface {
	Insert(ctx context.Context, fb *types.Feedback, source types.Source) (string, error)
	ListByEvent(ctx context.Context, eventID string, limit int64) ([]types.Feedback, error)
}
