// Package ctxutil carries event delivery metadata through handler contexts.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	eventIDKey   ctxKey = "event_id"
	requestIDKey ctxKey = "request_id"
)

// WithEventID stores the delivery's event id in the context.
func WithEventID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, eventIDKey, id)
}

// EventIDFromCtx extracts the event id from the context.
// Returns an empty string if absent.
func EventIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(eventIDKey).(string)
	return id
}

// WithRequestID stores the correlation id of the originating request.
func WithRequestID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the correlation id from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func RequestIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(requestIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
