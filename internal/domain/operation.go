package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operation statuses.
const (
	OperationCreated   = "created"
	OperationCompleted = "completed"
	OperationRejected  = "rejected"
)

// Operation is the authoritative record of an asynchronous request's
// outcome, looked up by the correlation id carried on the originating
// request. Operations are written directly against the repository and
// are not cached by the sync layer.
type Operation struct {
	ID        uuid.UUID `json:"id"`
	RequestID uuid.UUID `json:"requestId"`
	UserID    string    `json:"userId,omitempty"`
	Name      string    `json:"name,omitempty"`
	Status    string    `json:"status"`
	Code      string    `json:"code,omitempty"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
