// Package handler implements the event-driven synchronization layer: one
// handler per domain event, each orchestrating repository writes and cache
// projection updates inside an execution envelope that isolates failures
// from the consumer loop.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/citywatch/storage-service/internal/cache"
	"github.com/citywatch/storage-service/internal/domain"
)

// RemarkRepository is the authoritative remark store. GetByID returns
// domain.ErrNotFound for absent records; absence is a defined no-op for
// the handlers, never a reportable failure.
type RemarkRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Remark, error)
	Add(ctx context.Context, remark *domain.Remark) error
	Update(ctx context.Context, remark *domain.Remark) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepository is the authoritative user store, keyed by the stable
// external user id. Edit performs a profile-style partial update.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	Add(ctx context.Context, user *domain.User) error
	Edit(ctx context.Context, user *domain.User) error
}

// OperationRepository stores asynchronous request outcomes, looked up by
// the request correlation id.
type OperationRepository interface {
	GetByRequestID(ctx context.Context, requestID uuid.UUID) (*domain.Operation, error)
	Add(ctx context.Context, op *domain.Operation) error
	Update(ctx context.Context, op *domain.Operation) error
}

// RemarkServiceClient hydrates the canonical remark representation from
// the remarks service when an event carries only the id.
type RemarkServiceClient interface {
	GetRemark(ctx context.Context, id uuid.UUID) (*domain.Remark, error)
}

// UserServiceClient hydrates the canonical user representation from the
// identity service.
type UserServiceClient interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// RemarkCache is the remark projection surface the handlers write to.
type RemarkCache interface {
	Add(ctx context.Context, remark *domain.Remark, opts cache.AddOptions) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserCache is the user projection surface, including the per-user list
// of authored remark ids.
type UserCache interface {
	Add(ctx context.Context, user *domain.User) error
	AddRemark(ctx context.Context, userID string, remarkID uuid.UUID) error
	RemoveRemark(ctx context.Context, userID string, remarkID uuid.UUID) error
}

// AccountState manages the ephemeral per-user state flag.
type AccountState interface {
	Set(ctx context.Context, userID, state string) error
	Delete(ctx context.Context, userID string) error
}
