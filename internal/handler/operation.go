package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/domain"
	"github.com/citywatch/storage-service/internal/event"
)

// OperationCreatedHandler records the pending outcome of an asynchronous
// request, keyed by its correlation id. Operations are written directly
// against the repository and never cached.
type OperationCreatedHandler struct {
	env        *Envelope
	operations OperationRepository
}

// NewOperationCreatedHandler wires the handler dependencies.
func NewOperationCreatedHandler(env *Envelope, operations OperationRepository) *OperationCreatedHandler {
	return &OperationCreatedHandler{env: env, operations: operations}
}

// Handle processes an operation.created event.
func (h *OperationCreatedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.OperationCreated)
		if !ok {
			return fmt.Errorf("handler.OperationCreated: unexpected payload %T", e)
		}

		op := &domain.Operation{
			ID:        ev.OperationID,
			RequestID: ev.RequestID,
			UserID:    ev.UserID,
			Name:      ev.Command,
			Status:    domain.OperationCreated,
			CreatedAt: ev.CreatedAt,
			UpdatedAt: ev.CreatedAt,
		}
		if err := h.operations.Add(ctx, op); err != nil {
			return fmt.Errorf("handler.OperationCreated: add %s: %w", op.ID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("operation created handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}

// OperationUpdatedHandler records the final outcome of an asynchronous
// request. An unknown correlation id is a no-op: the created event may
// still be in flight and the outcome will be redelivered.
type OperationUpdatedHandler struct {
	env        *Envelope
	operations OperationRepository
}

// NewOperationUpdatedHandler wires the handler dependencies.
func NewOperationUpdatedHandler(env *Envelope, operations OperationRepository) *OperationUpdatedHandler {
	return &OperationUpdatedHandler{env: env, operations: operations}
}

// Handle processes an operation.updated event.
func (h *OperationUpdatedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.OperationUpdated)
		if !ok {
			return fmt.Errorf("handler.OperationUpdated: unexpected payload %T", e)
		}

		op, err := h.operations.GetByRequestID(ctx, ev.RequestID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.OperationUpdated: get %s: %w", ev.RequestID, err)
		}

		op.Status = ev.Status
		op.Code = ev.Code
		op.Message = ev.Message
		op.UpdatedAt = ev.UpdatedAt

		if err := h.operations.Update(ctx, op); err != nil {
			return fmt.Errorf("handler.OperationUpdated: update %s: %w", op.ID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("operation updated handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
