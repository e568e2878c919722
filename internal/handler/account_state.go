package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/event"
)

// The account state flag is ephemeral session metadata and never touches
// the repository.
const accountStateActive = "active"

// UserSignedInHandler flags the user as active in the cache.
type UserSignedInHandler struct {
	env   *Envelope
	state AccountState
}

// NewUserSignedInHandler wires the handler dependencies.
func NewUserSignedInHandler(env *Envelope, state AccountState) *UserSignedInHandler {
	return &UserSignedInHandler{env: env, state: state}
}

// Handle processes a user.signed_in event.
func (h *UserSignedInHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.UserSignedIn)
		if !ok {
			return fmt.Errorf("handler.UserSignedIn: unexpected payload %T", e)
		}
		if err := h.state.Set(ctx, ev.UserID, accountStateActive); err != nil {
			return fmt.Errorf("handler.UserSignedIn: set state %s: %w", ev.UserID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("sign-in handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}

// UserSignedOutHandler clears the user's state flag.
type UserSignedOutHandler struct {
	env   *Envelope
	state AccountState
}

// NewUserSignedOutHandler wires the handler dependencies.
func NewUserSignedOutHandler(env *Envelope, state AccountState) *UserSignedOutHandler {
	return &UserSignedOutHandler{env: env, state: state}
}

// Handle processes a user.signed_out event.
func (h *UserSignedOutHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.UserSignedOut)
		if !ok {
			return fmt.Errorf("handler.UserSignedOut: unexpected payload %T", e)
		}
		if err := h.state.Delete(ctx, ev.UserID); err != nil {
			return fmt.Errorf("handler.UserSignedOut: delete state %s: %w", ev.UserID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("sign-out handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
