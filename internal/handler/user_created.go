package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/event"
)

// UserCreatedHandler hydrates a new account from the identity service and
// seeds the user repository and mirror.
type UserCreatedHandler struct {
	env       *Envelope
	users     UserRepository
	client    UserServiceClient
	userCache UserCache
}

// NewUserCreatedHandler wires the handler dependencies.
func NewUserCreatedHandler(env *Envelope, users UserRepository, client UserServiceClient, userCache UserCache) *UserCreatedHandler {
	return &UserCreatedHandler{env: env, users: users, client: client, userCache: userCache}
}

// Handle processes a user.created event. Like remark creation, a missing
// upstream representation is a failure, not a no-op.
func (h *UserCreatedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.UserCreated)
		if !ok {
			return fmt.Errorf("handler.UserCreated: unexpected payload %T", e)
		}

		user, err := h.client.GetUser(ctx, ev.UserID)
		if err != nil {
			return fmt.Errorf("handler.UserCreated: hydrate %s: %w", ev.UserID, err)
		}

		if err := h.users.Add(ctx, user); err != nil {
			return fmt.Errorf("handler.UserCreated: add %s: %w", ev.UserID, err)
		}
		if err := h.userCache.Add(ctx, user); err != nil {
			return fmt.Errorf("handler.UserCreated: cache %s: %w", ev.UserID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("user created handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
