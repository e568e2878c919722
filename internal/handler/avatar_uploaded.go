package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/domain"
	"github.com/citywatch/storage-service/internal/event"
)

// AvatarUploadedHandler propagates a new avatar URL onto the stored user
// profile and refreshes the user mirror.
type AvatarUploadedHandler struct {
	env       *Envelope
	users     UserRepository
	userCache UserCache
}

// NewAvatarUploadedHandler wires the handler dependencies.
func NewAvatarUploadedHandler(env *Envelope, users UserRepository, userCache UserCache) *AvatarUploadedHandler {
	return &AvatarUploadedHandler{env: env, users: users, userCache: userCache}
}

// Handle processes a user.avatar_uploaded event. An unknown user is a
// no-op, consistent with the other repository-authoritative handlers.
func (h *AvatarUploadedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.AvatarUploaded)
		if !ok {
			return fmt.Errorf("handler.AvatarUploaded: unexpected payload %T", e)
		}

		user, err := h.users.GetByID(ctx, ev.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.AvatarUploaded: get %s: %w", ev.UserID, err)
		}

		user.AvatarURL = ev.AvatarURL

		if err := h.users.Edit(ctx, user); err != nil {
			return fmt.Errorf("handler.AvatarUploaded: edit %s: %w", ev.UserID, err)
		}
		if err := h.userCache.Add(ctx, user); err != nil {
			return fmt.Errorf("handler.AvatarUploaded: cache %s: %w", ev.UserID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("avatar upload handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
