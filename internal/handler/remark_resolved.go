package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/domain"
	"github.com/citywatch/storage-service/internal/event"
)

// RemarkResolvedHandler projects a resolution event onto the stored
// remark: state tag, resolution time and the acting user snapshot.
type RemarkResolvedHandler struct {
	env     *Envelope
	remarks RemarkRepository
	users   UserRepository
}

// NewRemarkResolvedHandler wires the handler dependencies.
func NewRemarkResolvedHandler(env *Envelope, remarks RemarkRepository, users UserRepository) *RemarkResolvedHandler {
	return &RemarkResolvedHandler{env: env, remarks: remarks, users: users}
}

// Handle processes a remark.resolved event. If the remark is unknown the
// user is never fetched; if the acting user is unknown no update happens.
func (h *RemarkResolvedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.RemarkResolved)
		if !ok {
			return fmt.Errorf("handler.RemarkResolved: unexpected payload %T", e)
		}

		remark, err := h.remarks.GetByID(ctx, ev.RemarkID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.RemarkResolved: get remark %s: %w", ev.RemarkID, err)
		}

		user, err := h.users.GetByID(ctx, ev.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.RemarkResolved: get user %s: %w", ev.UserID, err)
		}

		remark.Resolve(user.Snapshot(), ev.ResolvedAt)

		if err := h.remarks.Update(ctx, remark); err != nil {
			return fmt.Errorf("handler.RemarkResolved: update %s: %w", remark.ID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("remark resolved handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
