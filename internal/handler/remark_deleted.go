package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/event"
)

// RemarkDeletedHandler removes a deleted remark from the repository and
// evicts it from every projection, including the author's remark-id list.
type RemarkDeletedHandler struct {
	env         *Envelope
	remarks     RemarkRepository
	remarkCache RemarkCache
	userCache   UserCache
}

// NewRemarkDeletedHandler wires the handler dependencies.
func NewRemarkDeletedHandler(
	env *Envelope,
	remarks RemarkRepository,
	remarkCache RemarkCache,
	userCache UserCache,
) *RemarkDeletedHandler {
	return &RemarkDeletedHandler{
		env:         env,
		remarks:     remarks,
		remarkCache: remarkCache,
		userCache:   userCache,
	}
}

// Handle processes a remark.deleted event. Deleting an already absent
// remark is a no-op at every step, keeping the handler replay-safe.
func (h *RemarkDeletedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.RemarkDeleted)
		if !ok {
			return fmt.Errorf("handler.RemarkDeleted: unexpected payload %T", e)
		}

		if err := h.remarks.Delete(ctx, ev.RemarkID); err != nil {
			return fmt.Errorf("handler.RemarkDeleted: delete %s: %w", ev.RemarkID, err)
		}
		if err := h.remarkCache.Delete(ctx, ev.RemarkID); err != nil {
			return fmt.Errorf("handler.RemarkDeleted: cache %s: %w", ev.RemarkID, err)
		}
		if err := h.userCache.RemoveRemark(ctx, ev.UserID, ev.RemarkID); err != nil {
			return fmt.Errorf("handler.RemarkDeleted: user list %s: %w", ev.UserID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("remark deleted handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
