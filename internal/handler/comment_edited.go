package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/citywatch/storage-service/internal/cache"
	"github.com/citywatch/storage-service/internal/domain"
	"github.com/citywatch/storage-service/internal/event"
)

// CommentEditedHandler applies a comment text edit and appends the new
// payload to the comment's edit history.
type CommentEditedHandler struct {
	env         *Envelope
	remarks     RemarkRepository
	remarkCache RemarkCache
}

// NewCommentEditedHandler wires the handler dependencies.
func NewCommentEditedHandler(env *Envelope, remarks RemarkRepository, remarkCache RemarkCache) *CommentEditedHandler {
	return &CommentEditedHandler{env: env, remarks: remarks, remarkCache: remarkCache}
}

// Handle processes a remark.comment_edited event. An unknown remark or an
// unknown comment within it is a no-op. The history entry carries the
// event's timestamp; the remark's UpdatedAt carries processing time.
func (h *CommentEditedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.CommentEditedInRemark)
		if !ok {
			return fmt.Errorf("handler.CommentEdited: unexpected payload %T", e)
		}

		remark, err := h.remarks.GetByID(ctx, ev.RemarkID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.CommentEdited: get %s: %w", ev.RemarkID, err)
		}

		comment := remark.FindComment(ev.CommentID)
		if comment == nil {
			return nil
		}
		comment.Edit(ev.Text, ev.CreatedAt)
		remark.UpdatedAt = time.Now().UTC()

		if err := h.remarks.Update(ctx, remark); err != nil {
			return fmt.Errorf("handler.CommentEdited: update %s: %w", remark.ID, err)
		}
		if err := h.remarkCache.Add(ctx, remark, cache.AddOptions{}); err != nil {
			return fmt.Errorf("handler.CommentEdited: cache %s: %w", remark.ID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("comment edit handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
