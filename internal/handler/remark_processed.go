package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/cache"
	"github.com/citywatch/storage-service/internal/domain"
	"github.com/citywatch/storage-service/internal/event"
)

// RemarkProcessedHandler merges the canonical lifecycle fields of a
// processed remark into the stored record and refreshes the mirror.
type RemarkProcessedHandler struct {
	env         *Envelope
	remarks     RemarkRepository
	client      RemarkServiceClient
	remarkCache RemarkCache
}

// NewRemarkProcessedHandler wires the handler dependencies.
func NewRemarkProcessedHandler(
	env *Envelope,
	remarks RemarkRepository,
	client RemarkServiceClient,
	remarkCache RemarkCache,
) *RemarkProcessedHandler {
	return &RemarkProcessedHandler{
		env:         env,
		remarks:     remarks,
		client:      client,
		remarkCache: remarkCache,
	}
}

// Handle processes a remark.processed event. An unknown remark id is a
// no-op; the record will arrive with its own remark.created event.
func (h *RemarkProcessedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.RemarkProcessed)
		if !ok {
			return fmt.Errorf("handler.RemarkProcessed: unexpected payload %T", e)
		}

		remark, err := h.remarks.GetByID(ctx, ev.RemarkID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("handler.RemarkProcessed: get %s: %w", ev.RemarkID, err)
		}

		canonical, err := h.client.GetRemark(ctx, ev.RemarkID)
		if err != nil {
			return fmt.Errorf("handler.RemarkProcessed: hydrate %s: %w", ev.RemarkID, err)
		}

		// only lifecycle fields propagate from the canonical representation
		remark.UpdatedAt = canonical.UpdatedAt
		remark.State = canonical.State
		remark.States = canonical.States
		remark.Photos = canonical.Photos
		remark.Resolved = false

		if err := h.remarks.Update(ctx, remark); err != nil {
			return fmt.Errorf("handler.RemarkProcessed: update %s: %w", remark.ID, err)
		}
		if err := h.remarkCache.Add(ctx, remark, cache.AddOptions{}); err != nil {
			return fmt.Errorf("handler.RemarkProcessed: cache %s: %w", remark.ID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("remark processed handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
