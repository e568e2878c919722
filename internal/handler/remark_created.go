package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/cache"
	"github.com/citywatch/storage-service/internal/event"
)

// RemarkCreatedHandler hydrates a freshly created remark from the remarks
// service and seeds the repository plus every remark projection.
type RemarkCreatedHandler struct {
	env         *Envelope
	remarks     RemarkRepository
	client      RemarkServiceClient
	remarkCache RemarkCache
	userCache   UserCache
}

// NewRemarkCreatedHandler wires the handler dependencies.
func NewRemarkCreatedHandler(
	env *Envelope,
	remarks RemarkRepository,
	client RemarkServiceClient,
	remarkCache RemarkCache,
	userCache UserCache,
) *RemarkCreatedHandler {
	return &RemarkCreatedHandler{
		env:         env,
		remarks:     remarks,
		client:      client,
		remarkCache: remarkCache,
		userCache:   userCache,
	}
}

// Handle processes a remark.created event. The event payload is id-only;
// the canonical representation comes from the remarks service. A missing
// upstream representation is a failure here, not a no-op: a created remark
// must be resolvable at its source.
func (h *RemarkCreatedHandler) Handle(ctx context.Context, e event.Event) {
	h.env.Run(e, func(ctx context.Context) error {
		ev, ok := e.(event.RemarkCreated)
		if !ok {
			return fmt.Errorf("handler.RemarkCreated: unexpected payload %T", e)
		}

		remark, err := h.client.GetRemark(ctx, ev.RemarkID)
		if err != nil {
			return fmt.Errorf("handler.RemarkCreated: hydrate %s: %w", ev.RemarkID, err)
		}

		// transient processing marker from the remarks service, never stored
		remark.Status = ""

		if err := h.remarks.Add(ctx, remark); err != nil {
			return fmt.Errorf("handler.RemarkCreated: add %s: %w", remark.ID, err)
		}
		if err := h.remarkCache.Add(ctx, remark, cache.AddOptions{Geo: true, Latest: true}); err != nil {
			return fmt.Errorf("handler.RemarkCreated: cache %s: %w", remark.ID, err)
		}
		if err := h.userCache.AddRemark(ctx, remark.Author.UserID, ev.RemarkID); err != nil {
			return fmt.Errorf("handler.RemarkCreated: user list %s: %w", remark.Author.UserID, err)
		}
		return nil
	}).OnError(func(err error, log *slog.Logger) {
		log.Error("remark created handling failed",
			slog.String("event", e.Name()),
			slog.String("error", err.Error()))
	}).Execute(ctx)
}
