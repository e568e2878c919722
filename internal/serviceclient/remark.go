package serviceclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/citywatch/storage-service/internal/domain"
)

// RemarkClient fetches canonical remark representations from the remarks
// service.
type RemarkClient struct {
	client
}

// NewRemarkClient creates a client against the given remarks service base
// URL, e.g. "http://remarks:5002".
func NewRemarkClient(baseURL string, timeout time.Duration, logger *slog.Logger) *RemarkClient {
	return &RemarkClient{client: newClient(baseURL, timeout, logger, "remarks-client")}
}

// GetRemark fetches a single remark by id. Returns domain.ErrNotFound when
// the remarks service does not know the id.
func (c *RemarkClient) GetRemark(ctx context.Context, id uuid.UUID) (*domain.Remark, error) {
	url := fmt.Sprintf("%s/remarks/%s", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("serviceclient.GetRemark: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var remark domain.Remark
	if err := c.getJSON(req, &remark); err != nil {
		return nil, fmt.Errorf("serviceclient.GetRemark %s: %w", id, err)
	}

	c.log.DebugContext(ctx, "remark fetched", slog.String("remark_id", id.String()))
	return &remark, nil
}
