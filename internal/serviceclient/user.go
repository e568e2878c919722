package serviceclient

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/citywatch/storage-service/internal/domain"
)

// UserClient fetches canonical user profiles from the users service.
type UserClient struct {
	client
}

// NewUserClient creates a client against the given users service base URL,
// e.g. "http://users:5001".
func NewUserClient(baseURL string, timeout time.Duration, logger *slog.Logger) *UserClient {
	return &UserClient{client: newClient(baseURL, timeout, logger, "users-client")}
}

// GetUser fetches a single user profile by its external account id. Returns
// domain.ErrNotFound when the users service does not know the id.
func (c *UserClient) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	reqURL := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(userID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("serviceclient.GetUser: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	var user domain.User
	if err := c.getJSON(req, &user); err != nil {
		return nil, fmt.Errorf("serviceclient.GetUser %s: %w", userID, err)
	}

	c.log.DebugContext(ctx, "user fetched", slog.String("user_id", userID))
	return &user, nil
}
