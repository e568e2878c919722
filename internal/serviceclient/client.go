// Package serviceclient implements HTTP clients for the sibling services
// this service hydrates entities from.
package serviceclient

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/citywatch/storage-service/internal/domain"
)

const defaultTimeout = 10 * time.Second

// client is the shared HTTP plumbing behind the per-service clients.
type client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

func newClient(baseURL string, timeout time.Duration, logger *slog.Logger, name string) client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", name),
	}
}

// getJSON fetches path and decodes the body into out. A 404 maps to
// domain.ErrNotFound so callers can tell absence from failure.
func (c *client) getJSON(req *http.Request, out any) error {
	resp, err := c.doWithRetry(req)
	if err != nil {
		c.log.ErrorContext(req.Context(), "request failed",
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors.
func (c *client) doWithRetry(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if req.Context().Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(req.Context(), "retrying request",
		slog.String("url", req.URL.String()),
		slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}
