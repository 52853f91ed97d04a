// Package remote wraps the remote document/storage service's REST surface:
// spreadsheet create/read/write on the document-edit service and file
// upload/listing on the file-storage service. Every operation returns an
// explicit error; callers decide how failures surface to the user.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"tabshell/internal/logger"
)

const maxErrorBodyBytes = 2048

// apiClient is the shared HTTP plumbing under both service bindings. Each
// binding carries a component logger prefixed with its service name.
type apiClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

func newAPIClient(component, baseURL, token string, timeout time.Duration) *apiClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &apiClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.NewStyledLogger(component),
	}
}

// do issues an authenticated request and returns the response after rejecting
// non-2xx statuses with a descriptive error. The caller owns the body.
func (c *apiClient) do(ctx context.Context, method, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readErrorBody(resp.Body)
		_ = resp.Body.Close()
		c.logger.Error("Remote service error", "method", method, "url", url, "status", resp.Status)
		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			return nil, fmt.Errorf("remote service rejected credentials: %s", resp.Status)
		}
		return nil, fmt.Errorf("remote service returned %s: %s", resp.Status, detail)
	}
	return resp, nil
}

func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBodyBytes))
	if err != nil {
		return ""
	}
	return string(data)
}
