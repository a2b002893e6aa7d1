package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"briefly-ai/internal/contextutil"
)

// HealthCheck reports whether the generation endpoint is reachable.
// It probes the tags API with a short timeout; any transport error or
// non-200 status counts as unhealthy.
func (c *Client) HealthCheck(ctx context.Context) bool {
	logger := contextutil.LoggerFromContext(ctx)

	resp, err := c.getTags(ctx)
	if err != nil {
		logger.WarnContext(ctx, "health check failed", "error", err)
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return resp.StatusCode == http.StatusOK
}

// ListModels returns the names of the models installed at the endpoint.
// Best-effort: any failure yields an empty list, never an error.
func (c *Client) ListModels(ctx context.Context) []string {
	logger := contextutil.LoggerFromContext(ctx)

	resp, err := c.getTags(ctx)
	if err != nil {
		logger.WarnContext(ctx, "failed to list models", "error", err)
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		logger.WarnContext(ctx, "failed to list models", "status", resp.StatusCode)
		return nil
	}

	var tags TagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		logger.WarnContext(ctx, "failed to decode model list", "error", err)
		return nil
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names
}

func (c *Client) getTags(ctx context.Context) (*http.Response, error) {
	url := fmt.Sprintf("%s/api/tags", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.probe.Do(req)
}
