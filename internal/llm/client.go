package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"briefly-ai/internal/contextutil"
)

const probeTimeout = 5 * time.Second

// Config holds the settings for a generation client.
type Config struct {
	BaseURL string
	Model   string
	// Timeout bounds each generation request. Generous by default since
	// long generations can take minutes on local hardware.
	Timeout time.Duration
	// MaxRetries is the number of additional attempts after the first one,
	// so a request is tried MaxRetries+1 times in total.
	MaxRetries int
	// RetryBackoff is the base delay of the exponential backoff between
	// attempts.
	RetryBackoff time.Duration
	Temperature  float64
}

// Client is a client for the Ollama generate API.
type Client struct {
	cfg    Config
	client *http.Client
	probe  *http.Client
}

// NewClient creates a new generation client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		probe:  &http.Client{Timeout: probeTimeout},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.cfg.Model
}

// Generate sends a prompt to the generation endpoint and returns the
// generated text. system may be empty. Transient failures (timeouts,
// connection errors, non-2xx statuses, blank generations) are retried with
// exponential backoff until the retry budget is exhausted, after which a
// *GenerationError carrying the last failure is returned.
func (c *Client) Generate(ctx context.Context, prompt, system string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	base := c.cfg.RetryBackoff
	if base <= 0 {
		base = time.Millisecond
	}
	backoff := retry.WithJitter(base/4, retry.NewExponential(base))
	backoff = retry.WithMaxRetries(uint64(c.cfg.MaxRetries), backoff)

	var (
		text     string
		attempts int
		lastKind FailureKind
		lastErr  error
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		logger.DebugContext(ctx, "calling generation endpoint", "attempt", attempts, "max_attempts", c.cfg.MaxRetries+1)

		out, kind, err := c.generateOnce(ctx, prompt, system)
		if err != nil {
			lastKind, lastErr = kind, err
			logger.WarnContext(ctx, "generation attempt failed", "attempt", attempts, "kind", string(kind), "error", err)
			return retry.RetryableError(err)
		}
		text = out
		return nil
	})
	if err != nil {
		if lastErr == nil {
			// Context cancelled before the first attempt could fail.
			lastKind, lastErr = FailureConnection, err
		}
		return "", &GenerationError{Kind: lastKind, Attempts: attempts, Err: lastErr}
	}

	logger.DebugContext(ctx, "generation succeeded", "attempts", attempts, "length", len(text))
	return text, nil
}

// generateOnce performs a single generation attempt and classifies any
// failure so the retry loop's decision is explicit.
func (c *Client) generateOnce(ctx context.Context, prompt, system string) (string, FailureKind, error) {
	payload := GenerateRequest{
		Model:   c.cfg.Model,
		Prompt:  prompt,
		Stream:  false,
		Options: DefaultOptions(c.cfg.Temperature),
		System:  system,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", FailureConnection, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/generate", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", FailureConnection, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", FailureTimeout, fmt.Errorf("request timed out after %s: %w", c.cfg.Timeout, err)
		}
		return "", FailureConnection, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", FailureStatus, fmt.Errorf("bad status %d: %s", resp.StatusCode, string(raw))
	}

	var genResp GenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", FailureConnection, fmt.Errorf("failed to decode response: %w", err)
	}

	text := strings.TrimSpace(genResp.Response)
	if text == "" {
		return "", FailureEmpty, errors.New("empty response from generation endpoint")
	}

	return text, "", nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
