// Package web implements ports.Fetcher on top of the instrumented
// platform/httpclient. Each Fetch is a single GET: the circuit breaker, rate
// limiter, tracing, and timeout come from the underlying client.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/dataworks/internal/platform/httpclient"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Fetcher       = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// ErrBodyTooLarge is returned when a response body exceeds the configured limit.
var ErrBodyTooLarge = errors.New("response body exceeds limit")

// Client is the outbound adapter for arbitrary web resources.
type Client struct {
	http    *httpclient.Client
	maxBody int64
	logger  *slog.Logger
}

// NewClient creates a Client. A non-positive maxBody disables the body limit.
func NewClient(client *httpclient.Client, maxBody int64, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{http: client, maxBody: maxBody, logger: logger}
}

// Fetch issues a GET for url and returns the full body. Responses with a
// status of 400 or above are returned as *StatusError.
func (c *Client) Fetch(ctx context.Context, url string, headers map[string]string) (*ports.FetchedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating GET request for %s: %w", url, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(ctx, req)
	if resp != nil {
		defer c.closeBody(ctx, resp)
	}
	if err != nil {
		// A 5xx comes back with both resp and err; report the status.
		if resp != nil && resp.StatusCode >= http.StatusBadRequest {
			return nil, TranslateHTTPError(url, resp)
		}
		c.logger.ErrorContext(ctx, "request failed",
			slog.String("url", url),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.WarnContext(ctx, "unexpected status",
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return nil, TranslateHTTPError(url, resp)
	}

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body from %s: %w", url, err)
	}

	return &ports.FetchedResponse{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Name returns the identifier used for health registration.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports outbound availability from the per-host circuit breakers.
func (c *Client) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}

func (c *Client) readBody(r io.Reader) ([]byte, error) {
	if c.maxBody <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, c.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%w of %d bytes", ErrBodyTooLarge, c.maxBody)
	}
	return body, nil
}

func (c *Client) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}
