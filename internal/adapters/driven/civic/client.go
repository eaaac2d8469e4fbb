// Package civic implements the client for the unauthenticated civic
// data API (normalized Câmara records). Calls carry no credential and
// sit outside the token lifecycle entirely; each request is bounded by
// a client-side deadline with a hard floor, and a local throttle keeps
// the mirror's courtesy limit.
package civic

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
	"github.com/brado-project/brado-cli/internal/logger"
)

// Ensure Client implements the API port.
var _ driven.CivicAPI = (*Client)(nil)

const (
	// DefaultTimeout bounds a civic call when the caller does not ask
	// for a specific deadline.
	DefaultTimeout = 10 * time.Second

	// MinTimeout is the floor applied to requested deadlines. Smaller
	// values are raised, never honored.
	MinTimeout = 3 * time.Second

	// throttleRate is the courtesy request rate against the mirror.
	throttleRate = 5

	// throttleBurst allows short bursts above the sustained rate.
	throttleBurst = 5
)

// Client is the civic data API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	timeout    time.Duration
}

// NewClient creates a civic client with the default timeout.
func NewClient(baseURL string) *Client {
	return NewClientWithTimeout(baseURL, DefaultTimeout)
}

// NewClientWithTimeout creates a civic client with a per-request
// deadline. Requests below MinTimeout are raised to it.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(throttleRate), throttleBurst),
		timeout:    requestTimeout(timeout),
	}
}

// requestTimeout applies the deadline floor.
func requestTimeout(requested time.Duration) time.Duration {
	if requested <= 0 {
		return DefaultTimeout
	}
	if requested < MinTimeout {
		return MinTimeout
	}
	return requested
}

// get performs one deadline-bounded GET and returns the body on 2xx.
// A 404 returns domain.ErrNotFound so callers can map it to absence.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("civic API %s returned %d", path, resp.StatusCode)
		return nil, domain.NewAPIError(resp.StatusCode, body)
	}
	return body, nil
}
