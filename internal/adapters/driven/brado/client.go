package brado

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
)

// Ensure Client implements the API port.
var _ driven.BradoAPI = (*Client)(nil)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// APIPrefix is the versioned path prefix; authentication is only
	// injected for paths underneath it.
	APIPrefix = "/api/v1"
)

// Client is the authenticated Brado API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      driven.CredentialStore
	sessions   driven.SessionStore
}

// NewClient creates a Brado client. The credential store holds the
// live token; the session store persists the client ID across runs.
func NewClient(baseURL string, creds driven.CredentialStore, sessions driven.SessionStore) *Client {
	return NewClientWithHTTPClient(baseURL, creds, sessions, &http.Client{Timeout: DefaultTimeout})
}

// NewClientWithHTTPClient creates a Brado client with a custom
// http.Client. Useful for tests and for callers that need their own
// transport settings.
func NewClientWithHTTPClient(
	baseURL string,
	creds driven.CredentialStore,
	sessions driven.SessionStore,
	httpClient *http.Client,
) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		creds:      creds,
		sessions:   sessions,
	}
}

// Call performs one logical API call: marshals the request body,
// injects the bearer token for authenticated prefixed paths, runs the
// request pipeline, and decodes the success payload into out.
//
// A JSON success body is unmarshalled into out (out may be nil to
// discard it). A non-JSON success body is only accepted when out is a
// *string, which receives the raw text.
func (c *Client) Call(ctx context.Context, method, path string, in, out any, requireAuth bool) error {
	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	header := make(http.Header)
	if len(body) > 0 {
		header.Set("Content-Type", "application/json")
	}

	if requireAuth && strings.HasPrefix(path, APIPrefix) {
		cred, err := c.EnsureToken(ctx)
		if err != nil {
			return err
		}
		header.Set("Authorization", "Bearer "+cred.Token)
	}

	payload, contentType, err := c.request(ctx, method, path, body, header)
	if err != nil {
		return err
	}
	return decodePayload(payload, contentType, out)
}

// download performs a single authenticated exchange and returns the raw
// body and content type. It deliberately stays outside the 401 retry
// policy: a failed export is surfaced as-is.
func (c *Client) download(ctx context.Context, path string) ([]byte, string, error) {
	cred, err := c.EnsureToken(ctx)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("read download body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", domain.NewAPIError(resp.StatusCode, body)
	}
	return body, resp.Header.Get("Content-Type"), nil
}

// decodePayload interprets a success body according to its content
// type. Empty non-JSON bodies decode to the zero value.
func decodePayload(body []byte, contentType string, out any) error {
	if out == nil {
		return nil
	}

	if !isJSON(contentType) {
		if s, ok := out.(*string); ok {
			*s = string(bytes.TrimSpace(body))
			return nil
		}
		return fmt.Errorf("unexpected content type %q", contentType)
	}

	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "application/json")
}
