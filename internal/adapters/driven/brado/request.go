package brado

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/logger"
)

// maxAttempts bounds the request pipeline: the first attempt plus at
// most one refresh-and-retry. The bound is structural - there is no
// recursion and no path back into the loop after the retry.
const maxAttempts = 2

// request issues the HTTP exchange against baseURL+path and classifies
// the outcome.
//
// A 401 on any path other than the token endpoint triggers one token
// refresh followed by one retry with the refreshed Authorization
// header; the retry's outcome is terminal whatever it is. A 401 from
// the token endpoint itself is never retried, which keeps a failing
// refresh from recursing.
func (c *Client) request(
	ctx context.Context,
	method, path string,
	body []byte,
	header http.Header,
) ([]byte, string, error) {
	for attempt := 1; ; attempt++ {
		respBody, status, contentType, err := c.exchange(ctx, method, path, body, header)
		if err != nil {
			return nil, "", err
		}

		if status == http.StatusUnauthorized && attempt < maxAttempts && path != tokenPath {
			logger.Debug("401 on %s %s, refreshing token for retry", method, path)
			cred, err := c.EnsureToken(ctx)
			if err != nil {
				return nil, "", err
			}
			header.Set("Authorization", "Bearer "+cred.Token)
			continue
		}

		if status < 200 || status > 299 {
			return nil, "", domain.NewAPIError(status, respBody)
		}
		return respBody, contentType, nil
	}
}

// exchange performs a single HTTP round trip and drains the body.
func (c *Client) exchange(
	ctx context.Context,
	method, path string,
	body []byte,
	header http.Header,
) ([]byte, int, string, error) {
	var reader io.Reader
	if len(body) > 0 {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, "", fmt.Errorf("create request: %w", err)
	}
	for key, values := range header {
		req.Header[key] = values
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, "", fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, "", fmt.Errorf("read response body: %w", err)
	}
	return respBody, resp.StatusCode, resp.Header.Get("Content-Type"), nil
}
