package brado

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/logger"
)

// tokenPath is the token-acquisition endpoint. It is exempt from the
// 401 retry policy and from auth injection.
const tokenPath = APIPrefix + "/auth/token"

// clientIDPrefix namespaces generated installation identifiers.
const clientIDPrefix = "brado-cli-"

type tokenRequest struct {
	ClientID string `json:"client_id"`
}

// EnsureToken guarantees the credential store holds a token valid for
// at least the safety margin, acquiring a fresh one when needed.
//
// No lock is held across the acquisition call: concurrent callers that
// both find the token stale each perform one acquisition, and the last
// full-replacement write wins. Duplicate refreshes cost a round trip
// but never corrupt state.
func (c *Client) EnsureToken(ctx context.Context) (domain.Credential, error) {
	if cred := c.creds.Get(); cred.Valid(time.Now()) {
		return cred, nil
	}

	clientID, err := c.ensureClientID(ctx)
	if err != nil {
		return domain.Credential{}, err
	}

	var payload domain.TokenResponse
	err = c.Call(ctx, http.MethodPost, tokenPath, tokenRequest{ClientID: clientID}, &payload, false)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("%w: %w", domain.ErrTokenAcquisition, err)
	}
	if payload.AccessToken == "" {
		return domain.Credential{}, fmt.Errorf("%w: empty access_token", domain.ErrTokenAcquisition)
	}

	cred := domain.Credential{
		Token:     payload.AccessToken,
		ExpiresAt: domain.ResolveExpiresAt(payload, time.Now()),
		ClientID:  clientID,
	}
	c.creds.Set(cred)
	logger.Debug("token refreshed, valid until %s", cred.ExpiresAt.Format(time.RFC3339))
	return cred, nil
}

// ensureClientID returns the stable installation identifier, generating
// and persisting one on first use. The credential's token and expiry
// are left untouched.
func (c *Client) ensureClientID(ctx context.Context) (string, error) {
	cred := c.creds.Get()
	if cred.ClientID != "" {
		return cred.ClientID, nil
	}

	clientID, err := c.sessions.ClientID(ctx)
	if err != nil {
		return "", fmt.Errorf("load client id: %w", err)
	}
	if clientID == "" {
		clientID = clientIDPrefix + uuid.NewString()
		if err := c.sessions.SaveClientID(ctx, clientID); err != nil {
			return "", fmt.Errorf("persist client id: %w", err)
		}
		logger.Debug("generated client id %s", clientID)
	}

	cred = c.creds.Get()
	cred.ClientID = clientID
	c.creds.Set(cred)
	return clientID, nil
}
