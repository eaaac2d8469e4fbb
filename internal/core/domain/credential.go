package domain

import "time"

// TokenSafetyMargin is the lead time before actual expiry at which a
// cached token is treated as already expired. It protects in-flight
// requests from racing the server-side expiry.
const TokenSafetyMargin = 15 * time.Second

// DefaultTokenLifetime is assumed when the token endpoint reports
// neither an absolute nor a relative expiry.
const DefaultTokenLifetime = 30 * time.Minute

// Credential holds the current bearer token for the Brado API together
// with its absolute expiry and the per-installation client identifier.
//
// The token and expiry live only in memory; ClientID is the only field
// that survives a restart (persisted via the session store), so every
// new process performs exactly one token acquisition.
type Credential struct {
	// Token is the opaque bearer token. Empty until first acquisition.
	Token string `json:"token"`

	// ExpiresAt is the absolute instant the token stops being valid.
	// Zero until first acquisition.
	ExpiresAt time.Time `json:"expires_at"`

	// ClientID identifies this installation to the token-issuing
	// endpoint. Generated once and stable across refreshes.
	ClientID string `json:"client_id"`
}

// Valid reports whether the token can still be used, leaving the safety
// margin before the actual expiry.
func (c Credential) Valid(now time.Time) bool {
	if c.Token == "" || c.ExpiresAt.IsZero() {
		return false
	}
	return now.Before(c.ExpiresAt.Add(-TokenSafetyMargin))
}

// TokenResponse is the payload returned by the token endpoint.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	// ExpiresIn is a relative time-to-live in seconds.
	ExpiresIn int64 `json:"expires_in,omitempty"`
	// ExpiresAt is an absolute epoch timestamp. Some deployments emit
	// seconds, others milliseconds; see ResolveExpiresAt.
	ExpiresAt int64 `json:"expires_at,omitempty"`
	TokenType string `json:"token_type,omitempty"`
}

// epochMillisThreshold separates seconds-since-epoch values from
// milliseconds-since-epoch values. Anything below 10^12 is read as
// seconds (10^12 ms is September 2001, 10^12 s is the year 33658).
const epochMillisThreshold = 1_000_000_000_000

// ResolveExpiresAt normalizes a token response into an absolute expiry.
// Preference order: explicit expires_at (with the seconds-vs-millis
// heuristic), then now+expires_in, then the default lifetime.
func ResolveExpiresAt(payload TokenResponse, now time.Time) time.Time {
	if payload.ExpiresAt > 0 {
		ms := payload.ExpiresAt
		if ms < epochMillisThreshold {
			ms *= 1000
		}
		return time.UnixMilli(ms)
	}
	if payload.ExpiresIn > 0 {
		return now.Add(time.Duration(payload.ExpiresIn) * time.Second)
	}
	return now.Add(DefaultTokenLifetime)
}

// AuthMe is the payload returned by the identity endpoint.
type AuthMe struct {
	Subject string `json:"subject"`
	TTL     int64  `json:"ttl"`
}
