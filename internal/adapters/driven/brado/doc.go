// Package brado implements the authenticated client for the Brado API:
// a token cache with a safety-margin expiry check and a request
// pipeline with a single refresh-and-retry on 401.
//
// The bearer credential lives in an injected CredentialStore; the
// stable client ID is persisted through the SessionStore so it survives
// restarts while the token itself never does. Concurrent callers that
// both find the token stale will both refresh it - a benign race, since
// every refresh fully replaces the credential with a valid one.
package brado
