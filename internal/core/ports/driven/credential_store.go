package driven

import "github.com/brado-project/brado-cli/internal/core/domain"

// CredentialStore is the single mutable cell holding the process-wide
// bearer credential. Only the token cache writes to it.
//
// Implementations must be safe for concurrent use, but callers are not
// expected to serialize read-then-write sequences: two callers may both
// observe a stale credential and both trigger a refresh. That race is
// accepted because every write is a full replacement with a valid
// credential, so the last write wins and no partial state is visible.
type CredentialStore interface {
	// Get returns the current credential (zero value before the first
	// acquisition).
	Get() domain.Credential

	// Set replaces the credential wholesale.
	Set(cred domain.Credential)
}
