// Package memory provides in-memory store implementations. The
// credential store is the live home of the bearer token: deliberately
// volatile, so a restart always forces one re-acquisition.
package memory

import (
	"sync"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is a mutex-guarded credential cell. The guard makes
// individual reads and writes safe; it does not serialize
// read-then-write sequences, so concurrent refreshes stay possible and
// harmless (every write is a full replacement).
type CredentialStore struct {
	mu   sync.RWMutex
	cred domain.Credential
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Get returns the current credential.
func (s *CredentialStore) Get() domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cred
}

// Set replaces the credential wholesale.
func (s *CredentialStore) Set(cred domain.Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
}
