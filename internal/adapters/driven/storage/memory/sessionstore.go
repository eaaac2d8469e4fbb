package memory

import (
	"context"
	"sync"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
)

// Ensure SessionStore implements the interface.
var _ driven.SessionStore = (*SessionStore)(nil)

// SessionStore keeps the client ID and interview bookkeeping in
// memory. Used in tests and wherever durability is not wanted.
type SessionStore struct {
	mu       sync.RWMutex
	clientID string
	session  *domain.InterviewSession
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// ClientID returns the stored client identifier, or "".
func (s *SessionStore) ClientID(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clientID, nil
}

// SaveClientID stores the client identifier.
func (s *SessionStore) SaveClientID(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clientID = clientID
	return nil
}

// Session returns the stored interview bookkeeping, or nil.
func (s *SessionStore) Session(_ context.Context) (*domain.InterviewSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil, nil
	}
	copied := *s.session
	copied.Answers = make(map[string]int, len(s.session.Answers))
	for k, v := range s.session.Answers {
		copied.Answers[k] = v
	}
	return &copied, nil
}

// SaveSession replaces the interview bookkeeping.
func (s *SessionStore) SaveSession(_ context.Context, session domain.InterviewSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = &session
	return nil
}

// ClearSession removes the interview bookkeeping, keeping the client ID.
func (s *SessionStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = nil
	return nil
}
