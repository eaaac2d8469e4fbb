package driven

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// SessionStore persists per-installation state across process restarts:
// the stable client ID and the interview bookkeeping. The live bearer
// token and its expiry are deliberately never stored, so every restart
// performs exactly one token acquisition.
type SessionStore interface {
	// ClientID returns the persisted client identifier, or "" if none
	// has been generated yet.
	ClientID(ctx context.Context) (string, error)

	// SaveClientID persists the client identifier. It is written once
	// per installation and never regenerated.
	SaveClientID(ctx context.Context, clientID string) error

	// Session returns the persisted interview bookkeeping, or nil when
	// no interview is in progress.
	Session(ctx context.Context) (*domain.InterviewSession, error)

	// SaveSession replaces the interview bookkeeping.
	SaveSession(ctx context.Context, session domain.InterviewSession) error

	// ClearSession removes the interview bookkeeping, keeping the
	// client ID untouched.
	ClearSession(ctx context.Context) error
}
