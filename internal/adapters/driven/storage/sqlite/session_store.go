package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// sessionStore implements driven.SessionStore against the single-row
// installation and interview_session tables.
type sessionStore struct {
	store *Store
}

func (s *sessionStore) ClientID(ctx context.Context) (string, error) {
	var clientID string
	row := s.store.db.QueryRowContext(ctx, "SELECT client_id FROM installation WHERE id = 1")
	if err := row.Scan(&clientID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("reading client id: %w", err)
	}
	return clientID, nil
}

func (s *sessionStore) SaveClientID(ctx context.Context, clientID string) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO installation (id, client_id) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET client_id = excluded.client_id
	`, clientID)
	if err != nil {
		return fmt.Errorf("saving client id: %w", err)
	}
	return nil
}

func (s *sessionStore) Session(ctx context.Context) (*domain.InterviewSession, error) {
	var (
		sessionID     string
		answeredCount int
		answersJSON   string
	)
	row := s.store.db.QueryRowContext(ctx,
		"SELECT session_id, answered_count, answers FROM interview_session WHERE id = 1")
	if err := row.Scan(&sessionID, &answeredCount, &answersJSON); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	answers := make(map[string]int)
	if answersJSON != "" {
		if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
			return nil, fmt.Errorf("decoding answers: %w", err)
		}
	}

	return &domain.InterviewSession{
		SessionID:     sessionID,
		AnsweredCount: answeredCount,
		Answers:       answers,
	}, nil
}

func (s *sessionStore) SaveSession(ctx context.Context, session domain.InterviewSession) error {
	answers := session.Answers
	if answers == nil {
		answers = map[string]int{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encoding answers: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO interview_session (id, session_id, answered_count, answers, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			session_id = excluded.session_id,
			answered_count = excluded.answered_count,
			answers = excluded.answers,
			updated_at = CURRENT_TIMESTAMP
	`, session.SessionID, session.AnsweredCount, string(answersJSON))
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *sessionStore) ClearSession(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM interview_session WHERE id = 1")
	if err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
