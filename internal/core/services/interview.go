package services

import (
	"context"
	"fmt"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
	"github.com/brado-project/brado-cli/internal/logger"
)

// Ensure InterviewService implements the driving port.
var _ driving.InterviewService = (*InterviewService)(nil)

// InterviewService drives the Likert interview flow and keeps the
// durable bookkeeping (session id, answered count, recorded answers)
// in the session store so an interrupted interview can resume.
type InterviewService struct {
	api      driven.BradoAPI
	sessions driven.SessionStore
}

// NewInterviewService creates an interview service.
func NewInterviewService(api driven.BradoAPI, sessions driven.SessionStore) *InterviewService {
	return &InterviewService{api: api, sessions: sessions}
}

// Start opens a new session, replacing any persisted one.
func (s *InterviewService) Start(ctx context.Context, userID string) (driving.InterviewProgress, error) {
	resp, err := s.api.StartInterview(ctx, userID)
	if err != nil {
		return driving.InterviewProgress{}, err
	}
	if resp.SessionID == "" {
		return driving.InterviewProgress{}, fmt.Errorf("%w: start returned no session id", domain.ErrInvalidInput)
	}

	session := domain.InterviewSession{
		SessionID:     resp.SessionID,
		AnsweredCount: resp.AnsweredCount,
		Answers:       make(map[string]int),
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return driving.InterviewProgress{}, fmt.Errorf("persist session: %w", err)
	}
	logger.Info("interview session %s started", resp.SessionID)

	return driving.InterviewProgress{
		SessionID:     resp.SessionID,
		AnsweredCount: resp.AnsweredCount,
		Question:      resp.FirstQuestion(),
	}, nil
}

// Resume returns the persisted session state without contacting the API.
func (s *InterviewService) Resume(ctx context.Context) (driving.InterviewProgress, error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return driving.InterviewProgress{}, err
	}
	return driving.InterviewProgress{
		SessionID:     session.SessionID,
		AnsweredCount: session.AnsweredCount,
	}, nil
}

// Answer records one Likert answer and advances the flow.
func (s *InterviewService) Answer(ctx context.Context, questionID string, value int) (driving.InterviewProgress, error) {
	if !domain.ValidLikert(value) {
		return driving.InterviewProgress{}, fmt.Errorf(
			"%w: answer %d outside %d..%d", domain.ErrInvalidInput, value, domain.LikertMin, domain.LikertMax)
	}

	session, err := s.loadSession(ctx)
	if err != nil {
		return driving.InterviewProgress{}, err
	}

	resp, err := s.api.AnswerInterview(ctx, session.SessionID, domain.InterviewAnswerRequest{
		Answer:     value,
		QuestionID: questionID,
	})
	if err != nil {
		return driving.InterviewProgress{}, err
	}

	if questionID != "" {
		session.Answers[questionID] = value
	}
	if resp.AnsweredCount > 0 {
		session.AnsweredCount = resp.AnsweredCount
	} else {
		session.AnsweredCount++
	}
	if err := s.sessions.SaveSession(ctx, *session); err != nil {
		return driving.InterviewProgress{}, fmt.Errorf("persist session: %w", err)
	}

	return driving.InterviewProgress{
		SessionID:     session.SessionID,
		AnsweredCount: session.AnsweredCount,
		Question:      domain.NormalizeQuestion(resp.NextQuestion),
		Done:          resp.Done,
	}, nil
}

// Finish closes the session server-side and returns the scored result.
// The local bookkeeping is kept so Result and Export can still resolve
// the session id; Start replaces it, Abandon drops it.
func (s *InterviewService) Finish(ctx context.Context) (domain.InterviewResult, error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return domain.InterviewResult{}, err
	}

	result, err := s.api.FinishInterview(ctx, session.SessionID)
	if err != nil {
		return domain.InterviewResult{}, err
	}
	logger.Info("interview session %s finished", session.SessionID)
	return result, nil
}

// Result re-fetches the result of the persisted session.
func (s *InterviewService) Result(ctx context.Context) (domain.InterviewResult, error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return domain.InterviewResult{}, err
	}
	return s.api.InterviewResult(ctx, session.SessionID)
}

// Export downloads the result file for the persisted session.
func (s *InterviewService) Export(ctx context.Context, format string) ([]byte, string, error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return nil, "", err
	}
	return s.api.ExportInterview(ctx, session.SessionID, format)
}

// Abandon drops the persisted session without contacting the API.
func (s *InterviewService) Abandon(ctx context.Context) error {
	return s.sessions.ClearSession(ctx)
}

func (s *InterviewService) loadSession(ctx context.Context) (*domain.InterviewSession, error) {
	session, err := s.sessions.Session(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.SessionID == "" {
		return nil, domain.ErrNoSession
	}
	if session.Answers == nil {
		session.Answers = make(map[string]int)
	}
	return session, nil
}
