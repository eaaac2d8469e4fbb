package driving

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// InterviewProgress is the state of an in-progress interview as seen by
// a presentation surface.
type InterviewProgress struct {
	SessionID     string
	AnsweredCount int
	Question      *domain.InterviewQuestion
	Done          bool
}

// InterviewService drives the Likert interview flow. It owns the
// durable session bookkeeping; surfaces only render what it returns.
type InterviewService interface {
	// Start opens a new session, replacing any persisted one.
	Start(ctx context.Context, userID string) (InterviewProgress, error)

	// Resume returns the persisted session state, or ErrNoSession.
	Resume(ctx context.Context) (InterviewProgress, error)

	// Answer records a Likert answer (1..7) for the current question.
	Answer(ctx context.Context, questionID string, value int) (InterviewProgress, error)

	// Finish closes the session and returns the scored result.
	Finish(ctx context.Context) (domain.InterviewResult, error)

	// Result re-fetches the result of the persisted session.
	Result(ctx context.Context) (domain.InterviewResult, error)

	// Export downloads the result file for the persisted session.
	// Format is "json" or "pdf". Returns payload and content type.
	Export(ctx context.Context, format string) ([]byte, string, error)

	// Abandon drops the persisted session without contacting the API.
	Abandon(ctx context.Context) error
}
