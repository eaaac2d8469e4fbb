package driven

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// BradoAPI is the authenticated Brado service surface. Implementations
// own the bearer-token lifecycle: callers never pass or see tokens.
type BradoAPI interface {
	// EnsureToken guarantees a token valid for at least the safety
	// margin and returns the credential in effect.
	EnsureToken(ctx context.Context) (domain.Credential, error)

	// Me returns the identity bound to the current token.
	Me(ctx context.Context) (domain.AuthMe, error)

	// StartInterview opens a Likert interview session.
	StartInterview(ctx context.Context, userID string) (domain.InterviewStartResponse, error)

	// AnswerInterview records one answer for the session.
	AnswerInterview(ctx context.Context, sessionID string, req domain.InterviewAnswerRequest) (domain.InterviewAnswerResponse, error)

	// FinishInterview closes the session and returns the scored result.
	FinishInterview(ctx context.Context, sessionID string) (domain.InterviewResult, error)

	// InterviewResult re-fetches the result of a finished session.
	InterviewResult(ctx context.Context, sessionID string) (domain.InterviewResult, error)

	// ExportInterview downloads the result as a file. Returns the raw
	// bytes and the response content type. Single attempt: the export
	// path does not participate in the 401 retry policy.
	ExportInterview(ctx context.Context, sessionID, format string) ([]byte, string, error)

	// SimulateBudget submits an allocation set for tradeoff analysis.
	SimulateBudget(ctx context.Context, req domain.BudgetSimulationRequest) (domain.BudgetSimulationResponse, error)

	// Propositions lists recent legislative propositions.
	Propositions(ctx context.Context, limit int) (domain.PropositionsResponse, error)
}

// CivicAPI is the unauthenticated civic data surface (normalized
// Câmara records).
type CivicAPI interface {
	// ListDeputados lists legislator profiles matching the query.
	ListDeputados(ctx context.Context, query domain.DeputadoQuery) ([]domain.Deputado, error)

	// GetDeputado fetches one profile. A missing profile returns
	// (nil, nil), not an error.
	GetDeputado(ctx context.Context, id int64) (*domain.Deputado, error)

	// ExpenseSummary lists aggregated reimbursement summaries.
	ExpenseSummary(ctx context.Context, limit int) ([]domain.ExpenseSummary, error)

	// Expenses lists reimbursement lines for one legislator.
	Expenses(ctx context.Context, deputadoID int64, query domain.ExpenseQuery) ([]domain.ExpenseItem, error)
}
