package services

import (
	"context"
	"encoding/json"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// fakeBradoAPI is a hand-rolled driven.BradoAPI double. Each field
// overrides one call; unset calls return zero values.
type fakeBradoAPI struct {
	startFn    func(ctx context.Context, userID string) (domain.InterviewStartResponse, error)
	answerFn   func(ctx context.Context, sessionID string, req domain.InterviewAnswerRequest) (domain.InterviewAnswerResponse, error)
	finishFn   func(ctx context.Context, sessionID string) (domain.InterviewResult, error)
	resultFn   func(ctx context.Context, sessionID string) (domain.InterviewResult, error)
	exportFn   func(ctx context.Context, sessionID, format string) ([]byte, string, error)
	simulateFn func(ctx context.Context, req domain.BudgetSimulationRequest) (domain.BudgetSimulationResponse, error)
	propsFn    func(ctx context.Context, limit int) (domain.PropositionsResponse, error)
}

func (f *fakeBradoAPI) EnsureToken(context.Context) (domain.Credential, error) {
	return domain.Credential{}, nil
}

func (f *fakeBradoAPI) Me(context.Context) (domain.AuthMe, error) {
	return domain.AuthMe{}, nil
}

func (f *fakeBradoAPI) StartInterview(ctx context.Context, userID string) (domain.InterviewStartResponse, error) {
	if f.startFn == nil {
		return domain.InterviewStartResponse{}, nil
	}
	return f.startFn(ctx, userID)
}

func (f *fakeBradoAPI) AnswerInterview(
	ctx context.Context,
	sessionID string,
	req domain.InterviewAnswerRequest,
) (domain.InterviewAnswerResponse, error) {
	if f.answerFn == nil {
		return domain.InterviewAnswerResponse{}, nil
	}
	return f.answerFn(ctx, sessionID, req)
}

func (f *fakeBradoAPI) FinishInterview(ctx context.Context, sessionID string) (domain.InterviewResult, error) {
	if f.finishFn == nil {
		return domain.InterviewResult{}, nil
	}
	return f.finishFn(ctx, sessionID)
}

func (f *fakeBradoAPI) InterviewResult(ctx context.Context, sessionID string) (domain.InterviewResult, error) {
	if f.resultFn == nil {
		return domain.InterviewResult{}, nil
	}
	return f.resultFn(ctx, sessionID)
}

func (f *fakeBradoAPI) ExportInterview(ctx context.Context, sessionID, format string) ([]byte, string, error) {
	if f.exportFn == nil {
		return nil, "", nil
	}
	return f.exportFn(ctx, sessionID, format)
}

func (f *fakeBradoAPI) SimulateBudget(
	ctx context.Context,
	req domain.BudgetSimulationRequest,
) (domain.BudgetSimulationResponse, error) {
	if f.simulateFn == nil {
		return domain.BudgetSimulationResponse{}, nil
	}
	return f.simulateFn(ctx, req)
}

func (f *fakeBradoAPI) Propositions(ctx context.Context, limit int) (domain.PropositionsResponse, error) {
	if f.propsFn == nil {
		return domain.PropositionsResponse{}, nil
	}
	return f.propsFn(ctx, limit)
}

// fakeCivicAPI is a hand-rolled driven.CivicAPI double.
type fakeCivicAPI struct {
	listFn     func(ctx context.Context, query domain.DeputadoQuery) ([]domain.Deputado, error)
	getFn      func(ctx context.Context, id int64) (*domain.Deputado, error)
	summaryFn  func(ctx context.Context, limit int) ([]domain.ExpenseSummary, error)
	expensesFn func(ctx context.Context, deputadoID int64, query domain.ExpenseQuery) ([]domain.ExpenseItem, error)
}

func (f *fakeCivicAPI) ListDeputados(ctx context.Context, query domain.DeputadoQuery) ([]domain.Deputado, error) {
	if f.listFn == nil {
		return nil, nil
	}
	return f.listFn(ctx, query)
}

func (f *fakeCivicAPI) GetDeputado(ctx context.Context, id int64) (*domain.Deputado, error) {
	if f.getFn == nil {
		return nil, nil
	}
	return f.getFn(ctx, id)
}

func (f *fakeCivicAPI) ExpenseSummary(ctx context.Context, limit int) ([]domain.ExpenseSummary, error) {
	if f.summaryFn == nil {
		return nil, nil
	}
	return f.summaryFn(ctx, limit)
}

func (f *fakeCivicAPI) Expenses(
	ctx context.Context,
	deputadoID int64,
	query domain.ExpenseQuery,
) ([]domain.ExpenseItem, error) {
	if f.expensesFn == nil {
		return nil, nil
	}
	return f.expensesFn(ctx, deputadoID, query)
}

// question builds a raw question payload for fakes.
func question(id, text string) *json.RawMessage {
	raw, _ := json.Marshal(map[string]string{"question_id": id, "text": text})
	msg := json.RawMessage(raw)
	return &msg
}
