package cli

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// Scriptable fakes for the driving ports. setupTestServices installs
// them into the package vars and returns a cleanup restoring the
// previous wiring.

type fakeInterviewService struct {
	progress driving.InterviewProgress
	result   domain.InterviewResult
	payload  []byte
	content  string
	err      error

	lastQuestionID string
	lastValue      int
}

func (f *fakeInterviewService) Start(_ context.Context, _ string) (driving.InterviewProgress, error) {
	return f.progress, f.err
}

func (f *fakeInterviewService) Resume(_ context.Context) (driving.InterviewProgress, error) {
	return f.progress, f.err
}

func (f *fakeInterviewService) Answer(_ context.Context, questionID string, value int) (driving.InterviewProgress, error) {
	f.lastQuestionID = questionID
	f.lastValue = value
	return f.progress, f.err
}

func (f *fakeInterviewService) Finish(_ context.Context) (domain.InterviewResult, error) {
	return f.result, f.err
}

func (f *fakeInterviewService) Result(_ context.Context) (domain.InterviewResult, error) {
	return f.result, f.err
}

func (f *fakeInterviewService) Export(_ context.Context, _ string) ([]byte, string, error) {
	return f.payload, f.content, f.err
}

func (f *fakeInterviewService) Abandon(_ context.Context) error {
	return f.err
}

type fakeDeputadosService struct {
	deputados []domain.Deputado
	deputado  domain.Deputado
	summaries []domain.ExpenseSummary
	expenses  []domain.ExpenseItem
	err       error
}

func (f *fakeDeputadosService) List(_ context.Context, _ domain.DeputadoQuery, _ driving.DeputadoFilter) ([]domain.Deputado, error) {
	return f.deputados, f.err
}

func (f *fakeDeputadosService) Get(_ context.Context, _ int64) (domain.Deputado, error) {
	return f.deputado, f.err
}

func (f *fakeDeputadosService) ExpenseSummary(_ context.Context, _ int) ([]domain.ExpenseSummary, error) {
	return f.summaries, f.err
}

func (f *fakeDeputadosService) Expenses(_ context.Context, _ int64, _ domain.ExpenseQuery) ([]domain.ExpenseItem, error) {
	return f.expenses, f.err
}

type fakeBudgetService struct {
	resp    domain.BudgetSimulationResponse
	err     error
	lastReq domain.BudgetSimulationRequest
}

func (f *fakeBudgetService) Simulate(_ context.Context, req domain.BudgetSimulationRequest) (domain.BudgetSimulationResponse, error) {
	f.lastReq = req
	return f.resp, f.err
}

type fakeLegislativeService struct {
	items []domain.PropositionItem
	err   error
}

func (f *fakeLegislativeService) Propositions(_ context.Context, _ int) ([]domain.PropositionItem, error) {
	return f.items, f.err
}

type testServices struct {
	interview   *fakeInterviewService
	deputados   *fakeDeputadosService
	budget      *fakeBudgetService
	legislative *fakeLegislativeService
}

func setupTestServices() (*testServices, func()) {
	prevInterview := interviewService
	prevDeputados := deputadosService
	prevBudget := budgetService
	prevLegislative := legislativeService

	svcs := &testServices{
		interview:   &fakeInterviewService{},
		deputados:   &fakeDeputadosService{},
		budget:      &fakeBudgetService{},
		legislative: &fakeLegislativeService{},
	}
	interviewService = svcs.interview
	deputadosService = svcs.deputados
	budgetService = svcs.budget
	legislativeService = svcs.legislative

	return svcs, func() {
		interviewService = prevInterview
		deputadosService = prevDeputados
		budgetService = prevBudget
		legislativeService = prevLegislative
	}
}
