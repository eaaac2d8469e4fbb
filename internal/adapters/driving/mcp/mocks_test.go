package mcp

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// mockDeputadosService is a mock implementation of driving.DeputadosService.
type mockDeputadosService struct {
	deputados  []domain.Deputado
	deputado   domain.Deputado
	summaries  []domain.ExpenseSummary
	expenses   []domain.ExpenseItem
	err        error
	lastFilter driving.DeputadoFilter
}

func (m *mockDeputadosService) List(
	_ context.Context,
	_ domain.DeputadoQuery,
	filter driving.DeputadoFilter,
) ([]domain.Deputado, error) {
	m.lastFilter = filter
	return m.deputados, m.err
}

func (m *mockDeputadosService) Get(_ context.Context, _ int64) (domain.Deputado, error) {
	return m.deputado, m.err
}

func (m *mockDeputadosService) ExpenseSummary(_ context.Context, _ int) ([]domain.ExpenseSummary, error) {
	return m.summaries, m.err
}

func (m *mockDeputadosService) Expenses(
	_ context.Context,
	_ int64,
	_ domain.ExpenseQuery,
) ([]domain.ExpenseItem, error) {
	return m.expenses, m.err
}

// mockBudgetService is a mock implementation of driving.BudgetService.
type mockBudgetService struct {
	resp    domain.BudgetSimulationResponse
	err     error
	lastReq domain.BudgetSimulationRequest
}

func (m *mockBudgetService) Simulate(
	_ context.Context,
	req domain.BudgetSimulationRequest,
) (domain.BudgetSimulationResponse, error) {
	m.lastReq = req
	return m.resp, m.err
}

// mockLegislativeService is a mock implementation of driving.LegislativeService.
type mockLegislativeService struct {
	items []domain.PropositionItem
	err   error
}

func (m *mockLegislativeService) Propositions(_ context.Context, _ int) ([]domain.PropositionItem, error) {
	return m.items, m.err
}
