package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// ListDeputadosInput is the input schema for the list_deputados tool.
type ListDeputadosInput struct {
	Search  string `json:"search,omitempty" jsonschema:"filter by name or party (case-insensitive)"`
	UF      string `json:"uf,omitempty" jsonschema:"filter by state abbreviation (e.g. SP)"`
	Partido string `json:"partido,omitempty" jsonschema:"filter by party abbreviation"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
}

// ListDeputadosOutput is the output schema for the list_deputados tool.
type ListDeputadosOutput struct {
	Deputados []DeputadoOutput `json:"deputados"`
	Count     int              `json:"count"`
}

// DeputadoOutput is one legislator row.
type DeputadoOutput struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Party  string `json:"party,omitempty"`
	UF     string `json:"uf,omitempty"`
	Status string `json:"status,omitempty"`
}

// ExpensesInput is the input schema for the deputado_expenses tool.
type ExpensesInput struct {
	DeputadoID int64 `json:"deputado_id" jsonschema:"the legislator's numeric id"`
	Ano        int   `json:"ano,omitempty" jsonschema:"filter by year"`
	Mes        int   `json:"mes,omitempty" jsonschema:"filter by month (1-12)"`
	Limit      int   `json:"limit,omitempty" jsonschema:"maximum number of expense lines"`
}

// ExpensesOutput is the output schema for the deputado_expenses tool.
type ExpensesOutput struct {
	Expenses []ExpenseOutput `json:"expenses"`
	Total    float64         `json:"total_liquido"`
	Count    int             `json:"count"`
}

// ExpenseOutput is one reimbursement line.
type ExpenseOutput struct {
	Ano          int     `json:"ano"`
	Mes          int     `json:"mes"`
	Tipo         string  `json:"tipo,omitempty"`
	Fornecedor   string  `json:"fornecedor,omitempty"`
	ValorLiquido float64 `json:"valor_liquido"`
}

// PropositionsInput is the input schema for the propositions tool.
type PropositionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of propositions (default 20)"`
}

// PropositionsOutput is the output schema for the propositions tool.
type PropositionsOutput struct {
	Propositions []domain.PropositionItem `json:"propositions"`
	Count        int                      `json:"count"`
}

// BudgetSimulateInput is the input schema for the budget_simulate tool.
type BudgetSimulateInput struct {
	Allocations []domain.BudgetAllocation `json:"allocations" jsonschema:"the proposed category/percent split"`
}

// BudgetSimulateOutput is the output schema for the budget_simulate tool.
type BudgetSimulateOutput struct {
	Valid        bool     `json:"valid"`
	TotalPercent float64  `json:"total_percent"`
	Tradeoffs    []string `json:"tradeoffs,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_deputados",
		Description: "List Brazilian federal legislators, optionally filtered by name, party, or state",
	}, s.handleListDeputados)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "deputado_expenses",
		Description: "List parliamentary-quota reimbursements for one legislator",
	}, s.handleExpenses)

	if s.ports.Legislative != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "propositions",
			Description: "List recent legislative propositions",
		}, s.handlePropositions)
	}

	if s.ports.Budget != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "budget_simulate",
			Description: "Submit a public-budget allocation for tradeoff analysis",
		}, s.handleBudgetSimulate)
	}
}

// handleListDeputados handles the list_deputados tool invocation.
func (s *Server) handleListDeputados(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListDeputadosInput,
) (*mcp.CallToolResult, ListDeputadosOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	query := domain.DeputadoQuery{
		UF:      input.UF,
		Partido: input.Partido,
	}
	filter := driving.DeputadoFilter{
		Search: input.Search,
		Limit:  limit,
	}

	deputados, err := s.ports.Deputados.List(ctx, query, filter)
	if err != nil {
		return nil, ListDeputadosOutput{}, err
	}

	output := ListDeputadosOutput{
		Deputados: make([]DeputadoOutput, len(deputados)),
		Count:     len(deputados),
	}
	for i := range deputados {
		output.Deputados[i] = DeputadoOutput{
			ID:     deputados[i].ID,
			Name:   deputados[i].DisplayName(),
			Party:  deputados[i].StatusSiglaPartido,
			UF:     deputados[i].StatusSiglaUF,
			Status: deputados[i].StatusSituacao,
		}
	}

	return nil, output, nil
}

// handleExpenses handles the deputado_expenses tool invocation.
func (s *Server) handleExpenses(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExpensesInput,
) (*mcp.CallToolResult, ExpensesOutput, error) {
	if input.DeputadoID <= 0 {
		return nil, ExpensesOutput{}, errors.New("deputado_id is required")
	}

	query := domain.ExpenseQuery{
		Ano:   input.Ano,
		Mes:   input.Mes,
		Limit: input.Limit,
	}
	items, err := s.ports.Deputados.Expenses(ctx, input.DeputadoID, query)
	if err != nil {
		return nil, ExpensesOutput{}, err
	}

	output := ExpensesOutput{
		Expenses: make([]ExpenseOutput, len(items)),
		Count:    len(items),
	}
	for i := range items {
		output.Expenses[i] = ExpenseOutput{
			Ano:          items[i].Ano,
			Mes:          items[i].Mes,
			Tipo:         items[i].TipoDespesa,
			Fornecedor:   items[i].NomeFornecedor,
			ValorLiquido: items[i].ValorLiquido,
		}
		output.Total += items[i].ValorLiquido
	}

	return nil, output, nil
}

// handlePropositions handles the propositions tool invocation.
func (s *Server) handlePropositions(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PropositionsInput,
) (*mcp.CallToolResult, PropositionsOutput, error) {
	items, err := s.ports.Legislative.Propositions(ctx, input.Limit)
	if err != nil {
		return nil, PropositionsOutput{}, err
	}

	return nil, PropositionsOutput{
		Propositions: items,
		Count:        len(items),
	}, nil
}

// handleBudgetSimulate handles the budget_simulate tool invocation.
func (s *Server) handleBudgetSimulate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BudgetSimulateInput,
) (*mcp.CallToolResult, BudgetSimulateOutput, error) {
	req := domain.BudgetSimulationRequest{Allocations: input.Allocations}

	resp, err := s.ports.Budget.Simulate(ctx, req)
	if err != nil {
		return nil, BudgetSimulateOutput{}, err
	}

	return nil, BudgetSimulateOutput{
		Valid:        resp.Valid,
		TotalPercent: resp.TotalPercent,
		Tradeoffs:    resp.Tradeoffs,
	}, nil
}
