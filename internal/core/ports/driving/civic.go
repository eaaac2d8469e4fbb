package driving

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// DeputadoSort selects the ordering of a legislator listing.
type DeputadoSort string

// Sort keys accepted by DeputadosService.List.
const (
	SortByName  DeputadoSort = "name"
	SortByParty DeputadoSort = "party"
	SortByUF    DeputadoSort = "uf"
)

// DeputadoFilter narrows and orders an already-fetched listing
// client-side, on top of whatever the civic API filtered server-side.
type DeputadoFilter struct {
	// Search matches case-insensitively against name and party.
	Search string
	// UF keeps only legislators from one state.
	UF string
	// Sort selects the ordering; empty means SortByName.
	Sort DeputadoSort
	// Descending reverses the ordering.
	Descending bool
	// Offset and Limit paginate the filtered slice. Zero Limit means
	// no pagination.
	Offset int
	Limit  int
}

// DeputadosService provides legislator browsing to external actors.
type DeputadosService interface {
	// List fetches profiles and applies the client-side filter.
	List(ctx context.Context, query domain.DeputadoQuery, filter DeputadoFilter) ([]domain.Deputado, error)

	// Get fetches one profile, or ErrNotFound.
	Get(ctx context.Context, id int64) (domain.Deputado, error)

	// ExpenseSummary lists aggregated reimbursement summaries.
	ExpenseSummary(ctx context.Context, limit int) ([]domain.ExpenseSummary, error)

	// Expenses lists reimbursement lines for one legislator.
	Expenses(ctx context.Context, deputadoID int64, query domain.ExpenseQuery) ([]domain.ExpenseItem, error)
}

// BudgetService validates and submits budget simulations.
type BudgetService interface {
	// Simulate validates the allocation set locally, then submits it.
	Simulate(ctx context.Context, req domain.BudgetSimulationRequest) (domain.BudgetSimulationResponse, error)
}

// LegislativeService lists legislative propositions.
type LegislativeService interface {
	// Propositions lists recent propositions (limit <= 0 uses the
	// service default).
	Propositions(ctx context.Context, limit int) ([]domain.PropositionItem, error)
}
