package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// Ensure DeputadosService implements the driving port.
var _ driving.DeputadosService = (*DeputadosService)(nil)

// DeputadosService provides legislator browsing. The civic API filters
// server-side where it can; search, ordering and pagination of the
// fetched slice happen here.
type DeputadosService struct {
	api driven.CivicAPI
}

// NewDeputadosService creates a deputados service.
func NewDeputadosService(api driven.CivicAPI) *DeputadosService {
	return &DeputadosService{api: api}
}

// List fetches profiles and applies the client-side filter.
func (s *DeputadosService) List(
	ctx context.Context,
	query domain.DeputadoQuery,
	filter driving.DeputadoFilter,
) ([]domain.Deputado, error) {
	deputados, err := s.api.ListDeputados(ctx, query)
	if err != nil {
		return nil, err
	}
	return applyFilter(deputados, filter), nil
}

// Get fetches one profile, mapping absence to ErrNotFound.
func (s *DeputadosService) Get(ctx context.Context, id int64) (domain.Deputado, error) {
	deputado, err := s.api.GetDeputado(ctx, id)
	if err != nil {
		return domain.Deputado{}, err
	}
	if deputado == nil {
		return domain.Deputado{}, fmt.Errorf("deputado %d: %w", id, domain.ErrNotFound)
	}
	return *deputado, nil
}

// ExpenseSummary lists aggregated reimbursement summaries.
func (s *DeputadosService) ExpenseSummary(ctx context.Context, limit int) ([]domain.ExpenseSummary, error) {
	return s.api.ExpenseSummary(ctx, limit)
}

// Expenses lists reimbursement lines for one legislator.
func (s *DeputadosService) Expenses(
	ctx context.Context,
	deputadoID int64,
	query domain.ExpenseQuery,
) ([]domain.ExpenseItem, error) {
	return s.api.Expenses(ctx, deputadoID, query)
}

// applyFilter narrows, orders and paginates an already-fetched slice.
func applyFilter(deputados []domain.Deputado, filter driving.DeputadoFilter) []domain.Deputado {
	filtered := make([]domain.Deputado, 0, len(deputados))
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	uf := strings.ToUpper(strings.TrimSpace(filter.UF))

	for _, d := range deputados {
		if uf != "" && !strings.EqualFold(d.StatusSiglaUF, uf) {
			continue
		}
		if search != "" && !matchesSearch(d, search) {
			continue
		}
		filtered = append(filtered, d)
	}

	sortDeputados(filtered, filter.Sort, filter.Descending)
	return paginate(filtered, filter.Offset, filter.Limit)
}

// matchesSearch checks the query against display name and party.
func matchesSearch(d domain.Deputado, search string) bool {
	return strings.Contains(strings.ToLower(d.DisplayName()), search) ||
		strings.Contains(strings.ToLower(d.StatusSiglaPartido), search)
}

func sortDeputados(deputados []domain.Deputado, key driving.DeputadoSort, descending bool) {
	less := func(a, b domain.Deputado) bool {
		switch key {
		case driving.SortByParty:
			if a.StatusSiglaPartido != b.StatusSiglaPartido {
				return a.StatusSiglaPartido < b.StatusSiglaPartido
			}
		case driving.SortByUF:
			if a.StatusSiglaUF != b.StatusSiglaUF {
				return a.StatusSiglaUF < b.StatusSiglaUF
			}
		}
		// Name is both the default key and the tie-breaker.
		return strings.ToLower(a.DisplayName()) < strings.ToLower(b.DisplayName())
	}

	sort.SliceStable(deputados, func(i, j int) bool {
		if descending {
			return less(deputados[j], deputados[i])
		}
		return less(deputados[i], deputados[j])
	})
}

func paginate(deputados []domain.Deputado, offset, limit int) []domain.Deputado {
	if offset >= len(deputados) {
		return []domain.Deputado{}
	}
	if offset > 0 {
		deputados = deputados[offset:]
	}
	if limit > 0 && limit < len(deputados) {
		deputados = deputados[:limit]
	}
	return deputados
}
