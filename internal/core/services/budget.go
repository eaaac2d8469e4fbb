package services

import (
	"context"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// Ensure BudgetService implements the driving port.
var _ driving.BudgetService = (*BudgetService)(nil)

// BudgetService validates allocation sets locally before handing them
// to the simulator. Tradeoff analysis stays server-side.
type BudgetService struct {
	api driven.BradoAPI
}

// NewBudgetService creates a budget service.
func NewBudgetService(api driven.BradoAPI) *BudgetService {
	return &BudgetService{api: api}
}

// Simulate validates the allocation set and submits it.
func (s *BudgetService) Simulate(
	ctx context.Context,
	req domain.BudgetSimulationRequest,
) (domain.BudgetSimulationResponse, error) {
	if err := req.Validate(); err != nil {
		return domain.BudgetSimulationResponse{}, err
	}
	return s.api.SimulateBudget(ctx, req)
}
