package brado

import (
	"context"
	"fmt"
	"net/http"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

// SimulateBudget submits an allocation set for tradeoff analysis.
// Tradeoff computation is entirely server-side.
func (c *Client) SimulateBudget(
	ctx context.Context,
	req domain.BudgetSimulationRequest,
) (domain.BudgetSimulationResponse, error) {
	var resp domain.BudgetSimulationResponse
	err := c.Call(ctx, http.MethodPost, APIPrefix+"/budget/simulate", req, &resp, true)
	if err != nil {
		return domain.BudgetSimulationResponse{}, fmt.Errorf("simulate budget: %w", err)
	}
	return resp, nil
}
