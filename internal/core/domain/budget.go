package domain

import (
	"fmt"
	"strings"
)

// BudgetAllocation assigns a share of the budget to one category.
type BudgetAllocation struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
}

// BudgetSimulationRequest is the payload sent to the simulator.
type BudgetSimulationRequest struct {
	Allocations []BudgetAllocation `json:"allocations"`
}

// BudgetSimulationResponse is the simulator's verdict. Tradeoff
// analysis is entirely server-side.
type BudgetSimulationResponse struct {
	Valid        bool     `json:"valid"`
	TotalPercent float64  `json:"total_percent"`
	Tradeoffs    []string `json:"tradeoffs"`
}

// TotalPercent sums the allocation shares.
func (r BudgetSimulationRequest) TotalPercent() float64 {
	var total float64
	for _, a := range r.Allocations {
		total += a.Percent
	}
	return total
}

// Validate checks an allocation set before it is sent to the simulator:
// at least one allocation, categories non-blank and unique, each share
// within [0, 100]. The server remains authoritative for everything else.
func (r BudgetSimulationRequest) Validate() error {
	if len(r.Allocations) == 0 {
		return fmt.Errorf("%w: no allocations", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(r.Allocations))
	for _, a := range r.Allocations {
		category := strings.TrimSpace(a.Category)
		if category == "" {
			return fmt.Errorf("%w: blank category", ErrInvalidInput)
		}
		key := strings.ToLower(category)
		if seen[key] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidInput, a.Category)
		}
		seen[key] = true
		if a.Percent < 0 || a.Percent > 100 {
			return fmt.Errorf("%w: category %q percent %.2f out of range", ErrInvalidInput, a.Category, a.Percent)
		}
	}
	return nil
}
