package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

func TestBudgetSimulateValidatesBeforeSubmitting(t *testing.T) {
	var submitted bool
	svc := NewBudgetService(&fakeBradoAPI{
		simulateFn: func(context.Context, domain.BudgetSimulationRequest) (domain.BudgetSimulationResponse, error) {
			submitted = true
			return domain.BudgetSimulationResponse{}, nil
		},
	})

	_, err := svc.Simulate(context.Background(), domain.BudgetSimulationRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.False(t, submitted, "invalid allocations never reach the API")
}

func TestBudgetSimulateSubmitsValidSet(t *testing.T) {
	svc := NewBudgetService(&fakeBradoAPI{
		simulateFn: func(_ context.Context, req domain.BudgetSimulationRequest) (domain.BudgetSimulationResponse, error) {
			assert.Len(t, req.Allocations, 2)
			return domain.BudgetSimulationResponse{
				Valid:        true,
				TotalPercent: 100,
				Tradeoffs:    []string{"menos saneamento"},
			}, nil
		},
	})

	resp, err := svc.Simulate(context.Background(), domain.BudgetSimulationRequest{
		Allocations: []domain.BudgetAllocation{
			{Category: "saude", Percent: 60},
			{Category: "educacao", Percent: 40},
		},
	})
	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Equal(t, []string{"menos saneamento"}, resp.Tradeoffs)
}

func TestLegislativePropositions(t *testing.T) {
	svc := NewLegislativeService(&fakeBradoAPI{
		propsFn: func(_ context.Context, limit int) (domain.PropositionsResponse, error) {
			assert.Equal(t, 5, limit)
			return domain.PropositionsResponse{Items: []domain.PropositionItem{
				{ID: "101", Title: "PL do saneamento"},
			}}, nil
		},
	})

	items, err := svc.Propositions(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "PL do saneamento", items[0].Title)
}
