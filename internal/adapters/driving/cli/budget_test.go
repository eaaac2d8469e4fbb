package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

func TestParseAllocations(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []domain.BudgetAllocation
		wantErr string
	}{
		{
			name: "well-formed pairs",
			args: []string{"saude=40", "educacao=35.5"},
			want: []domain.BudgetAllocation{
				{Category: "saude", Percent: 40},
				{Category: "educacao", Percent: 35.5},
			},
		},
		{
			name:    "missing separator",
			args:    []string{"saude40"},
			wantErr: "expected category=percent",
		},
		{
			name:    "non-numeric percentage",
			args:    []string{"saude=muito"},
			wantErr: "invalid percentage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := parseAllocations(tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Allocations)
		})
	}
}

func TestBudgetSimulateCmd_Executes(t *testing.T) {
	svcs, cleanup := setupTestServices()
	defer cleanup()

	svcs.budget.resp = domain.BudgetSimulationResponse{
		Valid:        true,
		TotalPercent: 100,
		Tradeoffs:    []string{"menos verba para cultura"},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"budget", "simulate", "saude=60", "educacao=40"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Allocation accepted")
	assert.Contains(t, buf.String(), "menos verba para cultura")
	require.Len(t, svcs.budget.lastReq.Allocations, 2)
	assert.Equal(t, "saude", svcs.budget.lastReq.Allocations[0].Category)
}

func TestBudgetSimulateCmd_RequiresArgs(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"budget", "simulate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
