package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brado-project/brado-cli/internal/core/domain"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Simulate budget allocations",
}

var budgetSimulateCmd = &cobra.Command{
	Use:   "simulate [category=percent ...]",
	Short: "Submit an allocation set for tradeoff analysis",
	Long: `Submit a budget allocation for server-side tradeoff analysis.

Each argument is a category=percent pair. Percentages need not add up
to 100; the simulator reports on whatever split you propose.

Example:
  brado budget simulate saude=40 educacao=35 seguranca=25`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBudgetSimulate,
}

func init() {
	budgetCmd.AddCommand(budgetSimulateCmd)
	rootCmd.AddCommand(budgetCmd)
}

func runBudgetSimulate(cmd *cobra.Command, args []string) error {
	if budgetService == nil {
		return errors.New("budget service not configured")
	}

	req, err := parseAllocations(args)
	if err != nil {
		return err
	}

	resp, err := budgetService.Simulate(context.Background(), req)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	if resp.Valid {
		cmd.Printf("Allocation accepted (total %.1f%%).\n", resp.TotalPercent)
	} else {
		cmd.Printf("Allocation rejected (total %.1f%%).\n", resp.TotalPercent)
	}
	if len(resp.Tradeoffs) > 0 {
		cmd.Println("\nTradeoffs:")
		for _, tr := range resp.Tradeoffs {
			cmd.Printf("  - %s\n", tr)
		}
	}
	return nil
}

func parseAllocations(args []string) (domain.BudgetSimulationRequest, error) {
	var req domain.BudgetSimulationRequest
	for _, arg := range args {
		category, value, found := strings.Cut(arg, "=")
		if !found {
			return req, fmt.Errorf("invalid allocation %q, expected category=percent", arg)
		}
		percent, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return req, fmt.Errorf("invalid percentage in %q", arg)
		}
		req.Allocations = append(req.Allocations, domain.BudgetAllocation{
			Category: strings.TrimSpace(category),
			Percent:  percent,
		})
	}
	return req, nil
}
