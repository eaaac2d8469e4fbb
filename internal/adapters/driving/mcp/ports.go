package mcp

import (
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Deputados provides legislator browsing.
	Deputados driving.DeputadosService

	// Budget runs budget simulations.
	Budget driving.BudgetService

	// Legislative lists propositions.
	Legislative driving.LegislativeService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Deputados == nil {
		return ErrMissingDeputadosService
	}
	// Budget and Legislative are optional; their tools are simply not
	// registered when absent.
	return nil
}
