// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants browse civic data and run budget simulations
// through the same driving ports the CLI uses.
package mcp

import "errors"

// ErrMissingDeputadosService is returned when the deputados service is not provided.
var ErrMissingDeputadosService = errors.New("mcp: deputados service is required")
