// Package domain defines the core business entities for Brado.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Credential: The bearer token, its absolute expiry, and the client ID
//   - InterviewQuestion / InterviewResult: The Likert interview surface
//   - BudgetAllocation: A budget-simulator input row
//   - Deputado / ExpenseItem: Normalized civic (Câmara) records
//   - APIError: A structured HTTP failure
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
