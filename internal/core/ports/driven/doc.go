// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CredentialStore: In-memory bearer credential cell
//   - SessionStore: Durable client ID and interview bookkeeping
//   - ConfigStore: Application configuration
//   - BradoAPI: The authenticated Brado API surface
//   - CivicAPI: The unauthenticated civic data surface
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
