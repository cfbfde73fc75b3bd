// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ContainerRuntime: Create/find/start/inspect/stop the engine container
//   - ConfigServer: Cluster control plane (readiness, prepare-and-activate)
//   - QueryAPI: Query and application-status surface of the running cluster
//   - DocumentAPI: Document CRUD against the running cluster
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
