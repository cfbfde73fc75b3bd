// Package services contains the application's use cases.
//
// Services implement the core flows of the tool: compiling an
// ApplicationPackage into the cluster's textual artifacts, laying the
// artifacts out on disk and archiving them, and driving the deployment
// protocol against a running cluster. Services depend on domain types
// and driven ports only; infrastructure is injected.
//
// # Import Rules
//
//   - Can Import: domain, ports, logger
//   - Cannot Import: adapters
package services
