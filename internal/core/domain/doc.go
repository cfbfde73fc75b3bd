// Package domain defines the core business entities for ex-vespa.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Field, Struct, Document: The stored record shape of one schema
//   - Schema: A document type plus its indexing/ranking/summary configuration
//   - RankProfile: A named ranking-expression configuration
//   - ApplicationPackage: The root aggregate shipped to a cluster
//
// All entities are immutable value types. "Mutation" always produces a new
// instance with the mutated part replaced; add-operations on containers
// return a new parent value and never touch the receiver.
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
