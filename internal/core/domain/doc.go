// Package domain defines the core business entities for the student
// directory search client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: A single directory match (name, roll number, hometown)
//   - QueryState: The observable state of the search pipeline
//   - SessionState: The state of the session gate
//   - GateMode: Which gating strategy is active for this run
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
