// Package domain defines the core business entities for the landmark resolver.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Query: A resolution request in one of three modalities
//   - Candidate: A proposed identification of the queried building
//   - ToolResult: The uniform response every lookup adapter returns
//   - Resolution: The terminal outcome handed back to the caller
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
