package mcp

import (
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Resolver runs resolution pipelines.
	Resolver driving.Resolver

	// Index reports vector index state.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Resolver == nil {
		return ErrMissingResolver
	}
	// Index is optional; the stats resource degrades without it
	return nil
}
