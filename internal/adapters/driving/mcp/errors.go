// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the landmark resolver. It lets AI assistants like Claude identify
// buildings through the same pipeline the CLI uses.
package mcp

import "errors"

// ErrMissingResolver is returned when the resolver is not provided.
var ErrMissingResolver = errors.New("mcp: resolver is required")
