package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// ResolveLandmarkInput is the input schema for the resolve_landmark tool.
type ResolveLandmarkInput struct {
	Query string `json:"query" jsonschema:"a building name, street address, or landmark designation number"`
}

// ResolveLocationInput is the input schema for the resolve_location tool.
type ResolveLocationInput struct {
	Lat float64 `json:"lat" jsonschema:"latitude of the point of interest"`
	Lon float64 `json:"lon" jsonschema:"longitude of the point of interest"`
}

// ResolveImageInput is the input schema for the resolve_image tool.
type ResolveImageInput struct {
	ImagePath string `json:"image_path" jsonschema:"path to a photograph of the building on the local filesystem"`
}

// ResolveOutput is the output schema shared by all resolve tools.
// Candidate fields that are unknown are omitted, never null.
type ResolveOutput struct {
	Status    string            `json:"status"`
	Candidate *domain.Candidate `json:"candidate,omitempty"`
	Report    string            `json:"report,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_landmark",
		Description: "Identify a building from a name, address, or designation number",
	}, s.handleResolveLandmark)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_location",
		Description: "Identify the property parcel at a geographic point",
	}, s.handleResolveLocation)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_image",
		Description: "Identify a building from a photograph",
	}, s.handleResolveImage)
}

// handleResolveLandmark handles the resolve_landmark tool invocation.
func (s *Server) handleResolveLandmark(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveLandmarkInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	return s.resolve(ctx, domain.TextQuery(input.Query))
}

// handleResolveLocation handles the resolve_location tool invocation.
func (s *Server) handleResolveLocation(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveLocationInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	return s.resolve(ctx, domain.LocationQuery(input.Lat, input.Lon))
}

// handleResolveImage handles the resolve_image tool invocation.
func (s *Server) handleResolveImage(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveImageInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	return s.resolve(ctx, domain.ImageQuery(input.ImagePath))
}

func (s *Server) resolve(ctx context.Context, q domain.Query) (*mcp.CallToolResult, ResolveOutput, error) {
	resolution, err := s.ports.Resolver.Resolve(ctx, q)
	if err != nil {
		return nil, ResolveOutput{}, err
	}

	return nil, ResolveOutput{
		Status:    string(resolution.Status),
		Candidate: resolution.Candidate,
		Report:    resolution.Report,
		Meta:      resolution.Meta,
	}, nil
}
