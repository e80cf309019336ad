package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for resolver resources.
	uriScheme = "landmarks://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for vector index state.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "index/stats",
		Name:        "index-stats",
		Description: "Sizes and dimensions of the text and image vector indexes",
		MIMEType:    "application/json",
	}, s.handleIndexStatsResource)
}

// handleIndexStatsResource returns the current vector index statistics.
func (s *Server) handleIndexStatsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Index == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "{}",
			}},
		}, nil
	}

	stats := s.ports.Index.Stats()

	type indexInfo struct {
		Entries int `json:"entries"`
		Dim     int `json:"dim"`
	}
	payload := struct {
		Text  indexInfo `json:"text"`
		Image indexInfo `json:"image"`
	}{
		Text:  indexInfo{Entries: stats.TextEntries, Dim: stats.TextDim},
		Image: indexInfo{Entries: stats.ImageEntries, Dim: stats.ImageDim},
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling index stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
