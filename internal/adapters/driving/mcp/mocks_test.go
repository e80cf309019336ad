package mcp

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
)

// mockResolver returns a canned resolution and records the last query.
type mockResolver struct {
	resolution *domain.Resolution
	err        error
	lastQuery  domain.Query
}

func (m *mockResolver) Resolve(_ context.Context, q domain.Query) (*domain.Resolution, error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.resolution, nil
}

// mockIndexService returns canned stats.
type mockIndexService struct {
	stats driving.IndexStats
}

func (m *mockIndexService) Reload(_ context.Context) error {
	return nil
}

func (m *mockIndexService) Stats() driving.IndexStats {
	return m.stats
}
