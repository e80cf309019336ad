// Package archive provides the landmarks archive tool adapter. Lookups
// cascade: designation number, then substring search, then semantic
// search over the text embedding index when an embedder is configured.
package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ToolAdapter = (*Adapter)(nil)

// DefaultSearchK is the semantic search depth when none is configured.
const DefaultSearchK = 3

// Adapter resolves queries against the landmark designation archive.
type Adapter struct {
	store    driven.ArchiveStore
	embedder driven.Embedder
	index    driven.VectorSearcher
	searchK  int
}

// NewAdapter creates an archive adapter. embedder and index may be nil;
// the semantic tier is skipped when either is missing.
func NewAdapter(store driven.ArchiveStore, embedder driven.Embedder, index driven.VectorSearcher, searchK int) *Adapter {
	if searchK <= 0 {
		searchK = DefaultSearchK
	}
	return &Adapter{store: store, embedder: embedder, index: index, searchK: searchK}
}

// Name returns the source tag.
func (a *Adapter) Name() string {
	return domain.SourceArchive
}

// Call works through the lookup tiers in order and stops at the first
// one that produces candidates.
func (a *Adapter) Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult {
	if req.Query == "" {
		return domain.ErrorResult("archive: empty query")
	}

	// Tier 1: the query is a designation number.
	l, err := a.store.GetLandmark(ctx, req.Query)
	if err == nil {
		return domain.OKResult(
			[]domain.Candidate{l.ToCandidate(domain.Ptr(1.0))},
			map[string]string{"match": "designation"},
		)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.ErrorResult(fmt.Sprintf("archive: get landmark: %v", err))
	}

	// Tier 2: substring match on name or address.
	hits, err := a.store.SearchLandmarks(ctx, req.Query)
	if err != nil {
		return domain.ErrorResult(fmt.Sprintf("archive: search landmarks: %v", err))
	}
	if len(hits) > 0 {
		candidates := make([]domain.Candidate, 0, len(hits))
		for _, h := range hits {
			candidates = append(candidates, h.ToCandidate(nil))
		}
		return domain.OKResult(candidates, map[string]string{"match": "substring"})
	}

	// Tier 3: semantic search over precomputed name embeddings.
	return a.semanticSearch(ctx, req.Query)
}

func (a *Adapter) semanticSearch(ctx context.Context, query string) domain.ToolResult {
	if a.embedder == nil || a.index == nil || a.index.Len() == 0 {
		return domain.EmptyResult(map[string]string{"reason": "no archive match"})
	}

	vec, err := a.embedder.EmbedText(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrEmbedderUnavailable) {
			return domain.EmptyResult(map[string]string{"reason": "no archive match"})
		}
		return domain.ErrorResult(fmt.Sprintf("archive: embed query: %v", err))
	}

	hits, err := a.index.Search(vec, a.searchK)
	if err != nil {
		return domain.ErrorResult(fmt.Sprintf("archive: vector search: %v", err))
	}
	if len(hits) == 0 {
		return domain.EmptyResult(map[string]string{"reason": "no archive match"})
	}

	candidates := make([]domain.Candidate, 0, len(hits))
	for _, h := range hits {
		l, err := a.store.GetLandmark(ctx, h.ID)
		if err != nil {
			// The index can briefly run ahead of the store after a
			// reload. Skip unresolvable IDs rather than failing.
			continue
		}
		candidates = append(candidates, l.ToCandidate(domain.Ptr(h.Score)))
	}
	if len(candidates) == 0 {
		return domain.EmptyResult(map[string]string{"reason": "no archive match"})
	}
	return domain.OKResult(candidates, map[string]string{"match": "semantic"})
}
