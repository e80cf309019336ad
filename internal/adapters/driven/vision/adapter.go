// Package vision provides the image recognition tool adapter: it embeds
// a query photograph and matches it against the precomputed image
// embedding index.
package vision

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ToolAdapter = (*Adapter)(nil)

// DefaultSearchK is the search depth when none is configured.
const DefaultSearchK = 3

// Adapter recognizes buildings in photographs by nearest-neighbour
// search over image embeddings. Distances are squared Euclidean; the
// candidate score is 1/(1+distance) so that higher remains better and
// an exact duplicate image scores 1.
type Adapter struct {
	embedder driven.Embedder
	index    driven.VectorSearcher
	store    driven.EmbeddingStore
	searchK  int
}

// NewAdapter creates an image recognition adapter. store may be nil;
// candidates then carry IDs without titles.
func NewAdapter(embedder driven.Embedder, index driven.VectorSearcher, store driven.EmbeddingStore, searchK int) *Adapter {
	if searchK <= 0 {
		searchK = DefaultSearchK
	}
	return &Adapter{embedder: embedder, index: index, store: store, searchK: searchK}
}

// Name returns the source tag.
func (a *Adapter) Name() string {
	return domain.SourceImageIndex
}

// Call embeds req.ImagePath and returns the nearest indexed images.
// An unconfigured embedder or an empty index yields an empty result:
// recognition is simply unavailable, which is not a pipeline failure.
func (a *Adapter) Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult {
	if req.ImagePath == "" {
		return domain.ErrorResult("vision: missing image path")
	}
	if a.index.Len() == 0 {
		return domain.EmptyResult(map[string]string{"reason": "image index empty"})
	}

	vec, err := a.embedder.EmbedImage(ctx, req.ImagePath)
	if err != nil {
		if errors.Is(err, domain.ErrEmbedderUnavailable) {
			return domain.EmptyResult(map[string]string{"reason": "no embedder configured"})
		}
		return domain.ErrorResult(fmt.Sprintf("vision: embed image: %v", err))
	}

	hits, err := a.index.Search(vec, a.searchK)
	if err != nil {
		return domain.ErrorResult(fmt.Sprintf("vision: vector search: %v", err))
	}
	if len(hits) == 0 {
		return domain.EmptyResult(map[string]string{"reason": "image index empty"})
	}

	candidates := make([]domain.Candidate, 0, len(hits))
	meta := map[string]string{"indexed": strconv.Itoa(a.index.Len())}
	for i, h := range hits {
		c := domain.Candidate{
			ID:     domain.Ptr(h.ID),
			Source: domain.SourceImageIndex,
			Score:  domain.Ptr(1.0 / (1.0 + h.Score)),
		}
		if label := a.lookupLabel(ctx, h.ID); label != "" {
			c.Title = domain.Ptr(label)
		}
		candidates = append(candidates, c)

		// Raw distances stay available for diagnosis alongside the
		// normalized scores.
		meta["distance."+strconv.Itoa(i)] = strconv.FormatFloat(h.Score, 'f', -1, 64)
	}

	return domain.OKResult(candidates, meta)
}

func (a *Adapter) lookupLabel(ctx context.Context, refID string) string {
	if a.store == nil {
		return ""
	}
	rec, err := a.store.GetEmbedding(ctx, domain.EmbeddingKindImage, refID)
	if err != nil {
		return ""
	}
	return rec.Label
}
