package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mpfoley73/landmarks/internal/adapters/driven/vectorindex"
	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
	"github.com/mpfoley73/landmarks/internal/logger"
)

// Ensure IndexManager implements the interface.
var _ driving.IndexService = (*IndexManager)(nil)

// IndexManager owns the two vector index snapshots: text embeddings
// searched by cosine similarity and image embeddings searched by
// squared distance. It is the explicit replacement for loading these
// caches implicitly at process start - construction is cheap and empty,
// Reload pulls from the embedding store on demand.
type IndexManager struct {
	store driven.EmbeddingStore

	textIndex  *vectorindex.Index
	imageIndex *vectorindex.Index

	// mu serialises reloads only; searches are lock-free on the
	// indexes' own atomic snapshots.
	mu sync.Mutex
}

// NewIndexManager creates an index manager with empty snapshots.
func NewIndexManager(store driven.EmbeddingStore) *IndexManager {
	return &IndexManager{
		store:      store,
		textIndex:  vectorindex.New(vectorindex.MetricCosine),
		imageIndex: vectorindex.New(vectorindex.MetricSquaredL2),
	}
}

// TextIndex returns the cosine-similarity searcher over text embeddings.
func (m *IndexManager) TextIndex() driven.VectorSearcher { return m.textIndex }

// ImageIndex returns the distance searcher over image embeddings.
func (m *IndexManager) ImageIndex() driven.VectorSearcher { return m.imageIndex }

// Reload rebuilds both snapshots from the embedding store and swaps
// them in atomically. In-flight searches keep the snapshot they
// started with; they never observe a mix of old and new entries.
func (m *IndexManager) Reload(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logger.Section("Index Reload")

	textSnap, err := m.buildSnapshot(ctx, domain.EmbeddingKindText)
	if err != nil {
		return fmt.Errorf("reload text index: %w", err)
	}
	imageSnap, err := m.buildSnapshot(ctx, domain.EmbeddingKindImage)
	if err != nil {
		return fmt.Errorf("reload image index: %w", err)
	}

	// Both snapshots built successfully before either swap, so a
	// failing reload leaves the previous state fully intact.
	m.textIndex.Reload(textSnap)
	m.imageIndex.Reload(imageSnap)

	logger.Info("Index reload: %d text, %d image vectors", textSnap.Len(), imageSnap.Len())
	return nil
}

// buildSnapshot loads all embeddings of a kind, in insertion order.
func (m *IndexManager) buildSnapshot(ctx context.Context, kind domain.EmbeddingKind) (*vectorindex.Snapshot, error) {
	records, err := m.store.ListEmbeddings(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("list %s embeddings: %w", kind, err)
	}

	ids := make([]string, len(records))
	vectors := make([][]float32, len(records))
	for i := range records {
		ids[i] = records[i].RefID
		vectors[i] = records[i].Vector
	}

	return vectorindex.NewSnapshot(ids, vectors)
}

// Stats reports the current snapshot sizes.
func (m *IndexManager) Stats() driving.IndexStats {
	return driving.IndexStats{
		TextEntries:  m.textIndex.Len(),
		TextDim:      m.textIndex.Dim(),
		ImageEntries: m.imageIndex.Len(),
		ImageDim:     m.imageIndex.Dim(),
	}
}
