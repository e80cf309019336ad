package driven

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// EmbeddingStore provides persistence for precomputed vectors.
//
// Listing order is insertion order. The vector index snapshots are
// built from that order, which is what makes tie-breaking in search
// results stable across reloads.
type EmbeddingStore interface {
	// SaveEmbedding stores a vector record.
	SaveEmbedding(ctx context.Context, rec *domain.EmbeddingRecord) error

	// GetEmbedding retrieves the record for a referenced ID and kind.
	// Returns domain.ErrNotFound if it does not exist.
	GetEmbedding(ctx context.Context, kind domain.EmbeddingKind, refID string) (*domain.EmbeddingRecord, error)

	// ListEmbeddings returns all records of a kind in insertion order.
	ListEmbeddings(ctx context.Context, kind domain.EmbeddingKind) ([]domain.EmbeddingRecord, error)

	// CountEmbeddings returns the number of stored records of a kind.
	CountEmbeddings(ctx context.Context, kind domain.EmbeddingKind) (int, error)
}
