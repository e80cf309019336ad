package memory

import (
	"context"
	"sync"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure EmbeddingStore implements the interface.
var _ driven.EmbeddingStore = (*EmbeddingStore)(nil)

// EmbeddingStore is an in-memory implementation of driven.EmbeddingStore.
// Records are kept per kind in insertion order, which the vector index
// snapshots rely on for stable tie-breaking.
type EmbeddingStore struct {
	mu      sync.RWMutex
	records map[domain.EmbeddingKind][]domain.EmbeddingRecord
}

// NewEmbeddingStore creates a new in-memory embedding store.
func NewEmbeddingStore() *EmbeddingStore {
	return &EmbeddingStore{
		records: make(map[domain.EmbeddingKind][]domain.EmbeddingRecord),
	}
}

// SaveEmbedding stores a vector record. Saving an existing (kind, ref)
// pair replaces the vector in place, keeping its insertion position.
func (s *EmbeddingStore) SaveEmbedding(_ context.Context, rec *domain.EmbeddingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.records[rec.Kind]
	for i := range list {
		if list[i].RefID == rec.RefID {
			list[i] = *rec
			return nil
		}
	}
	s.records[rec.Kind] = append(list, *rec)
	return nil
}

// GetEmbedding retrieves the record for a referenced ID and kind.
func (s *EmbeddingStore) GetEmbedding(
	_ context.Context, kind domain.EmbeddingKind, refID string,
) (*domain.EmbeddingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.records[kind] {
		if rec.RefID == refID {
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListEmbeddings returns all records of a kind in insertion order.
func (s *EmbeddingStore) ListEmbeddings(
	_ context.Context, kind domain.EmbeddingKind,
) ([]domain.EmbeddingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := s.records[kind]
	result := make([]domain.EmbeddingRecord, len(list))
	copy(result, list)
	return result, nil
}

// CountEmbeddings returns the number of stored records of a kind.
func (s *EmbeddingStore) CountEmbeddings(_ context.Context, kind domain.EmbeddingKind) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[kind]), nil
}
