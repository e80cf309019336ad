package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure ArchiveStore implements the interface.
var _ driven.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is an in-memory implementation of driven.ArchiveStore.
// Listing and search preserve insertion order.
type ArchiveStore struct {
	mu        sync.RWMutex
	landmarks map[string]domain.Landmark
	order     []string
}

// NewArchiveStore creates a new in-memory archive store.
func NewArchiveStore() *ArchiveStore {
	return &ArchiveStore{landmarks: make(map[string]domain.Landmark)}
}

// SaveLandmark stores or updates a designation record.
func (s *ArchiveStore) SaveLandmark(_ context.Context, l *domain.Landmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.landmarks[l.ID]; !exists {
		s.order = append(s.order, l.ID)
	}
	s.landmarks[l.ID] = *l
	return nil
}

// GetLandmark retrieves a record by designation number.
func (s *ArchiveStore) GetLandmark(_ context.Context, id string) (*domain.Landmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.landmarks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &l, nil
}

// SearchLandmarks returns records whose name or address contains the
// query, case-insensitively, in insertion order.
func (s *ArchiveStore) SearchLandmarks(_ context.Context, query string) ([]domain.Landmark, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}

	var result []domain.Landmark
	for _, id := range s.order {
		l := s.landmarks[id]
		if strings.Contains(strings.ToLower(l.Name), needle) ||
			strings.Contains(strings.ToLower(l.Address), needle) {
			result = append(result, l)
		}
	}
	return result, nil
}

// CountLandmarks returns the number of stored records.
func (s *ArchiveStore) CountLandmarks(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.landmarks), nil
}
