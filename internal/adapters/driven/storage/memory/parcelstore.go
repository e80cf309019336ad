// Package memory provides in-memory implementations of the storage
// ports, used as test fixtures and for zero-setup runs.
package memory

import (
	"context"
	"sync"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure ParcelStore implements the interface.
var _ driven.ParcelStore = (*ParcelStore)(nil)

// ParcelStore is an in-memory implementation of driven.ParcelStore.
// Listing preserves insertion order.
type ParcelStore struct {
	mu      sync.RWMutex
	parcels map[string]domain.Parcel
	order   []string
}

// NewParcelStore creates a new in-memory parcel store.
func NewParcelStore() *ParcelStore {
	return &ParcelStore{parcels: make(map[string]domain.Parcel)}
}

// SaveParcel stores or updates a parcel.
func (s *ParcelStore) SaveParcel(_ context.Context, p *domain.Parcel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.parcels[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.parcels[p.ID] = *p
	return nil
}

// GetParcel retrieves a parcel by ID.
func (s *ParcelStore) GetParcel(_ context.Context, id string) (*domain.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parcels[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// ListParcels returns all parcels in insertion order.
func (s *ParcelStore) ListParcels(_ context.Context) ([]domain.Parcel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Parcel, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.parcels[id])
	}
	return result, nil
}

// CountParcels returns the number of stored parcels.
func (s *ParcelStore) CountParcels(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.parcels), nil
}
