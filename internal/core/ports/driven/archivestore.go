package driven

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// ArchiveStore provides persistence for landmark designation records.
type ArchiveStore interface {
	// SaveLandmark stores or updates a designation record.
	SaveLandmark(ctx context.Context, l *domain.Landmark) error

	// GetLandmark retrieves a record by designation number.
	// Returns domain.ErrNotFound if it does not exist.
	GetLandmark(ctx context.Context, id string) (*domain.Landmark, error)

	// SearchLandmarks returns records whose name or address contains
	// the query, case-insensitively, in insertion order.
	SearchLandmarks(ctx context.Context, query string) ([]domain.Landmark, error)

	// CountLandmarks returns the number of stored records.
	CountLandmarks(ctx context.Context) (int, error)
}
