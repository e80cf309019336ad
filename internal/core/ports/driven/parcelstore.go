package driven

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// ParcelStore provides persistence for county parcel records.
type ParcelStore interface {
	// SaveParcel stores or updates a parcel.
	SaveParcel(ctx context.Context, p *domain.Parcel) error

	// GetParcel retrieves a parcel by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetParcel(ctx context.Context, id string) (*domain.Parcel, error)

	// ListParcels returns all parcels in insertion order.
	ListParcels(ctx context.Context) ([]domain.Parcel, error)

	// CountParcels returns the number of stored parcels.
	CountParcels(ctx context.Context) (int, error)
}
