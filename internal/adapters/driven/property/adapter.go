// Package property provides the parcel lookup tool adapter: nearest
// parcel record by geodesic distance to a query point.
package property

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Adapter implements the interface.
var _ driven.ToolAdapter = (*Adapter)(nil)

// DefaultRadiusM is the match radius when none is configured.
const DefaultRadiusM = 250.0

// Adapter resolves a geographic point to the nearest parcel within the
// configured radius.
type Adapter struct {
	store   driven.ParcelStore
	radiusM float64
}

// NewAdapter creates a parcel lookup adapter. A non-positive radius
// falls back to the default.
func NewAdapter(store driven.ParcelStore, radiusM float64) *Adapter {
	if radiusM <= 0 {
		radiusM = DefaultRadiusM
	}
	return &Adapter{store: store, radiusM: radiusM}
}

// Name returns the source tag.
func (a *Adapter) Name() string {
	return domain.SourceProperty
}

// Call finds the parcel nearest to (req.Lat, req.Lon). An exact
// coordinate hit has distance 0. The scan is linear; parcel rolls for
// one city fit comfortably in memory.
func (a *Adapter) Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult {
	if req.Lat == nil || req.Lon == nil {
		return domain.ErrorResult("property: missing coordinates")
	}

	parcels, err := a.store.ListParcels(ctx)
	if err != nil {
		return domain.ErrorResult(fmt.Sprintf("property: list parcels: %v", err))
	}
	if len(parcels) == 0 {
		return domain.EmptyResult(map[string]string{"reason": "no parcels loaded"})
	}

	best := -1
	bestDist := 0.0
	for i := range parcels {
		d := domain.HaversineM(*req.Lat, *req.Lon, parcels[i].Lat, parcels[i].Lon)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}

	if bestDist > a.radiusM {
		return domain.EmptyResult(map[string]string{
			"reason":     "nearest parcel out of radius",
			"distance_m": formatDistance(bestDist),
		})
	}

	winner := parcels[best]
	c := domain.Candidate{
		ID:     domain.Ptr(winner.ID),
		Lat:    domain.Ptr(winner.Lat),
		Lon:    domain.Ptr(winner.Lon),
		Source: domain.SourceProperty,
		Score:  domain.Ptr(1.0 / (1.0 + bestDist/a.radiusM)),
	}
	if winner.Address != "" {
		c.Address = domain.Ptr(winner.Address)
	}
	if winner.YearBuilt != 0 {
		c.Year = domain.Ptr(winner.YearBuilt)
	}

	return domain.OKResult([]domain.Candidate{c}, map[string]string{
		"distance_m": formatDistance(bestDist),
		"scanned":    strconv.Itoa(len(parcels)),
	})
}

// formatDistance renders metres with centimetre precision; an exact
// coordinate hit renders as "0".
func formatDistance(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}
