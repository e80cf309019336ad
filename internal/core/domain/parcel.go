package domain

import "math"

// Parcel is a property record from the county parcel roll.
type Parcel struct {
	// ID is the parcel number.
	ID string

	// Address is the situs street address.
	Address string

	// Lat and Lon are the parcel centroid.
	Lat float64
	Lon float64

	// YearBuilt is the recorded construction year, 0 when unknown.
	YearBuilt int

	// Owner is the recorded owner name, "" when unknown.
	Owner string
}

// earthRadiusM is the mean Earth radius in metres.
const earthRadiusM = 6371000.0

// HaversineM returns the great-circle distance in metres between two
// points. Accurate enough at city scale for nearest-parcel ranking.
func HaversineM(lat1, lon1, lat2, lon2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLon := (lon2 - lon1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
