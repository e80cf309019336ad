package domain

// Landmark is a designation record from the landmarks archive: a
// curated entry for a building with protected or historic status.
type Landmark struct {
	// ID is the designation number.
	ID string

	// Name is the landmark name.
	Name string

	// Address is the street address.
	Address string

	// Lat and Lon are the building coordinates, 0,0 when unrecorded.
	Lat float64
	Lon float64

	// YearBuilt is the construction year, 0 when unknown.
	YearBuilt int

	// Architect is the attributed architect, "" when unknown.
	Architect string

	// Designated is the designation date as YYYY-MM-DD, "" when unknown.
	Designated string
}

// ToCandidate converts the archive record to a candidate tagged with
// the archive source. Zero-valued fields become absent, not zero.
func (l Landmark) ToCandidate(score *float64) Candidate {
	c := Candidate{
		ID:     Ptr(l.ID),
		Source: SourceArchive,
		Score:  score,
	}
	if l.Name != "" {
		c.Title = Ptr(l.Name)
	}
	if l.Address != "" {
		c.Address = Ptr(l.Address)
	}
	if l.Lat != 0 || l.Lon != 0 {
		c.Lat = Ptr(l.Lat)
		c.Lon = Ptr(l.Lon)
	}
	if l.YearBuilt != 0 {
		c.Year = Ptr(l.YearBuilt)
	}
	return c
}
