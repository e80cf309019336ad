package domain

// Candidate is a single proposed identification of the queried building.
// Optional fields are pointers: nil means "unknown", which downstream
// rendering must distinguish from a legitimate empty or zero value.
// Candidates are immutable once returned by an adapter; consolidation
// selects between them but never mutates their fields.
type Candidate struct {
	// ID is the source-local record identifier.
	ID *string `json:"id,omitempty"`

	// Title is the building or landmark name.
	Title *string `json:"title,omitempty"`

	// Address is the street address.
	Address *string `json:"address,omitempty"`

	// Lat and Lon are the record's coordinates.
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`

	// Year is the construction year.
	Year *int `json:"year,omitempty"`

	// Source tags which adapter produced this candidate. Always set.
	Source string `json:"source"`

	// Score is the adapter's own relevance in [0,1], if it has one.
	Score *float64 `json:"score,omitempty"`
}

// Ptr returns a pointer to v. Convenience for building Candidates
// with optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// DisplayTitle returns the title, falling back to the address and then
// the ID, for human-facing output. Returns "" when nothing is known.
func (c Candidate) DisplayTitle() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	if c.Address != nil && *c.Address != "" {
		return *c.Address
	}
	if c.ID != nil {
		return *c.ID
	}
	return ""
}

// HasCoordinates returns true if both lat and lon are known.
func (c Candidate) HasCoordinates() bool {
	return c.Lat != nil && c.Lon != nil
}
