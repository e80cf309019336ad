package domain

// Modality is the kind of input a query carries.
type Modality string

// Available query modalities.
const (
	// ModalityText is a free-text query (name, address, description).
	ModalityText Modality = "text"

	// ModalityImage is a query by photograph path.
	ModalityImage Modality = "image"

	// ModalityLocation is a query by geographic point.
	ModalityLocation Modality = "location"
)

// IsValid returns true if the modality is recognised.
func (m Modality) IsValid() bool {
	switch m {
	case ModalityText, ModalityImage, ModalityLocation:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m Modality) String() string {
	return string(m)
}

// Query is a resolution request. Exactly one modality-specific payload
// must be populated, matching the declared Modality.
type Query struct {
	// Modality declares which payload field is meaningful.
	Modality Modality

	// Text is the free-text query (ModalityText).
	Text string

	// ImagePath is the path to the query photograph (ModalityImage).
	ImagePath string

	// Lat and Lon are the query point (ModalityLocation).
	Lat *float64
	Lon *float64
}

// Validate checks that the query carries exactly the payload its
// modality requires and no other. Returns ErrInvalidInput on any
// mismatch, including a foreign payload left populated.
func (q Query) Validate() error {
	switch q.Modality {
	case ModalityText:
		if q.Text == "" {
			return ErrInvalidInput
		}
		if q.ImagePath != "" || q.Lat != nil || q.Lon != nil {
			return ErrInvalidInput
		}
	case ModalityImage:
		if q.ImagePath == "" {
			return ErrInvalidInput
		}
		if q.Text != "" || q.Lat != nil || q.Lon != nil {
			return ErrInvalidInput
		}
	case ModalityLocation:
		if q.Lat == nil || q.Lon == nil {
			return ErrInvalidInput
		}
		if *q.Lat < -90 || *q.Lat > 90 || *q.Lon < -180 || *q.Lon > 180 {
			return ErrInvalidInput
		}
		if q.Text != "" || q.ImagePath != "" {
			return ErrInvalidInput
		}
	default:
		return ErrInvalidInput
	}
	return nil
}

// TextQuery builds a text-modality query.
func TextQuery(text string) Query {
	return Query{Modality: ModalityText, Text: text}
}

// ImageQuery builds an image-modality query.
func ImageQuery(imagePath string) Query {
	return Query{Modality: ModalityImage, ImagePath: imagePath}
}

// LocationQuery builds a location-modality query.
func LocationQuery(lat, lon float64) Query {
	return Query{Modality: ModalityLocation, Lat: &lat, Lon: &lon}
}
