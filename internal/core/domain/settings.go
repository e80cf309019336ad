package domain

import "time"

const unknownDescription = "Unknown"

// EmbedderProvider identifies the embedding backend wired in at startup.
type EmbedderProvider string

// Available embedder providers.
const (
	// EmbedderProviderHTTP is an external HTTP embedding service.
	EmbedderProviderHTTP EmbedderProvider = "http"

	// EmbedderProviderNone is the explicit "unavailable" variant.
	// Similarity matching degrades gracefully; nothing branches on
	// availability at call time.
	EmbedderProviderNone EmbedderProvider = "none"
)

// IsValid returns true if the provider is recognised.
func (p EmbedderProvider) IsValid() bool {
	return p == EmbedderProviderHTTP || p == EmbedderProviderNone
}

// String returns the string representation.
func (p EmbedderProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p EmbedderProvider) Description() string {
	switch p {
	case EmbedderProviderHTTP:
		return "HTTP embedding service"
	case EmbedderProviderNone:
		return "None (similarity matching disabled)"
	default:
		return unknownDescription
	}
}

// ResolverSettings holds pipeline behaviour configuration.
type ResolverSettings struct {
	// AdapterTimeout bounds each individual adapter call. A timed-out
	// adapter yields an error result for that source only.
	AdapterTimeout time.Duration

	// SearchK is how many neighbours similarity searches request.
	SearchK int
}

// GeocoderSettings holds geocoding adapter configuration.
type GeocoderSettings struct {
	// BaseURL is the Nominatim endpoint.
	BaseURL string

	// UserAgent identifies this client, required by Nominatim etiquette.
	UserAgent string
}

// PropertySettings holds parcel lookup configuration.
type PropertySettings struct {
	// RadiusM is the maximum distance in metres for a parcel to count
	// as a match for a query point.
	RadiusM float64
}

// EmbedderSettings holds embedding backend configuration.
type EmbedderSettings struct {
	// Provider selects the backend, chosen once at startup.
	Provider EmbedderProvider

	// BaseURL is the embedding service endpoint (HTTP provider).
	BaseURL string

	// Model is the embedding model name (HTTP provider).
	Model string

	// APIKey authenticates to the embedding service, "" for none.
	APIKey string

	// Dimensions is the embedding vector size. Must match the stored
	// vectors or every search fails with a dimension mismatch.
	Dimensions int
}

// IsConfigured returns true if an actual embedding backend is set up.
func (e EmbedderSettings) IsConfigured() bool {
	return e.Provider == EmbedderProviderHTTP && e.BaseURL != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// DataDir is where import files and the metadata database live.
	// Empty means ~/.landmarks/data.
	DataDir string

	// Resolver holds pipeline behaviour settings.
	Resolver ResolverSettings

	// Geocoder holds geocoding adapter settings.
	Geocoder GeocoderSettings

	// Property holds parcel lookup settings.
	Property PropertySettings

	// Embedder holds embedding backend settings.
	Embedder EmbedderSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// The embedder is left unconfigured; users must explicitly wire one
// via the settings command.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Resolver: ResolverSettings{
			AdapterTimeout: 5 * time.Second,
			SearchK:        3,
		},
		Geocoder: GeocoderSettings{
			BaseURL:   "https://nominatim.openstreetmap.org",
			UserAgent: "landmarks-resolver/0.1",
		},
		Property: PropertySettings{
			RadiusM: 250,
		},
		Embedder: EmbedderSettings{
			Provider:   EmbedderProviderNone,
			Dimensions: 512,
		},
	}
}
