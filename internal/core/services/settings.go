package services

import (
	"fmt"
	"time"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyDataDir          = "data.dir"
	keyAdapterTimeout   = "resolver.adapter_timeout_seconds"
	keySearchK          = "resolver.search_k"
	keyGeocoderBaseURL  = "geocoder.base_url"
	keyGeocoderAgent    = "geocoder.user_agent"
	keyPropertyRadius   = "property.radius_m"
	keyEmbedderProvider = "embedder.provider"
	keyEmbedderBaseURL  = "embedder.base_url"
	keyEmbedderModel    = "embedder.model"
	keyEmbedderAPIKey   = "embedder.api_key"
	keyEmbedderDims     = "embedder.dimensions"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		DataDir: s.configStore.GetString(keyDataDir),
		Resolver: domain.ResolverSettings{
			AdapterTimeout: s.getTimeout(defaults.Resolver.AdapterTimeout),
			SearchK:        s.getInt(keySearchK, defaults.Resolver.SearchK),
		},
		Geocoder: domain.GeocoderSettings{
			BaseURL:   s.getString(keyGeocoderBaseURL, defaults.Geocoder.BaseURL),
			UserAgent: s.getString(keyGeocoderAgent, defaults.Geocoder.UserAgent),
		},
		Property: domain.PropertySettings{
			RadiusM: s.getFloat(keyPropertyRadius, defaults.Property.RadiusM),
		},
		Embedder: domain.EmbedderSettings{
			Provider:   s.getProvider(defaults.Embedder.Provider),
			BaseURL:    s.configStore.GetString(keyEmbedderBaseURL),
			Model:      s.configStore.GetString(keyEmbedderModel),
			APIKey:     s.configStore.GetString(keyEmbedderAPIKey),
			Dimensions: s.getInt(keyEmbedderDims, defaults.Embedder.Dimensions),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDataDir, settings.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}

	if err := s.configStore.Set(keyAdapterTimeout, int(settings.Resolver.AdapterTimeout/time.Second)); err != nil {
		return fmt.Errorf("save adapter timeout: %w", err)
	}
	if err := s.configStore.Set(keySearchK, settings.Resolver.SearchK); err != nil {
		return fmt.Errorf("save search k: %w", err)
	}

	if err := s.configStore.Set(keyGeocoderBaseURL, settings.Geocoder.BaseURL); err != nil {
		return fmt.Errorf("save geocoder base_url: %w", err)
	}
	if err := s.configStore.Set(keyGeocoderAgent, settings.Geocoder.UserAgent); err != nil {
		return fmt.Errorf("save geocoder user_agent: %w", err)
	}

	if err := s.configStore.Set(keyPropertyRadius, settings.Property.RadiusM); err != nil {
		return fmt.Errorf("save property radius: %w", err)
	}

	if err := s.configStore.Set(keyEmbedderProvider, settings.Embedder.Provider.String()); err != nil {
		return fmt.Errorf("save embedder provider: %w", err)
	}
	if err := s.configStore.Set(keyEmbedderBaseURL, settings.Embedder.BaseURL); err != nil {
		return fmt.Errorf("save embedder base_url: %w", err)
	}
	if err := s.configStore.Set(keyEmbedderModel, settings.Embedder.Model); err != nil {
		return fmt.Errorf("save embedder model: %w", err)
	}
	if settings.Embedder.APIKey != "" {
		if err := s.configStore.Set(keyEmbedderAPIKey, settings.Embedder.APIKey); err != nil {
			return fmt.Errorf("save embedder api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyEmbedderDims, settings.Embedder.Dimensions); err != nil {
		return fmt.Errorf("save embedder dimensions: %w", err)
	}

	return nil
}

// getString reads a string key with a default fallback.
func (s *SettingsService) getString(key, fallback string) string {
	if v := s.configStore.GetString(key); v != "" {
		return v
	}
	return fallback
}

// getInt reads an int key with a default fallback.
func (s *SettingsService) getInt(key string, fallback int) int {
	if v := s.configStore.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

// getFloat reads a float key with a default fallback.
func (s *SettingsService) getFloat(key string, fallback float64) float64 {
	if v := s.configStore.GetFloat(key); v > 0 {
		return v
	}
	return fallback
}

// getTimeout reads the adapter timeout, stored in whole seconds.
func (s *SettingsService) getTimeout(fallback time.Duration) time.Duration {
	if secs := s.configStore.GetInt(keyAdapterTimeout); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getProvider reads the embedder provider, falling back for unknown values.
func (s *SettingsService) getProvider(fallback domain.EmbedderProvider) domain.EmbedderProvider {
	p := domain.EmbedderProvider(s.configStore.GetString(keyEmbedderProvider))
	if p.IsValid() {
		return p
	}
	return fallback
}
