// Package ai provides factory functions for creating embedding service
// adapters from settings.
package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/mpfoley73/landmarks/internal/adapters/driven/embedding/httpembed"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/embedding/none"
	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateEmbedder creates the embedder selected by settings. An
// unconfigured or unknown provider yields the "none" embedder, never
// nil: callers always hold a working port.
func CreateEmbedder(settings *domain.EmbedderSettings) driven.Embedder {
	if settings == nil || !settings.IsConfigured() {
		return none.New()
	}

	switch settings.Provider {
	case domain.EmbedderProviderHTTP:
		return httpembed.New(httpembed.Config{
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			APIKey:     settings.APIKey,
			Dimensions: settings.Dimensions,
		})

	default:
		return none.New()
	}
}

// ValidateEmbedderConfig creates an embedder from the configuration and
// pings it. Intended for the settings command to validate credentials
// when they are entered, not at resolve time.
func ValidateEmbedderConfig(settings *domain.EmbedderSettings) error {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}
	if !settings.Provider.IsValid() {
		return fmt.Errorf("unsupported embedder provider: %s", settings.Provider)
	}

	svc := httpembed.New(httpembed.Config{
		BaseURL:    settings.BaseURL,
		Model:      settings.Model,
		APIKey:     settings.APIKey,
		Dimensions: settings.Dimensions,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return svc.Ping(ctx)
}
