package cli

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
)

// mockResolverService returns a canned resolution and records the last query.
type mockResolverService struct {
	resolution *domain.Resolution
	err        error
	lastQuery  domain.Query
}

func (m *mockResolverService) Resolve(_ context.Context, q domain.Query) (*domain.Resolution, error) {
	m.lastQuery = q
	if m.err != nil {
		return nil, m.err
	}
	return m.resolution, nil
}

// mockIndexService returns canned stats and counts reloads.
type mockIndexService struct {
	stats     driving.IndexStats
	reloadErr error
	reloads   int
}

func (m *mockIndexService) Reload(_ context.Context) error {
	m.reloads++
	return m.reloadErr
}

func (m *mockIndexService) Stats() driving.IndexStats {
	return m.stats
}

// mockImportService returns a canned summary and records the last dir.
type mockImportService struct {
	summary *driving.ImportSummary
	err     error
	lastDir string
}

func (m *mockImportService) ImportDir(_ context.Context, dir string) (*driving.ImportSummary, error) {
	m.lastDir = dir
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

// mockSettingsService serves canned settings and records saves.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
	saved    *domain.AppSettings
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.saved = settings
	return nil
}

// setupTestServices installs mock services into the package-level
// slots and returns a cleanup that restores the previous ones.
func setupTestServices() func() {
	oldResolver := resolverService
	oldIndex := indexService
	oldImport := importService
	oldSettings := settingsService
	oldAppSettings := appSettings

	defaults := domain.DefaultAppSettings()

	resolverService = &mockResolverService{
		resolution: &domain.Resolution{
			Status: domain.StatusSuccess,
			Candidate: &domain.Candidate{
				ID:     domain.Ptr("CL-001"),
				Title:  domain.Ptr("Terminal Tower"),
				Source: domain.SourceArchive,
			},
			Report: "# Terminal Tower\n",
			Meta: map[string]string{
				"archive.status": "ok",
				"geocode.status": "empty",
			},
		},
	}
	indexService = &mockIndexService{
		stats: driving.IndexStats{
			TextEntries:  10,
			TextDim:      512,
			ImageEntries: 4,
			ImageDim:     512,
		},
	}
	importService = &mockImportService{
		summary: &driving.ImportSummary{
			BatchID:    "batch-test",
			Parcels:    3,
			Landmarks:  2,
			Embeddings: 5,
		},
	}
	settingsService = &mockSettingsService{settings: &defaults}
	appSettings = &defaults

	return func() {
		resolverService = oldResolver
		indexService = oldIndex
		importService = oldImport
		settingsService = oldSettings
		appSettings = oldAppSettings
	}
}
