// Package cli provides the cobra command tree for the landmarks
// resolver. Commands share a set of package-level services wired once
// per invocation from settings and the metadata store.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mpfoley73/landmarks/internal/adapters/driven/ai"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/archive"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/config/file"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/geocode/nominatim"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/ocr/tesseract"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/property"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/report/markdown"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/storage/sqlite"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/vision"
	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
	"github.com/mpfoley73/landmarks/internal/core/services"
	"github.com/mpfoley73/landmarks/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
)

// Services shared across commands, wired by initServices.
var (
	settingsService driving.SettingsService
	resolverService driving.Resolver
	indexService    driving.IndexService
	importService   driving.ImportService

	appSettings   *domain.AppSettings
	metadataStore *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "landmarks",
	Short: "Resolve buildings and landmarks from text, photos, or coordinates",
	Long: `Landmarks resolves a query to a single best-guess building record.

Queries can be free text (a name or address), a photograph, or a
geographic point. Each modality runs its own lookup pipeline across
geocoding, county parcel data, the designation archive, OCR, and
image recognition, then consolidates the results into one answer.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.landmarks)")
}

// Execute wires the service graph and runs the root command.
func Execute() error {
	// A .env file is optional; ignore its absence.
	_ = godotenv.Load() //nolint:errcheck // Best-effort load

	// Persistent flags are needed before command dispatch: --config
	// selects the store the services are wired from.
	pf := rootCmd.PersistentFlags()
	pf.ParseErrorsWhitelist.UnknownFlags = true
	_ = pf.Parse(os.Args[1:]) //nolint:errcheck // Cobra reparses and reports
	logger.SetVerbose(verboseFlag)

	if err := initServices(context.Background()); err != nil {
		return err
	}
	defer closeServices() //nolint:errcheck // Best-effort close on exit

	return rootCmd.Execute()
}

// initServices wires the full service graph from settings. Already
// wired services (tests inject their own) are left alone.
func initServices(ctx context.Context) error {
	if resolverService != nil {
		return nil
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService = services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	appSettings = settings

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening metadata store: %w", err)
	}
	metadataStore = store

	indexManager := services.NewIndexManager(store.EmbeddingStore())
	if err := indexManager.Reload(ctx); err != nil {
		return fmt.Errorf("loading vector indexes: %w", err)
	}
	indexService = indexManager

	embedder := ai.CreateEmbedder(&settings.Embedder)

	geocoder := nominatim.NewGeocoder(nominatim.Config{
		BaseURL:   settings.Geocoder.BaseURL,
		UserAgent: settings.Geocoder.UserAgent,
	})
	parcelLookup := property.NewAdapter(store.ParcelStore(), settings.Property.RadiusM)
	archiveSearch := archive.NewAdapter(
		store.ArchiveStore(), embedder, indexManager.TextIndex(), settings.Resolver.SearchK)
	ocr := tesseract.NewAdapter(tesseract.DefaultBinary)
	recognition := vision.NewAdapter(
		embedder, indexManager.ImageIndex(), store.EmbeddingStore(), settings.Resolver.SearchK)

	resolverService = services.NewResolver(
		services.ResolverConfig{AdapterTimeout: settings.Resolver.AdapterTimeout},
		services.NewConsolidator(),
		markdown.NewComposer(),
		geocoder, parcelLookup, archiveSearch, ocr, recognition,
	)

	importService = services.NewImporter(
		store.ParcelStore(), store.ArchiveStore(), store.EmbeddingStore())

	logger.Debug("Services initialised, metadata store at %s", store.Path())
	return nil
}

// closeServices releases resources held by initServices.
func closeServices() error {
	if metadataStore == nil {
		return nil
	}
	err := metadataStore.Close()
	metadataStore = nil
	return err
}

// dataDir returns the directory import files are read from.
func dataDir() (string, error) {
	if appSettings != nil && appSettings.DataDir != "" {
		return appSettings.DataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".landmarks", "data"), nil
}
