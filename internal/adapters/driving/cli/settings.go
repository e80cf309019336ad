package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mpfoley73/landmarks/internal/adapters/driven/ai"
	"github.com/mpfoley73/landmarks/internal/adapters/driven/embedding/httpembed"
	"github.com/mpfoley73/landmarks/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the data directory, resolver behaviour, and the
embedding backend used for similarity matching.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsEmbedderCmd = &cobra.Command{
	Use:   "embedder",
	Short: "Configure the embedding backend",
	Long: `Configure the embedding backend for similarity matching.

Without a configured backend, text queries still resolve through
geocoding, parcel lookup, and exact archive matches; only semantic
archive search and image recognition are disabled.`,
	RunE: runSettingsEmbedder,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsEmbedderCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Data]")
	dir := settings.DataDir
	if dir == "" {
		dir = "~/.landmarks/data (default)"
	}
	cmd.Printf("  Directory: %s\n", dir)
	cmd.Println()

	cmd.Println("[Resolver]")
	cmd.Printf("  Adapter timeout: %s\n", settings.Resolver.AdapterTimeout)
	cmd.Printf("  Search K: %d\n", settings.Resolver.SearchK)
	cmd.Println()

	cmd.Println("[Geocoder]")
	cmd.Printf("  Base URL: %s\n", settings.Geocoder.BaseURL)
	cmd.Printf("  User agent: %s\n", settings.Geocoder.UserAgent)
	cmd.Println()

	cmd.Println("[Property]")
	cmd.Printf("  Match radius: %.0f m\n", settings.Property.RadiusM)
	cmd.Println()

	cmd.Println("[Embedder]")
	cmd.Printf("  Provider: %s\n", settings.Embedder.Provider.Description())
	if settings.Embedder.Provider == domain.EmbedderProviderHTTP {
		cmd.Printf("  Base URL: %s\n", settings.Embedder.BaseURL)
		cmd.Printf("  Model: %s\n", settings.Embedder.Model)
		if settings.Embedder.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Embedder.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
		cmd.Printf("  Dimensions: %d\n", settings.Embedder.Dimensions)
	}
	status := "configured"
	if !settings.Embedder.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)

	return nil
}

func runSettingsEmbedder(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Select Embedding Backend")
	providers := []domain.EmbedderProvider{
		domain.EmbedderProviderHTTP,
		domain.EmbedderProviderNone,
	}
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selected := providers[idx-1]

	if selected == domain.EmbedderProviderNone {
		settings.Embedder = domain.EmbedderSettings{
			Provider:   domain.EmbedderProviderNone,
			Dimensions: settings.Embedder.Dimensions,
		}
		if err := settingsService.Save(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		cmd.Println("Embedding backend disabled. Similarity matching will degrade gracefully.")
		return nil
	}

	cmd.Printf("Enter base URL [%s]: ", httpembed.DefaultBaseURL)
	baseURL := readLine(reader)
	if baseURL == "" {
		baseURL = httpembed.DefaultBaseURL
	}

	cmd.Printf("Enter model name [%s]: ", httpembed.DefaultModel)
	model := readLine(reader)
	if model == "" {
		model = httpembed.DefaultModel
	}

	cmd.Print("Enter API key (empty for none): ")
	apiKey := readPassword()
	cmd.Println()

	dims := settings.Embedder.Dimensions
	cmd.Printf("Enter embedding dimensions [%d]: ", dims)
	if input := readLine(reader); input != "" {
		v, err := strconv.Atoi(input)
		if err != nil || v <= 0 {
			return errors.New("dimensions must be a positive integer")
		}
		dims = v
	}

	settings.Embedder = domain.EmbedderSettings{
		Provider:   domain.EmbedderProviderHTTP,
		BaseURL:    baseURL,
		Model:      model,
		APIKey:     apiKey,
		Dimensions: dims,
	}

	// Validate by pinging the service before persisting.
	cmd.Print("Validating configuration... ")
	if err := ai.ValidateEmbedderConfig(&settings.Embedder); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("embedder configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Embedding backend configured: %s (%s)\n", baseURL, model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
