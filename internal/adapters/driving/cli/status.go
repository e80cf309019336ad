package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show store and index status",
	Long:  `Shows record counts in the metadata store and the state of the vector indexes.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if metadataStore != nil {
		ctx := cmd.Context()
		cmd.Printf("Metadata store: %s\n", metadataStore.Path())

		parcels, err := metadataStore.ParcelStore().CountParcels(ctx)
		if err != nil {
			return err
		}
		landmarks, err := metadataStore.ArchiveStore().CountLandmarks(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("  Parcels:   %d\n", parcels)
		cmd.Printf("  Landmarks: %d\n", landmarks)
		cmd.Println()
	}

	stats := indexService.Stats()
	cmd.Println("Vector indexes:")
	cmd.Printf("  Text:  %d entries (dim %d)\n", stats.TextEntries, stats.TextDim)
	cmd.Printf("  Image: %d entries (dim %d)\n", stats.ImageEntries, stats.ImageDim)

	if appSettings != nil {
		cmd.Println()
		embedder := "not configured"
		if appSettings.Embedder.IsConfigured() {
			embedder = appSettings.Embedder.Provider.Description()
		}
		cmd.Printf("Embedder: %s\n", embedder)
	}

	return nil
}
