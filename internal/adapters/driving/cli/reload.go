package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Reload the vector indexes from the metadata store",
	Long: `Rebuilds the text and image vector index snapshots from the stored
embeddings and swaps them in atomically. Searches already in flight
finish against the snapshot they started with.`,
	RunE: runReload,
}

func init() {
	rootCmd.AddCommand(reloadCmd)
}

func runReload(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	if err := indexService.Reload(cmd.Context()); err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}

	stats := indexService.Stats()
	cmd.Println("Vector indexes reloaded.")
	cmd.Printf("  Text:  %d entries (dim %d)\n", stats.TextEntries, stats.TextDim)
	cmd.Printf("  Image: %d entries (dim %d)\n", stats.ImageEntries, stats.ImageDim)
	return nil
}
