package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import parcel, landmark, and embedding data",
	Long: `Imports parcels.json, landmarks.json, and embeddings.json from a
directory into the metadata store, then reloads the vector indexes.

Without an argument the configured data directory is used. Missing
files are skipped; records that fail validation are counted and
skipped without aborting the import.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	dir := ""
	if len(args) == 1 {
		dir = args[0]
	} else {
		var err error
		dir, err = dataDir()
		if err != nil {
			return err
		}
	}

	summary, err := importService.ImportDir(cmd.Context(), dir)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Import %s complete:\n", summary.BatchID)
	cmd.Printf("  Parcels:    %d\n", summary.Parcels)
	cmd.Printf("  Landmarks:  %d\n", summary.Landmarks)
	cmd.Printf("  Embeddings: %d\n", summary.Embeddings)
	if summary.Skipped > 0 {
		cmd.Printf("  Skipped:    %d (invalid records)\n", summary.Skipped)
	}

	if indexService != nil {
		if err := indexService.Reload(cmd.Context()); err != nil {
			return fmt.Errorf("reloading vector indexes: %w", err)
		}
		cmd.Println("Vector indexes reloaded.")
	}

	return nil
}
