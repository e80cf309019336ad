package driving

import "context"

// ImportSummary reports the outcome of one data import.
type ImportSummary struct {
	// BatchID identifies this import run.
	BatchID string

	// Parcels, Landmarks and Embeddings count imported records.
	Parcels    int
	Landmarks  int
	Embeddings int

	// Skipped counts records rejected with per-record errors.
	Skipped int
}

// ImportService loads parcel, landmark and embedding data files into
// the stores. Per-record failures are tolerated and counted; only
// file-level problems abort an import.
type ImportService interface {
	// ImportDir imports parcels.json, landmarks.json and
	// embeddings.json from the given directory. Missing files are
	// skipped silently.
	ImportDir(ctx context.Context, dir string) (*ImportSummary, error)
}
