package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
	"github.com/mpfoley73/landmarks/internal/core/ports/driving"
	"github.com/mpfoley73/landmarks/internal/logger"
)

// Ensure Importer implements the interface.
var _ driving.ImportService = (*Importer)(nil)

// Import file names looked for in the data directory.
const (
	parcelsFile    = "parcels.json"
	landmarksFile  = "landmarks.json"
	embeddingsFile = "embeddings.json"
)

// Importer loads parcel, landmark and embedding JSON files into the
// stores. Individual bad records are skipped and counted; only
// unreadable or unparsable files abort an import.
type Importer struct {
	parcels    driven.ParcelStore
	archive    driven.ArchiveStore
	embeddings driven.EmbeddingStore
}

// NewImporter creates an importer over the given stores.
func NewImporter(
	parcels driven.ParcelStore,
	archive driven.ArchiveStore,
	embeddings driven.EmbeddingStore,
) *Importer {
	return &Importer{
		parcels:    parcels,
		archive:    archive,
		embeddings: embeddings,
	}
}

// parcelRecord is the import file form of a parcel.
type parcelRecord struct {
	ID        string  `json:"id"`
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	YearBuilt int     `json:"year_built"`
	Owner     string  `json:"owner"`
}

// landmarkRecord is the import file form of a designation record.
type landmarkRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	YearBuilt  int     `json:"year_built"`
	Architect  string  `json:"architect"`
	Designated string  `json:"designated"`
}

// embeddingRecord is the import file form of a precomputed vector.
type embeddingRecord struct {
	RefID  string    `json:"ref_id"`
	Kind   string    `json:"kind"`
	Label  string    `json:"label"`
	Vector []float32 `json:"vector"`
}

// ImportDir imports the known data files from dir. Missing files are
// skipped silently; an empty directory yields an empty summary.
func (im *Importer) ImportDir(ctx context.Context, dir string) (*driving.ImportSummary, error) {
	logger.Section("Data Import")

	summary := &driving.ImportSummary{BatchID: uuid.NewString()}
	logger.Debug("Import batch %s from %s", summary.BatchID, dir)

	if err := im.importParcels(ctx, filepath.Join(dir, parcelsFile), summary); err != nil {
		return nil, err
	}
	if err := im.importLandmarks(ctx, filepath.Join(dir, landmarksFile), summary); err != nil {
		return nil, err
	}
	if err := im.importEmbeddings(ctx, filepath.Join(dir, embeddingsFile), summary); err != nil {
		return nil, err
	}

	logger.Info("Import batch %s: %d parcels, %d landmarks, %d embeddings, %d skipped",
		summary.BatchID, summary.Parcels, summary.Landmarks, summary.Embeddings, summary.Skipped)
	return summary, nil
}

func (im *Importer) importParcels(ctx context.Context, path string, summary *driving.ImportSummary) error {
	var records []parcelRecord
	ok, err := readJSONFile(path, &records)
	if err != nil || !ok {
		return err
	}

	for _, rec := range records {
		if rec.ID == "" {
			logger.Warn("Import: parcel without id skipped")
			summary.Skipped++
			continue
		}
		p := domain.Parcel{
			ID:        rec.ID,
			Address:   rec.Address,
			Lat:       rec.Lat,
			Lon:       rec.Lon,
			YearBuilt: rec.YearBuilt,
			Owner:     rec.Owner,
		}
		if err := im.parcels.SaveParcel(ctx, &p); err != nil {
			logger.Warn("Import: parcel %s: %v", rec.ID, err)
			summary.Skipped++
			continue
		}
		summary.Parcels++
	}
	return nil
}

func (im *Importer) importLandmarks(ctx context.Context, path string, summary *driving.ImportSummary) error {
	var records []landmarkRecord
	ok, err := readJSONFile(path, &records)
	if err != nil || !ok {
		return err
	}

	for _, rec := range records {
		if rec.ID == "" {
			logger.Warn("Import: landmark without id skipped")
			summary.Skipped++
			continue
		}
		l := domain.Landmark{
			ID:         rec.ID,
			Name:       rec.Name,
			Address:    rec.Address,
			Lat:        rec.Lat,
			Lon:        rec.Lon,
			YearBuilt:  rec.YearBuilt,
			Architect:  rec.Architect,
			Designated: rec.Designated,
		}
		if err := im.archive.SaveLandmark(ctx, &l); err != nil {
			logger.Warn("Import: landmark %s: %v", rec.ID, err)
			summary.Skipped++
			continue
		}
		summary.Landmarks++
	}
	return nil
}

func (im *Importer) importEmbeddings(ctx context.Context, path string, summary *driving.ImportSummary) error {
	var records []embeddingRecord
	ok, err := readJSONFile(path, &records)
	if err != nil || !ok {
		return err
	}

	for _, rec := range records {
		kind := domain.EmbeddingKind(rec.Kind)
		if rec.RefID == "" || !kind.IsValid() || len(rec.Vector) == 0 {
			logger.Warn("Import: embedding %q kind=%q skipped", rec.RefID, rec.Kind)
			summary.Skipped++
			continue
		}
		e := domain.EmbeddingRecord{
			RefID:  rec.RefID,
			Kind:   kind,
			Label:  rec.Label,
			Vector: rec.Vector,
		}
		if err := im.embeddings.SaveEmbedding(ctx, &e); err != nil {
			logger.Warn("Import: embedding %s: %v", rec.RefID, err)
			summary.Skipped++
			continue
		}
		summary.Embeddings++
	}
	return nil
}

// readJSONFile decodes path into v. Returns (false, nil) when the file
// does not exist - a missing import file is not an error.
func readJSONFile(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}
