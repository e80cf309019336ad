package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpfoley73/landmarks/internal/adapters/driven/storage/memory"
	"github.com/mpfoley73/landmarks/internal/core/domain"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestImportDir_AllFiles(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, parcelsFile, `[
		{"id": "104-23-001", "address": "123 Main St", "lat": 41.49, "lon": -81.69, "year_built": 1925},
		{"id": "104-23-002", "address": "125 Main St", "lat": 41.50, "lon": -81.69}
	]`)
	writeDataFile(t, dir, landmarksFile, `[
		{"id": "LM-1", "name": "Old Stone Church", "address": "91 Public Square", "year_built": 1855}
	]`)
	writeDataFile(t, dir, embeddingsFile, `[
		{"ref_id": "LM-1", "kind": "text", "label": "Old Stone Church", "vector": [0.1, 0.2]},
		{"ref_id": "LM-1", "kind": "image", "label": "Old Stone Church", "vector": [0.3, 0.4]}
	]`)

	parcels := memory.NewParcelStore()
	archive := memory.NewArchiveStore()
	embeddings := memory.NewEmbeddingStore()

	im := NewImporter(parcels, archive, embeddings)
	summary, err := im.ImportDir(context.Background(), dir)
	require.NoError(t, err)

	assert.NotEmpty(t, summary.BatchID)
	assert.Equal(t, 2, summary.Parcels)
	assert.Equal(t, 1, summary.Landmarks)
	assert.Equal(t, 2, summary.Embeddings)
	assert.Zero(t, summary.Skipped)

	p, err := parcels.GetParcel(context.Background(), "104-23-001")
	require.NoError(t, err)
	assert.Equal(t, 1925, p.YearBuilt)
}

func TestImportDir_MissingFilesAreSkipped(t *testing.T) {
	im := NewImporter(memory.NewParcelStore(), memory.NewArchiveStore(), memory.NewEmbeddingStore())

	summary, err := im.ImportDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, summary.Parcels)
	assert.Zero(t, summary.Landmarks)
	assert.Zero(t, summary.Embeddings)
}

func TestImportDir_BadRecordsTolerated(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, parcelsFile, `[
		{"id": "", "address": "no id"},
		{"id": "ok-1", "address": "fine"}
	]`)
	writeDataFile(t, dir, embeddingsFile, `[
		{"ref_id": "LM-1", "kind": "audio", "vector": [1]},
		{"ref_id": "LM-1", "kind": "text", "vector": []},
		{"ref_id": "LM-1", "kind": "text", "vector": [1, 2]}
	]`)

	im := NewImporter(memory.NewParcelStore(), memory.NewArchiveStore(), memory.NewEmbeddingStore())
	summary, err := im.ImportDir(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Parcels)
	assert.Equal(t, 1, summary.Embeddings)
	assert.Equal(t, 3, summary.Skipped)
}

func TestImportDir_MalformedFileAborts(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, landmarksFile, `{not json`)

	im := NewImporter(memory.NewParcelStore(), memory.NewArchiveStore(), memory.NewEmbeddingStore())
	_, err := im.ImportDir(context.Background(), dir)
	assert.Error(t, err)
}

func TestImportThenReload_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, embeddingsFile, `[
		{"ref_id": "LM-1", "kind": "text", "vector": [1, 0]},
		{"ref_id": "LM-2", "kind": "text", "vector": [0, 1]}
	]`)

	embeddings := memory.NewEmbeddingStore()
	im := NewImporter(memory.NewParcelStore(), memory.NewArchiveStore(), embeddings)
	_, err := im.ImportDir(context.Background(), dir)
	require.NoError(t, err)

	m := NewIndexManager(embeddings)
	require.NoError(t, m.Reload(context.Background()))

	hits, err := m.TextIndex().Search([]float32{0, 1}, 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "LM-2", hits[0].ID)

	n, err := embeddings.CountEmbeddings(context.Background(), domain.EmbeddingKindText)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
