package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mpfoley73/landmarks/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.landmarks/data/metadata.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".landmarks", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "metadata.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ParcelStore returns a ParcelStore interface backed by this store.
func (s *Store) ParcelStore() driven.ParcelStore {
	return &parcelStore{store: s}
}

// ArchiveStore returns an ArchiveStore interface backed by this store.
func (s *Store) ArchiveStore() driven.ArchiveStore {
	return &archiveStore{store: s}
}

// EmbeddingStore returns an EmbeddingStore interface backed by this store.
func (s *Store) EmbeddingStore() driven.EmbeddingStore {
	return &embeddingStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Parcel Store ====================

// parcelStore implements driven.ParcelStore.
type parcelStore struct {
	store *Store
}

var _ driven.ParcelStore = (*parcelStore)(nil)

// SaveParcel stores or updates a parcel. An update keeps the row's
// original rowid, so list order is stable.
func (s *parcelStore) SaveParcel(ctx context.Context, p *domain.Parcel) error {
	if p.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO parcels (id, address, lat, lon, year_built, owner)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			address = excluded.address,
			lat = excluded.lat,
			lon = excluded.lon,
			year_built = excluded.year_built,
			owner = excluded.owner
	`, p.ID, p.Address, p.Lat, p.Lon, p.YearBuilt, p.Owner)

	if err != nil {
		return fmt.Errorf("saving parcel: %w", err)
	}
	return nil
}

// GetParcel retrieves a parcel by ID.
func (s *parcelStore) GetParcel(ctx context.Context, id string) (*domain.Parcel, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, address, lat, lon, year_built, owner
		FROM parcels WHERE id = ?
	`, id)

	var p domain.Parcel
	if err := row.Scan(&p.ID, &p.Address, &p.Lat, &p.Lon, &p.YearBuilt, &p.Owner); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning parcel: %w", err)
	}

	return &p, nil
}

// ListParcels returns all parcels in insertion order.
func (s *parcelStore) ListParcels(ctx context.Context) ([]domain.Parcel, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, address, lat, lon, year_built, owner
		FROM parcels ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying parcels: %w", err)
	}
	defer rows.Close()

	var parcels []domain.Parcel //nolint:prealloc // size unknown from query
	for rows.Next() {
		var p domain.Parcel
		if err := rows.Scan(&p.ID, &p.Address, &p.Lat, &p.Lon, &p.YearBuilt, &p.Owner); err != nil {
			return nil, fmt.Errorf("scanning parcel: %w", err)
		}
		parcels = append(parcels, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating parcels: %w", err)
	}

	return parcels, nil
}

// CountParcels returns the number of stored parcels.
func (s *parcelStore) CountParcels(ctx context.Context) (int, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM parcels").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting parcels: %w", err)
	}
	return count, nil
}

// ==================== Archive Store ====================

// archiveStore implements driven.ArchiveStore.
type archiveStore struct {
	store *Store
}

var _ driven.ArchiveStore = (*archiveStore)(nil)

// SaveLandmark stores or updates a designation record.
func (s *archiveStore) SaveLandmark(ctx context.Context, l *domain.Landmark) error {
	if l.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO landmarks (id, name, address, lat, lon, year_built, architect, designated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			lat = excluded.lat,
			lon = excluded.lon,
			year_built = excluded.year_built,
			architect = excluded.architect,
			designated = excluded.designated
	`, l.ID, l.Name, l.Address, l.Lat, l.Lon, l.YearBuilt, l.Architect, l.Designated)

	if err != nil {
		return fmt.Errorf("saving landmark: %w", err)
	}
	return nil
}

// GetLandmark retrieves a record by designation number.
func (s *archiveStore) GetLandmark(ctx context.Context, id string) (*domain.Landmark, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, address, lat, lon, year_built, architect, designated
		FROM landmarks WHERE id = ?
	`, id)

	var l domain.Landmark
	if err := row.Scan(&l.ID, &l.Name, &l.Address, &l.Lat, &l.Lon,
		&l.YearBuilt, &l.Architect, &l.Designated); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning landmark: %w", err)
	}

	return &l, nil
}

// SearchLandmarks returns records whose name or address contains the
// query, case-insensitively, in insertion order. A blank query matches
// nothing.
func (s *archiveStore) SearchLandmarks(ctx context.Context, query string) ([]domain.Landmark, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, address, lat, lon, year_built, architect, designated
		FROM landmarks
		WHERE instr(lower(name), lower(?)) > 0 OR instr(lower(address), lower(?)) > 0
		ORDER BY rowid
	`, query, query)
	if err != nil {
		return nil, fmt.Errorf("querying landmarks: %w", err)
	}
	defer rows.Close()

	var landmarks []domain.Landmark //nolint:prealloc // size unknown from query
	for rows.Next() {
		var l domain.Landmark
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.Lat, &l.Lon,
			&l.YearBuilt, &l.Architect, &l.Designated); err != nil {
			return nil, fmt.Errorf("scanning landmark: %w", err)
		}
		landmarks = append(landmarks, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating landmarks: %w", err)
	}

	return landmarks, nil
}

// CountLandmarks returns the number of stored records.
func (s *archiveStore) CountLandmarks(ctx context.Context) (int, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM landmarks").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting landmarks: %w", err)
	}
	return count, nil
}

// ==================== Embedding Store ====================

// embeddingStore implements driven.EmbeddingStore.
type embeddingStore struct {
	store *Store
}

var _ driven.EmbeddingStore = (*embeddingStore)(nil)

// SaveEmbedding stores a vector record.
func (s *embeddingStore) SaveEmbedding(ctx context.Context, rec *domain.EmbeddingRecord) error {
	if rec.RefID == "" || !rec.Kind.IsValid() {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO embeddings (kind, ref_id, label, vector)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(kind, ref_id) DO UPDATE SET
			label = excluded.label,
			vector = excluded.vector
	`, string(rec.Kind), rec.RefID, rec.Label, float32SliceToBytes(rec.Vector))

	if err != nil {
		return fmt.Errorf("saving embedding: %w", err)
	}
	return nil
}

// GetEmbedding retrieves the record for a referenced ID and kind.
func (s *embeddingStore) GetEmbedding(
	ctx context.Context,
	kind domain.EmbeddingKind,
	refID string,
) (*domain.EmbeddingRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT kind, ref_id, label, vector
		FROM embeddings WHERE kind = ? AND ref_id = ?
	`, string(kind), refID)

	var rec domain.EmbeddingRecord
	var kindStr string
	var blob []byte
	if err := row.Scan(&kindStr, &rec.RefID, &rec.Label, &blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning embedding: %w", err)
	}

	rec.Kind = domain.EmbeddingKind(kindStr)
	rec.Vector = bytesToFloat32Slice(blob)

	return &rec, nil
}

// ListEmbeddings returns all records of a kind in insertion order.
func (s *embeddingStore) ListEmbeddings(
	ctx context.Context,
	kind domain.EmbeddingKind,
) ([]domain.EmbeddingRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT kind, ref_id, label, vector
		FROM embeddings WHERE kind = ?
		ORDER BY rowid
	`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("querying embeddings: %w", err)
	}
	defer rows.Close()

	var records []domain.EmbeddingRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var rec domain.EmbeddingRecord
		var kindStr string
		var blob []byte
		if err := rows.Scan(&kindStr, &rec.RefID, &rec.Label, &blob); err != nil {
			return nil, fmt.Errorf("scanning embedding: %w", err)
		}
		rec.Kind = domain.EmbeddingKind(kindStr)
		rec.Vector = bytesToFloat32Slice(blob)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating embeddings: %w", err)
	}

	return records, nil
}

// CountEmbeddings returns the number of stored records of a kind.
func (s *embeddingStore) CountEmbeddings(ctx context.Context, kind domain.EmbeddingKind) (int, error) {
	var count int
	err := s.store.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM embeddings WHERE kind = ?", string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting embeddings: %w", err)
	}
	return count, nil
}

// ==================== Helper Functions ====================

// float32SliceToBytes converts a []float32 to a little-endian byte
// slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
