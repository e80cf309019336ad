// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - ParcelStore: property parcel roll persistence
//   - ArchiveStore: landmark designation record persistence
//   - EmbeddingStore: precomputed vector persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Ordering
//
// List and search results come back in insertion order (rowid order).
// Upserts keep a row's original rowid, so updating a record does not
// move it. The vector index snapshots depend on this for stable
// tie-breaking.
//
// # Data Location
//
// By default, the database is stored at ~/.landmarks/data/metadata.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
