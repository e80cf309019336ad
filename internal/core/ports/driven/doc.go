// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ToolAdapter: A named lookup source under the uniform call contract
//   - ParcelStore: Parcel record persistence
//   - ArchiveStore: Landmark designation record persistence
//   - EmbeddingStore: Precomputed vector persistence
//   - ConfigStore: Application configuration
//   - ReportComposer: Renders the winning candidate as a report
//
// # Optional Interfaces
//
// These degrade gracefully:
//
//   - Embedder: Turns queries into vectors. The "none" variant is wired
//     when no backend is configured; similarity matching then reports
//     empty/error results naturally, and nothing branches on availability
//     at call time.
//   - VectorSearcher: Nearest-neighbour search over a vector snapshot.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
