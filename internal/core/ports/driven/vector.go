package driven

// VectorSearcher provides exact nearest-neighbour search over an
// immutable vector snapshot.
//
// Search is a pure function of the snapshot and its arguments: no
// context, no side effects, deterministic. The snapshot is replaced
// atomically on reload; an in-flight search always observes one
// consistent version.
type VectorSearcher interface {
	// Search returns up to k hits ordered best-first by the searcher's
	// metric. An empty index yields zero hits and no error. A query of
	// the wrong length fails with domain.ErrDimensionMismatch.
	Search(query []float32, k int) ([]VectorHit, error)

	// Len returns the number of stored vectors.
	Len() int

	// Dim returns the vector dimension, 0 for an empty index.
	Dim() int
}

// VectorHit is a single nearest-neighbour result.
type VectorHit struct {
	// ID identifies the matched record.
	ID string

	// Score is metric-dependent: cosine similarity (higher is better)
	// or squared Euclidean distance (lower is better).
	Score float64
}
