// Package vectorindex provides exact brute-force nearest-neighbour
// search over an immutable in-memory snapshot of (id, vector) pairs.
//
// Exactness is deliberate: approximate structures (HNSW and friends)
// trade determinism for speed, and the resolver's consolidation policy
// depends on identical inputs producing identical rankings. At the
// scale of one city's landmark records, brute force is fast enough.
package vectorindex

import (
	"fmt"
	"math"
	"sort"
	"sync/atomic"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorSearcher = (*Index)(nil)

// Metric selects how query and stored vectors are compared.
type Metric string

// Available metrics.
const (
	// MetricCosine is cosine similarity: higher is better, results
	// sorted descending. Used for text embeddings.
	MetricCosine Metric = "cosine"

	// MetricSquaredL2 is squared Euclidean distance: lower is better,
	// results sorted ascending. Used for image embeddings.
	MetricSquaredL2 Metric = "squared_l2"
)

// Snapshot is an immutable set of (id, vector) pairs. Once built it is
// never mutated; a reload swaps in a whole new snapshot.
type Snapshot struct {
	ids     []string
	vectors [][]float32
	dim     int
}

// NewSnapshot builds a snapshot from parallel id and vector slices.
// Order is insertion order and determines tie-breaking in search
// results. All vectors must share one dimension.
func NewSnapshot(ids []string, vectors [][]float32) (*Snapshot, error) {
	if len(ids) != len(vectors) {
		return nil, fmt.Errorf("snapshot: %d ids but %d vectors", len(ids), len(vectors))
	}

	s := &Snapshot{ids: ids, vectors: vectors}
	if len(vectors) > 0 {
		s.dim = len(vectors[0])
	}

	for i, v := range vectors {
		if len(v) != s.dim {
			return nil, fmt.Errorf("snapshot: vector %d (%s) has dim %d, want %d",
				i, ids[i], len(v), s.dim)
		}
	}

	return s, nil
}

// emptySnapshot is what a fresh index serves before the first reload.
var emptySnapshot = &Snapshot{}

// Len returns the number of entries.
func (s *Snapshot) Len() int { return len(s.ids) }

// Dim returns the vector dimension, 0 when empty.
func (s *Snapshot) Dim() int { return s.dim }

// Index is a vector searcher with one metric and an atomically
// replaceable snapshot. Search is lock-free: it loads the snapshot
// pointer once and works on that version for its whole duration,
// so a concurrent Reload never yields a mix of old and new entries.
type Index struct {
	metric Metric
	snap   atomic.Pointer[Snapshot]
}

// New creates an empty index with the given metric.
func New(metric Metric) *Index {
	idx := &Index{metric: metric}
	idx.snap.Store(emptySnapshot)
	return idx
}

// Metric returns the index's comparison metric.
func (idx *Index) Metric() Metric { return idx.metric }

// Reload atomically replaces the snapshot. In-flight searches keep the
// snapshot they started with.
func (idx *Index) Reload(s *Snapshot) {
	if s == nil {
		s = emptySnapshot
	}
	idx.snap.Store(s)
}

// Len returns the number of stored vectors.
func (idx *Index) Len() int { return idx.snap.Load().Len() }

// Dim returns the vector dimension, 0 for an empty index.
func (idx *Index) Dim() int { return idx.snap.Load().Dim() }

// Search returns up to k hits ordered best-first by the index metric.
//
// The scan is exact brute force over every stored vector. An empty
// index returns zero hits and no error. k larger than the index just
// returns everything. Ties keep insertion order, so repeated calls
// with the same snapshot and query are byte-for-byte identical.
func (idx *Index) Search(query []float32, k int) ([]driven.VectorHit, error) {
	snap := idx.snap.Load()

	if snap.Len() == 0 {
		return nil, nil
	}
	if len(query) != snap.dim {
		return nil, fmt.Errorf("%w: query has dim %d, index has %d",
			domain.ErrDimensionMismatch, len(query), snap.dim)
	}
	if k <= 0 {
		return nil, nil
	}

	hits := make([]driven.VectorHit, snap.Len())
	for i, v := range snap.vectors {
		var score float64
		switch idx.metric {
		case MetricSquaredL2:
			score = squaredL2(query, v)
		default:
			score = cosineSimilarity(query, v)
		}
		hits[i] = driven.VectorHit{ID: snap.ids[i], Score: score}
	}

	// Stable sort preserves insertion order among equal scores.
	if idx.metric == MetricSquaredL2 {
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score < hits[j].Score })
	} else {
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	}

	if k < len(hits) {
		hits = hits[:k]
	}
	return hits, nil
}

// cosineSimilarity computes dot(a,b) / (|a|*|b|).
// Returns 0 when either vector has zero magnitude.
func cosineSimilarity(a, b []float32) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// squaredL2 computes the squared Euclidean distance between a and b.
// The square root is omitted: it is monotonic and the ordering is all
// the resolver uses.
func squaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
