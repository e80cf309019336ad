package domain

// EmbeddingKind separates the two vector spaces the resolver keeps:
// text embeddings of archive records and image embeddings of reference
// photographs. The two spaces use different metrics and must never be
// searched together.
type EmbeddingKind string

// Embedding kinds.
const (
	// EmbeddingKindText is a text embedding, searched by cosine similarity.
	EmbeddingKindText EmbeddingKind = "text"

	// EmbeddingKindImage is an image embedding, searched by squared
	// Euclidean distance.
	EmbeddingKindImage EmbeddingKind = "image"
)

// IsValid returns true if the kind is recognised.
func (k EmbeddingKind) IsValid() bool {
	return k == EmbeddingKindText || k == EmbeddingKindImage
}

// String returns the string representation.
func (k EmbeddingKind) String() string {
	return string(k)
}

// EmbeddingRecord is one precomputed vector tied to a referenced
// record. Vectors are supplied by an external embedding backend; the
// resolver never computes them itself.
type EmbeddingRecord struct {
	// RefID is the ID of the record this vector represents
	// (a landmark designation number for both kinds).
	RefID string

	// Kind is the vector space this record belongs to.
	Kind EmbeddingKind

	// Label is a short human-readable tag for the referenced record,
	// used when synthesising a candidate straight from an index hit.
	Label string

	// Vector is the fixed-length embedding.
	Vector []float32
}
