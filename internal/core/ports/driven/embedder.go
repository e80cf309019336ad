package driven

import "context"

// Embedder turns queries into fixed-length vectors for similarity
// search. Embeddings for stored records are precomputed externally;
// this port only embeds incoming queries.
//
// The backend is chosen once at startup configuration. When none is
// configured, the explicit "none" implementation is wired in and every
// call fails with domain.ErrEmbedderUnavailable. Callers see a uniform
// contract regardless of which variant is behind it.
type Embedder interface {
	// EmbedText embeds a free-text query.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedImage embeds the image at the given path.
	EmbedImage(ctx context.Context, imagePath string) ([]float32, error)

	// Dimensions returns the embedding vector size. Must match the
	// stored vectors' dimension.
	Dimensions() int

	// Available returns true if a real backend is wired in. For
	// startup diagnostics only; business logic never branches on it.
	Available() bool
}
