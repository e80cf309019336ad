// Package none provides the embedder wired in when no embedding backend
// is configured. Every call fails with domain.ErrEmbedderUnavailable,
// which the tool adapters translate to empty results: semantic and
// image search degrade to "nothing found" instead of crashing.
package none

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/core/ports/driven"
)

// Ensure Embedder implements the interface.
var _ driven.Embedder = (*Embedder)(nil)

// Embedder is the no-backend embedder.
type Embedder struct{}

// New creates the no-backend embedder.
func New() *Embedder {
	return &Embedder{}
}

// EmbedText always fails with domain.ErrEmbedderUnavailable.
func (e *Embedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, domain.ErrEmbedderUnavailable
}

// EmbedImage always fails with domain.ErrEmbedderUnavailable.
func (e *Embedder) EmbedImage(_ context.Context, _ string) ([]float32, error) {
	return nil, domain.ErrEmbedderUnavailable
}

// Dimensions returns 0: there is no vector space.
func (e *Embedder) Dimensions() int {
	return 0
}

// Available returns false.
func (e *Embedder) Available() bool {
	return false
}
