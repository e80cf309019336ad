package driving

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// Resolver resolves a query to a single best-guess building record.
type Resolver interface {
	// Resolve dispatches the query's modality pipeline, consolidates
	// adapter results, and returns the outcome.
	//
	// Returns domain.ErrInvalidInput for a malformed query; no adapters
	// are invoked in that case. Individual adapter failures never
	// surface as errors - they degrade to a no-match at worst.
	Resolve(ctx context.Context, q domain.Query) (*domain.Resolution, error)
}
