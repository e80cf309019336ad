package driven

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// ReportComposer renders one winning candidate as a report.
// Invoked only after consolidation has selected a winner, never before.
type ReportComposer interface {
	// Compose returns the report markdown for the candidate.
	// Unknown fields render as the literal token "Unknown".
	Compose(ctx context.Context, c domain.Candidate) (string, error)
}
