package driven

import (
	"context"

	"github.com/mpfoley73/landmarks/internal/core/domain"
)

// ToolAdapter is the uniform contract every lookup source satisfies:
// geocoding, parcel lookup, archive search, OCR, image recognition.
// Implementations are injected at composition time and substitutable
// with fakes in tests without touching dispatcher logic.
//
// Call never returns a Go error. Failures, timeouts, and unreachable
// backends are data: a result with status "error" and diagnostic meta.
// The dispatcher absorbs them and degrades to whatever sources succeed.
type ToolAdapter interface {
	// Name is the source tag this adapter produces candidates under.
	// It must be stable; consolidation policies refer to it.
	Name() string

	// Call performs one lookup. Implementations must respect ctx
	// cancellation; a caller abandoning the request must not leak work.
	Call(ctx context.Context, req domain.ToolRequest) domain.ToolResult
}
