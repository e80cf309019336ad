package domain

// Known adapter source names. The consolidation policy and the
// dispatcher pipelines refer to adapters by these names.
const (
	SourceGeocode    = "geocode"
	SourceProperty   = "property"
	SourceArchive    = "archive"
	SourceImageIndex = "image_index"
	SourceOCR        = "ocr"
)

// ToolStatus is the outcome of a single adapter call.
type ToolStatus string

// Adapter call outcomes.
const (
	// ToolStatusOK means the adapter produced usable data.
	ToolStatusOK ToolStatus = "ok"

	// ToolStatusEmpty means the adapter ran but found nothing.
	ToolStatusEmpty ToolStatus = "empty"

	// ToolStatusError means the adapter failed or timed out.
	// Absorbed locally; never aborts the pipeline.
	ToolStatusError ToolStatus = "error"
)

// ToolRequest is the modality-specific input to an adapter call.
// Adapters read only the fields relevant to them.
type ToolRequest struct {
	// Query is free text: an address, a name, or a record ID.
	Query string

	// Lat and Lon are a geographic point, when present.
	Lat *float64
	Lon *float64

	// ImagePath is the path to a query photograph.
	ImagePath string
}

// ToolResult is the uniform response every adapter returns.
// Candidate ordering is the adapter's own relevance ranking and is
// preserved through consolidation.
type ToolResult struct {
	// Status is the call outcome.
	Status ToolStatus

	// Candidates is the ordered list of proposed identifications.
	Candidates []Candidate

	// Meta carries diagnostic key/value pairs (timings, raw distances,
	// error text, extracted OCR text). Surfaced to the caller even for
	// losing or failing sources.
	Meta map[string]string
}

// HasCandidates returns true if the result is usable for consolidation:
// status ok with at least one candidate.
func (r ToolResult) HasCandidates() bool {
	return r.Status == ToolStatusOK && len(r.Candidates) > 0
}

// OKResult builds a successful result with the given candidates.
func OKResult(candidates []Candidate, meta map[string]string) ToolResult {
	return ToolResult{Status: ToolStatusOK, Candidates: candidates, Meta: meta}
}

// EmptyResult builds an empty (nothing found) result.
func EmptyResult(meta map[string]string) ToolResult {
	return ToolResult{Status: ToolStatusEmpty, Meta: meta}
}

// ErrorResult builds a failed result carrying the error text in meta.
func ErrorResult(msg string) ToolResult {
	return ToolResult{Status: ToolStatusError, Meta: map[string]string{"error": msg}}
}
