package services

import (
	"github.com/mpfoley73/landmarks/internal/core/domain"
	"github.com/mpfoley73/landmarks/internal/logger"
)

// Consolidator merges results from multiple adapters into one winning
// candidate under a fixed source-priority policy.
//
// Policy precedence strictly overrides numeric score: a lower-scored
// candidate from a higher-priority source beats a higher-scored one
// from a lower-priority source. Source authority is trusted over raw
// similarity. The consolidator never re-scores or re-ranks within a
// single source's result.
type Consolidator struct{}

// NewConsolidator creates a consolidator.
func NewConsolidator() *Consolidator {
	return &Consolidator{}
}

// Consolidate walks the policy in order and returns the top candidate
// of the first source with a usable result, plus diagnostic meta merged
// from every source (winning or not), keyed "<source>.<key>".
//
// Returns a nil candidate when every source came back empty or failed.
func (c *Consolidator) Consolidate(
	policy domain.ConsolidationPolicy, results map[string]domain.ToolResult,
) (*domain.Candidate, map[string]string) {
	meta := mergeMeta(results)

	for _, source := range policy {
		result, ok := results[source]
		if !ok {
			continue
		}
		if !result.HasCandidates() {
			logger.Debug("Consolidate: source %q status=%s candidates=%d, skipping",
				source, result.Status, len(result.Candidates))
			continue
		}

		// Index 0 is the adapter's own top-ranked candidate.
		winner := result.Candidates[0]
		logger.Info("Consolidate: source %q wins with %q", source, winner.DisplayTitle())
		return &winner, meta
	}

	logger.Debug("Consolidate: no source produced a usable candidate")
	return nil, meta
}

// mergeMeta namespaces every source's meta under "<source>.<key>" and
// records each source's status, so callers can see why losing sources
// lost.
func mergeMeta(results map[string]domain.ToolResult) map[string]string {
	merged := make(map[string]string)
	for source, result := range results {
		merged[source+".status"] = string(result.Status)
		for k, v := range result.Meta {
			merged[source+"."+k] = v
		}
	}
	return merged
}
