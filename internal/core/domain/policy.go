package domain

// ConsolidationPolicy is an ordered list of source names defining
// precedence: earlier sources strictly win over later ones, regardless
// of numeric score. Fixed at service composition time, never mutated
// per request.
type ConsolidationPolicy []string

// DefaultTextPolicy ranks designation archive records above parcel
// records for text queries. The archive is the curated, authoritative
// source; parcel data is bulk-imported and noisier.
func DefaultTextPolicy() ConsolidationPolicy {
	return ConsolidationPolicy{SourceArchive, SourceProperty}
}

// DefaultImagePolicy ranks an archive record found via the recognised
// image above the raw image-index match itself.
func DefaultImagePolicy() ConsolidationPolicy {
	return ConsolidationPolicy{SourceArchive, SourceImageIndex}
}

// DefaultLocationPolicy has a single source: the parcel lookup.
func DefaultLocationPolicy() ConsolidationPolicy {
	return ConsolidationPolicy{SourceProperty}
}

// Contains returns true if the policy names the given source.
func (p ConsolidationPolicy) Contains(source string) bool {
	for _, s := range p {
		if s == source {
			return true
		}
	}
	return false
}
