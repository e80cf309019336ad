package driving

import "context"

// IndexStats describes the current vector index snapshots.
type IndexStats struct {
	// TextEntries and TextDim describe the text-embedding snapshot.
	TextEntries int
	TextDim     int

	// ImageEntries and ImageDim describe the image-embedding snapshot.
	ImageEntries int
	ImageDim     int
}

// IndexService owns the vector index snapshots.
type IndexService interface {
	// Reload rebuilds both snapshots from the embedding store and swaps
	// them in atomically. In-flight searches keep the snapshot they
	// started with.
	Reload(ctx context.Context) error

	// Stats reports the current snapshot sizes.
	Stats() IndexStats
}
