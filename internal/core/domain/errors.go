package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed or ambiguous request.
	// Fatal to the request; no adapters are invoked.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch indicates a query vector whose length does not
	// match the index dimension. Fatal to that search call only.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmbedderUnavailable indicates no embedding backend is configured.
	// Similarity-based matching is disabled without an embedder.
	ErrEmbedderUnavailable = errors.New("embedder unavailable")
)
