package domain

import "errors"

var (
	// ErrInvalidRequest signals malformed search parameters (bad page, negative price).
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrVectorDimMismatch signals a stored embedding with the wrong dimensionality.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrStoreUnavailable signals that the catalog datastore cannot serve reads.
	ErrStoreUnavailable = errors.New("catalog store unavailable")
	// ErrSearchUnavailable signals that both retrieval paths failed for a request.
	ErrSearchUnavailable = errors.New("search unavailable")
)
