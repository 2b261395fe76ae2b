package domain

import "context"

// Embedder is the shared text vectorization contract between layers.
// An empty Embedding with a nil error means the provider produced no
// vector; callers degrade to keyword-only retrieval in that case.
type Embedder interface {
	Embed(ctx context.Context, text string) (EmbeddingResult, error)
}

// HealthChecker verifies embedding provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// EmbeddingResult carries the embedding vector and token usage through the decorator chain.
type EmbeddingResult struct {
	Embedding    []float32
	PromptTokens int
	TotalTokens  int
}
