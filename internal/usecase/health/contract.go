package health

import "context"

// DBPinger checks catalog database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CachePinger checks the embedding cache store.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks embedding provider availability.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
