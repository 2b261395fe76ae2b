package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnishop",
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"status"}, // "ok" / "degraded" / "invalid" / "error"
	)

	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "omnishop",
			Name:      "search_duration_seconds",
			Help:      "End-to-end search request duration in seconds",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	SearchFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnishop",
			Name:      "search_fallbacks_total",
			Help:      "Retrieval paths degraded to the surviving path",
		},
		[]string{"reason"}, // "embedding_error" / "semantic_error" / "keyword_error" / "hydration_error"
	)

	SearchCandidates = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "omnishop",
			Name:      "search_candidates",
			Help:      "Candidate counts per retrieval path before fusion",
			Buckets:   []float64{0, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
		[]string{"path"}, // "keyword" / "semantic"
	)
)

// RegisterSearchMetrics registers search metrics with the default registry.
// Called explicitly from the composition root (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(
		SearchRequestsTotal,
		SearchDuration,
		SearchFallbacksTotal,
		SearchCandidates,
	)
}
