package search

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/metrics"
	"github.com/sahityapandiri3/omnishop-search/internal/vectormath"
)

// semanticSearch embeds the query and scores every structurally
// matching candidate by cosine similarity in one batched pass.
//
// Returns the id->score map for the top cfg.SemanticLimit candidates
// and the raw query embedding (reused by the text-intent signal).
// Embedding-provider failures degrade to an empty map with a nil error;
// only a datastore failure is returned as an error.
func (s *Service) semanticSearch(
	ctx context.Context, queryText string, filters catalog.Filters,
) (map[int64]float64, []float32, error) {
	emb, err := s.embedder.Embed(ctx, queryText)
	if err != nil {
		s.logger.Warn("Embedding provider unavailable, falling back to keyword-only search",
			zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("embedding_error").Inc()
		return nil, nil, nil
	}
	unit := vectormath.Normalize(emb.Embedding)
	if unit == nil {
		// Empty or zero vector: no semantic signal for this query.
		return nil, nil, nil
	}

	candidates, err := s.repo.FetchCandidates(ctx, filters)
	if err != nil {
		return nil, emb.Embedding, fmt.Errorf("fetch semantic candidates: %w", err)
	}
	metrics.SearchCandidates.WithLabelValues("semantic").Observe(float64(len(candidates)))

	rows := make([][]float32, len(candidates))
	for i, c := range candidates {
		rows[i] = c.Embedding
	}
	scores := vectormath.CosineBatch(rows, unit)

	type scored struct {
		id    int64
		score float64
	}
	kept := make([]scored, 0, len(candidates))
	skipped := 0
	for i, c := range candidates {
		if scores[i] < 0 {
			// Malformed stored vector: skip the item, not the request.
			skipped++
			continue
		}
		kept = append(kept, scored{id: c.ID, score: scores[i]})
	}
	if skipped > 0 {
		s.logger.Warn("Skipped candidates with malformed embeddings",
			zap.Int("skipped", skipped), zap.Int("total", len(candidates)))
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].score != kept[j].score {
			return kept[i].score > kept[j].score
		}
		return kept[i].id < kept[j].id
	})
	if len(kept) > s.cfg.SemanticLimit {
		kept = kept[:s.cfg.SemanticLimit]
	}

	result := make(map[int64]float64, len(kept))
	for _, c := range kept {
		result[c.id] = c.score
	}
	return result, emb.Embedding, nil
}
