// Package search composes query expansion, keyword retrieval, semantic
// retrieval, fusion, and ranking into the catalog search entry point.
// The engine is stateless and request-scoped: every Search call builds
// its own term groups and score maps, so concurrent requests share
// nothing but the read-only lexicon and datastore.
package search

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sahityapandiri3/omnishop-search/internal/domain"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/request"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/result"
	"github.com/sahityapandiri3/omnishop-search/internal/metrics"
	"github.com/sahityapandiri3/omnishop-search/internal/usecase/ranking"
)

// Config holds the fusion tunables. The defaults reproduce the
// production precision/recall trade-off; change them only deliberately.
type Config struct {
	// SimilarityThreshold is the minimum cosine score for any semantic
	// candidate to enter the fused results.
	SimilarityThreshold float64
	// HighConfidence admits a semantic candidate without keyword
	// corroboration.
	HighConfidence float64
	// SemanticLimit caps the semantic candidate set per request.
	SemanticLimit int
}

// DefaultConfig returns the production fusion settings.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.3,
		HighConfidence:      0.5,
		SemanticLimit:       200,
	}
}

// Service is the search orchestrator.
type Service struct {
	repo     CatalogRepository
	embedder domain.Embedder
	lexicon  Lexicon
	scorer   *ranking.Scorer
	cfg      Config
	logger   *zap.Logger
}

// New creates a search service.
func New(
	repo CatalogRepository,
	embedder domain.Embedder,
	lexicon Lexicon,
	scorer *ranking.Scorer,
	cfg Config,
	logger *zap.Logger,
) *Service {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = DefaultConfig().SimilarityThreshold
	}
	if cfg.HighConfidence <= 0 {
		cfg.HighConfidence = DefaultConfig().HighConfidence
	}
	if cfg.SemanticLimit <= 0 {
		cfg.SemanticLimit = DefaultConfig().SemanticLimit
	}
	return &Service{
		repo:     repo,
		embedder: embedder,
		lexicon:  lexicon,
		scorer:   scorer,
		cfg:      cfg,
		logger:   logger,
	}
}

// Search runs the full pipeline for one validated request and returns
// the requested page of ranked results.
//
// The keyword and semantic paths run concurrently; one failed path logs
// a warning and degrades to the surviving path. Both failing surfaces
// domain.ErrSearchUnavailable.
func (s *Service) Search(ctx context.Context, req *request.Request) (result.Page, error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}()

	q := req.Query()
	var (
		groups     []query.TermGroup
		exclusions []string
		broad      bool
	)
	if q != "" {
		groups = s.lexicon.Expand(q)
		exclusions = s.lexicon.Exclusions(q)
		broad = s.lexicon.IsBroad(q)
	}
	pred := query.NewPredicate(groups, q, broad)

	var (
		keywordItems []catalog.Item
		keywordErr   error
		semScores    map[int64]float64
		queryEmb     []float32
		semErr       error
	)

	// Both goroutines swallow their errors into captured vars: a failed
	// path must degrade, not cancel its sibling.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		keywordItems, keywordErr = s.repo.FetchByPredicate(gctx, pred, req.Filters())
		return nil
	})
	if q != "" {
		g.Go(func() error {
			semScores, queryEmb, semErr = s.semanticSearch(gctx, q, req.Filters())
			return nil
		})
	}
	_ = g.Wait()

	// semScores is non-nil whenever the semantic path produced a usable
	// score map; nil means the path was skipped, failed, or degraded at
	// the embedding step. Keyword failure with no semantic signal leaves
	// nothing to serve.
	if keywordErr != nil && (q == "" || semErr != nil || semScores == nil) {
		metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
		return result.Page{}, fmt.Errorf("%w: keyword: %s", domain.ErrSearchUnavailable, keywordErr)
	}
	degraded := false
	if keywordErr != nil {
		s.logger.Warn("Keyword retrieval failed, continuing with semantic results only",
			zap.Error(keywordErr))
		metrics.SearchFallbacksTotal.WithLabelValues("keyword_error").Inc()
		keywordItems = nil
		degraded = true
	}
	if semErr != nil {
		s.logger.Warn("Semantic retrieval failed, continuing with keyword results only",
			zap.Error(semErr))
		metrics.SearchFallbacksTotal.WithLabelValues("semantic_error").Inc()
		semScores = nil
		degraded = true
	}
	metrics.SearchCandidates.WithLabelValues("keyword").Observe(float64(len(keywordItems)))

	itemsByID, err := s.hydrate(ctx, keywordItems, semScores)
	if err != nil {
		// Semantic-only candidates cannot be shown without their items;
		// drop them rather than the whole request.
		s.logger.Warn("Hydration of semantic candidates failed", zap.Error(err))
		metrics.SearchFallbacksTotal.WithLabelValues("hydration_error").Inc()
		degraded = true
	}

	fused := fuse(
		semScores, keywordItems, itemsByID, pred, exclusions,
		s.cfg.SimilarityThreshold, s.cfg.HighConfidence,
	)

	ordered := make([]catalog.Item, 0, len(fused.ids))
	for _, id := range fused.ids {
		ordered = append(ordered, itemsByID[id])
	}
	ranked := s.scorer.Rank(ordered, semScores, queryEmb, req.Preferences())

	page := paginate(ranked, req.Page(), req.PageSize())
	page.TotalPrimary = fused.primaryCount
	page.TotalRelated = fused.relatedCount

	if degraded {
		metrics.SearchRequestsTotal.WithLabelValues("degraded").Inc()
	} else {
		metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
	}
	return page, nil
}

// hydrate indexes the keyword items by id and fetches full rows for
// semantic-only candidates. A fetch failure leaves those candidates
// absent; the returned map is always usable.
func (s *Service) hydrate(
	ctx context.Context, keywordItems []catalog.Item, semScores map[int64]float64,
) (map[int64]catalog.Item, error) {
	itemsByID := make(map[int64]catalog.Item, len(keywordItems)+len(semScores))
	for _, item := range keywordItems {
		itemsByID[item.ID] = item
	}

	missing := make([]int64, 0, len(semScores))
	for id := range semScores {
		if _, ok := itemsByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return itemsByID, nil
	}

	fetched, err := s.repo.FetchByIDs(ctx, missing)
	if err != nil {
		return itemsByID, fmt.Errorf("fetch semantic-only items: %w", err)
	}
	for _, item := range fetched {
		itemsByID[item.ID] = item
	}
	return itemsByID, nil
}

// paginate applies offset/limit over the full ranked list.
func paginate(ranked []result.RankedResult, page, pageSize int) result.Page {
	total := len(ranked)
	offset := (page - 1) * pageSize
	if offset >= total {
		return result.Page{Total: total}
	}
	end := offset + pageSize
	if end > total {
		end = total
	}
	return result.Page{
		Items:   ranked[offset:end],
		Total:   total,
		HasMore: end < total,
	}
}
