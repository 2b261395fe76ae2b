package search

import (
	"context"

	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
)

// CatalogRepository is the read contract against the catalog datastore.
// All methods return only available items.
type CatalogRepository interface {
	// FetchCandidates returns the id and embedding of every available
	// item with a stored embedding that matches the structural filters.
	FetchCandidates(ctx context.Context, filters catalog.Filters) ([]catalog.Candidate, error)

	// FetchByPredicate returns items matching the keyword predicate and
	// structural filters, ordered price-descending. An empty predicate
	// lists by structural filters alone.
	FetchByPredicate(ctx context.Context, pred query.Predicate, filters catalog.Filters) ([]catalog.Item, error)

	// FetchByIDs hydrates full items for semantic-only candidates.
	// Missing ids are silently absent from the result.
	FetchByIDs(ctx context.Context, ids []int64) ([]catalog.Item, error)
}

// Lexicon expands and disambiguates raw query text.
type Lexicon interface {
	Expand(rawQuery string) []query.TermGroup
	Exclusions(rawQuery string) []string
	IsBroad(rawQuery string) bool
}
