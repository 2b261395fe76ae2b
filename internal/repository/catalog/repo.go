// Package catalog is the PostgreSQL-backed catalog repository. Keyword
// matching runs in SQL with whole-word regexes; semantic candidates are
// fetched as id+embedding pairs and scored in the usecase layer.
package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/pgvector/pgvector-go"

	domcat "github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
)

const table = "catalog_items"

// Repo implements usecase/search.CatalogRepository.
type Repo struct {
	sb squirrel.StatementBuilderType
}

// New creates a catalog repository over a *sql.DB or *sql.Tx.
func New(br squirrel.BaseRunner) *Repo {
	return &Repo{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// FetchCandidates returns id+embedding for every available item with a
// stored embedding, narrowed by the structural filters.
func (r *Repo) FetchCandidates(ctx context.Context, filters domcat.Filters) ([]domcat.Candidate, error) {
	qry := r.sb.
		Select("id", "embedding").
		From(table).
		Where(squirrel.Eq{"available": true}).
		Where("embedding IS NOT NULL")
	qry = applyFilters(qry, filters)

	rows, err := qry.OrderBy("id ASC").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domcat.Candidate
	for rows.Next() {
		var (
			id  int64
			emb pgvector.Vector
		)
		if err := rows.Scan(&id, &emb); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		out = append(out, domcat.Candidate{ID: id, Embedding: emb.Slice()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return out, nil
}

// FetchByPredicate returns available items matching the keyword
// predicate and structural filters, price-descending. An empty
// predicate lists by filters alone.
func (r *Repo) FetchByPredicate(ctx context.Context, pred query.Predicate, filters domcat.Filters) ([]domcat.Item, error) {
	qry := r.sb.
		Select(itemFields...).
		From(table).
		Where(squirrel.Eq{"available": true})
	qry = applyFilters(qry, filters)
	if !pred.IsEmpty() {
		qry = qry.Where(predicateClause(pred))
	}

	rows, err := qry.OrderBy("price DESC", "id ASC").QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query by predicate: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return scanItems(rows)
}

// FetchByIDs hydrates full rows for the given ids. Missing or
// unavailable ids are absent from the result.
func (r *Repo) FetchByIDs(ctx context.Context, ids []int64) ([]domcat.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.sb.
		Select(itemFields...).
		From(table).
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query by ids: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	return scanItems(rows)
}

func applyFilters(qry squirrel.SelectBuilder, f domcat.Filters) squirrel.SelectBuilder {
	if f.CategoryID != nil {
		qry = qry.Where(squirrel.Eq{"category_id": *f.CategoryID})
	}
	if f.Source != nil {
		qry = qry.Where(squirrel.Eq{"source": *f.Source})
	}
	if f.MinPrice != nil {
		qry = qry.Where(squirrel.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		qry = qry.Where(squirrel.LtOrEq{"price": *f.MaxPrice})
	}
	return qry
}

// predicateClause translates the keyword predicate to SQL: every synonym
// group must whole-word match the name, or the brand (and, for non-broad
// queries, the description) must whole-word match the raw query.
func predicateClause(pred query.Predicate) squirrel.Sqlizer {
	nameCond := make(squirrel.And, 0, len(pred.Groups()))
	for _, g := range pred.Groups() {
		nameCond = append(nameCond, squirrel.Expr("name ~* ?", wordBoundaryPattern(g...)))
	}
	cond := squirrel.Or{nameCond}
	if orig := pred.Original(); orig != "" {
		cond = append(cond, squirrel.Expr("brand ~* ?", wordBoundaryPattern(orig)))
		if !pred.Broad() {
			cond = append(cond, squirrel.Expr("description ~* ?", wordBoundaryPattern(orig)))
		}
	}
	return cond
}

// wordBoundaryPattern builds a whole-word alternation in Postgres ARE
// syntax; \m and \M are the ARE word-boundary anchors.
func wordBoundaryPattern(terms ...string) string {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	return `\m(?:` + strings.Join(quoted, "|") + `)\M`
}
