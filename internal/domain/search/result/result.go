package result

import "github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"

// Breakdown is the named per-signal score decomposition of a ranked
// result. Every component is in [0,1], rounded to 4 decimals.
type Breakdown struct {
	Vector        float64 `json:"vector"`
	Attribute     float64 `json:"attribute"`
	Style         float64 `json:"style"`
	MaterialColor float64 `json:"material_color"`
	Budget        float64 `json:"budget"`
	TextIntent    float64 `json:"text_intent"`
}

// RankedResult is a catalog item with its final weighted score and the
// component breakdown, kept for response construction and audit.
type RankedResult struct {
	item      catalog.Item
	score     float64
	breakdown Breakdown
}

// New creates a ranked result.
func New(item catalog.Item, score float64, breakdown Breakdown) RankedResult {
	return RankedResult{item: item, score: score, breakdown: breakdown}
}

// Item returns the catalog item.
func (r *RankedResult) Item() catalog.Item { return r.item }

// Score returns the final weighted score.
func (r *RankedResult) Score() float64 { return r.score }

// Breakdown returns the per-signal decomposition.
func (r *RankedResult) Breakdown() Breakdown { return r.breakdown }

// Page is one page of ranked search results.
type Page struct {
	Items        []RankedResult
	Total        int
	TotalPrimary int
	TotalRelated int
	HasMore      bool
}
