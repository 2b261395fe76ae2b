// Package ranking implements the deterministic six-signal scorer that
// orders fused search candidates.
//
// The design is boost-only: a missing signal (no user preference, no
// item field) contributes the neutral 0.5, never zero, so sparse data
// degrades gracefully. Budget is the one deliberate exception — items
// far over the ceiling sink below neutral.
package ranking

import (
	"math"
	"sort"

	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/request"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/result"
	"github.com/sahityapandiri3/omnishop-search/internal/vectormath"
)

// Neutral is the component score substituted when a signal is absent.
const Neutral = 0.5

// Weights are the per-signal multipliers of the final score. They must
// sum to 1 so the final score stays in [0,1].
type Weights struct {
	Vector        float64 `yaml:"vector"`
	Attribute     float64 `yaml:"attribute"`
	Style         float64 `yaml:"style"`
	MaterialColor float64 `yaml:"material_color"`
	Budget        float64 `yaml:"budget"`
	TextIntent    float64 `yaml:"text_intent"`
}

// DefaultWeights returns the production weighting. The values are
// empirically tuned; change them only through configuration.
func DefaultWeights() Weights {
	return Weights{
		Vector:        0.45,
		Attribute:     0.15,
		Style:         0.15,
		MaterialColor: 0.10,
		Budget:        0.10,
		TextIntent:    0.05,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Vector + w.Attribute + w.Style + w.MaterialColor + w.Budget + w.TextIntent
}

// Scorer computes final scores and orders candidates.
type Scorer struct {
	weights Weights
}

// New creates a Scorer with the given weights.
func New(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Rank scores every item and returns them sorted by final score
// descending. The sort is stable: ties keep the fused input order.
// vectorScores is the semantic similarity map; queryEmbedding may be
// nil when the embedding provider was unavailable.
func (s *Scorer) Rank(
	items []catalog.Item,
	vectorScores map[int64]float64,
	queryEmbedding []float32,
	prefs request.Preferences,
) []result.RankedResult {
	ranked := make([]result.RankedResult, 0, len(items))
	for _, item := range items {
		b := result.Breakdown{
			Vector:        round4(s.vectorScore(item.ID, vectorScores)),
			Attribute:     round4(attributeScore(item, prefs)),
			Style:         round4(styleScore(item, prefs)),
			MaterialColor: round4(materialColorScore(item, prefs)),
			Budget:        round4(budgetScore(item.Price, prefs.BudgetCeiling)),
			TextIntent:    round4(textIntentScore(queryEmbedding, item.Embedding)),
		}
		final := round4(
			s.weights.Vector*b.Vector +
				s.weights.Attribute*b.Attribute +
				s.weights.Style*b.Style +
				s.weights.MaterialColor*b.MaterialColor +
				s.weights.Budget*b.Budget +
				s.weights.TextIntent*b.TextIntent,
		)
		ranked = append(ranked, result.New(item, final, b))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score() > ranked[j].Score()
	})
	return ranked
}

// vectorScore is the semantic similarity for the item, neutral when the
// item never entered the semantic candidate set (no embedding stored,
// or the provider was down). Keyword-only hits must not be zeroed out.
func (s *Scorer) vectorScore(id int64, scores map[int64]float64) float64 {
	v, ok := scores[id]
	if !ok {
		return Neutral
	}
	return clamp01(v)
}

// attributeScore averages the applicable sub-checks: category equality,
// product-type equality with adjacency credit, and seating-capacity
// closeness. Returns 0.5 when no sub-check has usable data.
func attributeScore(item catalog.Item, prefs request.Preferences) float64 {
	var sum float64
	var n int

	if prefs.CategoryID != nil && item.CategoryID != 0 {
		if *prefs.CategoryID == item.CategoryID {
			sum += 1.0
		} else {
			sum += Neutral
		}
		n++
	}

	if prefs.ProductType != nil && item.ProductType != "" {
		want, got := canon(*prefs.ProductType), canon(item.ProductType)
		switch {
		case want == got:
			sum += 1.0
		case typesAdjacent(want, got):
			sum += 0.75
		default:
			sum += Neutral
		}
		n++
	}

	if prefs.SeatingCapacity != nil && item.SeatingCapacity > 0 {
		switch diff := abs(*prefs.SeatingCapacity - item.SeatingCapacity); {
		case diff == 0:
			sum += 1.0
		case diff == 1:
			sum += 0.75
		case diff == 2:
			sum += 0.6
		default:
			sum += Neutral
		}
		n++
	}

	if n == 0 {
		return Neutral
	}
	return sum / float64(n)
}

// styleScore is 0.7·match(primary preference) + 0.3·match(secondary
// preference). match is 1.0 on the item's primary style, 0.75 on its
// secondary style, else 0.5; an unset preference slot scores 0.5.
// Flat 0.5 when the user gave no style preference at all.
func styleScore(item catalog.Item, prefs request.Preferences) float64 {
	if prefs.Style == nil && prefs.SecondaryStyle == nil {
		return Neutral
	}
	match := func(target *string) float64 {
		if target == nil || *target == "" {
			return Neutral
		}
		want := canon(*target)
		if want == canon(item.Style) && item.Style != "" {
			return 1.0
		}
		if want == canon(item.SecondaryStyle) && item.SecondaryStyle != "" {
			return 0.75
		}
		return Neutral
	}
	return 0.7*match(prefs.Style) + 0.3*match(prefs.SecondaryStyle)
}

// materialColorScore is 0.6·material + 0.4·color. Material: 1.0 exact,
// family-level score from the material-family table, else 0.5. Color:
// 1.0 exact, 0.85 same family, else 0.5. Missing inputs score 0.5.
func materialColorScore(item catalog.Item, prefs request.Preferences) float64 {
	material := Neutral
	if prefs.Material != nil && item.Material != "" {
		want, got := canon(*prefs.Material), canon(item.Material)
		switch {
		case want == got:
			material = 1.0
		default:
			if fs := materialFamilyScore(want, got); fs > 0 {
				material = fs
			}
		}
	}

	color := Neutral
	if prefs.Color != nil && item.Color != "" {
		want, got := canon(*prefs.Color), canon(item.Color)
		switch {
		case want == got:
			color = 1.0
		case sameColorFamily(want, got):
			color = 0.85
		}
	}

	return 0.6*material + 0.4*color
}

// budgetScore sinks over-budget items in tiers; boundaries inclusive.
// 0.5 when no ceiling or no price is known.
func budgetScore(price float64, ceiling *float64) float64 {
	if ceiling == nil || *ceiling <= 0 || price <= 0 {
		return Neutral
	}
	switch {
	case price <= *ceiling:
		return 1.0
	case price <= 1.2**ceiling:
		return 0.7
	case price <= 1.5**ceiling:
		return 0.4
	default:
		return 0.2
	}
}

// textIntentScore is the cosine similarity of the query and item
// embeddings, 0.5 when either is unavailable or malformed.
func textIntentScore(queryEmbedding, itemEmbedding []float32) float64 {
	c := vectormath.Cosine(queryEmbedding, itemEmbedding)
	if c < 0 {
		return Neutral
	}
	return c
}

// round4 rounds to 4 decimal places for reproducible output.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
