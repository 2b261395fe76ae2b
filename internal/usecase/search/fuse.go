package search

import (
	"sort"
	"strings"

	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
)

// fusion is the merged candidate order plus the primary/related split.
type fusion struct {
	ids          []int64
	primaryCount int
	relatedCount int
}

// fuse merges the semantic and keyword candidate sets into one ordered
// identifier list.
//
// Semantic candidates are walked by score descending (ties by id for
// determinism) and kept only when score >= threshold AND they are
// either keyword-corroborated or score >= highConfidence — the
// two-stage gate that keeps low-confidence semantic-only matches out
// while surfacing strong ones the keyword path missed. Keyword-only
// matches follow in the repository's own order. Candidates whose name
// contains an exclusion term are dropped entirely on both paths.
//
// itemsByID must contain every candidate that can be included; semantic
// ids that were not hydrated are skipped.
func fuse(
	semantic map[int64]float64,
	keyword []catalog.Item,
	itemsByID map[int64]catalog.Item,
	pred query.Predicate,
	exclusions []string,
	threshold, highConfidence float64,
) fusion {
	keywordSet := make(map[int64]struct{}, len(keyword))
	for _, item := range keyword {
		keywordSet[item.ID] = struct{}{}
	}

	type scored struct {
		id    int64
		score float64
	}
	ordered := make([]scored, 0, len(semantic))
	for id, score := range semantic {
		ordered = append(ordered, scored{id: id, score: score})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].score != ordered[j].score {
			return ordered[i].score > ordered[j].score
		}
		return ordered[i].id < ordered[j].id
	})

	var f fusion
	included := make(map[int64]struct{}, len(semantic)+len(keyword))
	include := func(item catalog.Item) {
		included[item.ID] = struct{}{}
		f.ids = append(f.ids, item.ID)
		if pred.IsEmpty() || pred.MatchesName(item.Name) {
			f.primaryCount++
		} else {
			f.relatedCount++
		}
	}

	for _, c := range ordered {
		if c.score < threshold {
			break // sorted descending, nothing below passes
		}
		_, corroborated := keywordSet[c.id]
		if !corroborated && c.score < highConfidence {
			continue
		}
		item, ok := itemsByID[c.id]
		if !ok || isExcluded(item.Name, exclusions) {
			continue
		}
		include(item)
	}

	for _, item := range keyword {
		if _, dup := included[item.ID]; dup {
			continue
		}
		if isExcluded(item.Name, exclusions) {
			continue
		}
		include(item)
	}

	return f
}

// isExcluded reports whether name contains any exclusion term,
// case-insensitive substring.
func isExcluded(name string, exclusions []string) bool {
	if len(exclusions) == 0 {
		return false
	}
	lower := strings.ToLower(name)
	for _, term := range exclusions {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
