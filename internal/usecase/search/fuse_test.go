package search

import (
	"reflect"
	"testing"

	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
)

func itemIndex(items ...catalog.Item) map[int64]catalog.Item {
	m := make(map[int64]catalog.Item, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m
}

func TestFuse_ThresholdGate(t *testing.T) {
	weak := catalog.Item{ID: 1, Name: "Weak Semantic Sofa"}
	strong := catalog.Item{ID: 2, Name: "Strong Semantic Sofa"}
	below := catalog.Item{ID: 3, Name: "Below Threshold Sofa"}

	semantic := map[int64]float64{
		1: 0.35, // above threshold, below high confidence, no keyword hit -> out
		2: 0.55, // above high confidence -> in
		3: 0.20, // below threshold -> out
	}

	f := fuse(semantic, nil, itemIndex(weak, strong, below),
		query.Predicate{}, nil, 0.3, 0.5)

	if !reflect.DeepEqual(f.ids, []int64{2}) {
		t.Errorf("ids = %v, want [2]", f.ids)
	}
}

func TestFuse_KeywordCorroborationAdmitsMidScores(t *testing.T) {
	item := catalog.Item{ID: 1, Name: "Corroborated Sofa"}

	semantic := map[int64]float64{1: 0.35}
	keyword := []catalog.Item{item}

	f := fuse(semantic, keyword, itemIndex(item), query.Predicate{}, nil, 0.3, 0.5)

	if !reflect.DeepEqual(f.ids, []int64{1}) {
		t.Errorf("ids = %v, want [1]", f.ids)
	}
}

func TestFuse_SemanticOrderThenKeywordOrder(t *testing.T) {
	a := catalog.Item{ID: 1, Name: "A"}
	b := catalog.Item{ID: 2, Name: "B"}
	c := catalog.Item{ID: 3, Name: "C"}
	d := catalog.Item{ID: 4, Name: "D"}

	semantic := map[int64]float64{1: 0.6, 2: 0.9}
	// Keyword order is the repository's (price-descending): d before c.
	keyword := []catalog.Item{d, c, a}

	f := fuse(semantic, keyword, itemIndex(a, b, c, d), query.Predicate{}, nil, 0.3, 0.5)

	// Semantic hits by score descending, then keyword-only in their order.
	if !reflect.DeepEqual(f.ids, []int64{2, 1, 4, 3}) {
		t.Errorf("ids = %v, want [2 1 4 3]", f.ids)
	}
}

func TestFuse_ExclusionVeto(t *testing.T) {
	excluded := catalog.Item{ID: 1, Name: "Modern Center Dining Table"}
	kept := catalog.Item{ID: 2, Name: "Walnut Center Table"}

	// Strong semantic match cannot rescue an excluded name.
	semantic := map[int64]float64{1: 0.95, 2: 0.6}
	keyword := []catalog.Item{excluded}

	f := fuse(semantic, keyword, itemIndex(excluded, kept),
		query.Predicate{}, []string{"dining"}, 0.3, 0.5)

	if !reflect.DeepEqual(f.ids, []int64{2}) {
		t.Errorf("ids = %v, want [2]", f.ids)
	}
}

func TestFuse_PrimaryRelatedPartition(t *testing.T) {
	pred := query.NewPredicate([]query.TermGroup{
		{"center", "centre", "coffee"},
		{"table", "tables"},
	}, "center table", false)

	primary := catalog.Item{ID: 1, Name: "Walnut Coffee Table"}
	related := catalog.Item{ID: 2, Name: "Walnut Side Stool"}

	semantic := map[int64]float64{2: 0.7}
	keyword := []catalog.Item{primary}

	f := fuse(semantic, keyword, itemIndex(primary, related), pred, nil, 0.3, 0.5)

	if f.primaryCount != 1 || f.relatedCount != 1 {
		t.Errorf("primary/related = %d/%d, want 1/1", f.primaryCount, f.relatedCount)
	}
}

func TestFuse_FilterOnlyAllPrimary(t *testing.T) {
	a := catalog.Item{ID: 1, Name: "Anything"}
	b := catalog.Item{ID: 2, Name: "Else"}

	f := fuse(nil, []catalog.Item{a, b}, itemIndex(a, b),
		query.NewPredicate(nil, "", false), nil, 0.3, 0.5)

	if f.primaryCount != 2 || f.relatedCount != 0 {
		t.Errorf("primary/related = %d/%d, want 2/0", f.primaryCount, f.relatedCount)
	}
}

func TestFuse_SkipsUnhydratedSemanticIDs(t *testing.T) {
	hydrated := catalog.Item{ID: 1, Name: "Hydrated"}
	semantic := map[int64]float64{1: 0.8, 99: 0.9}

	f := fuse(semantic, nil, itemIndex(hydrated), query.Predicate{}, nil, 0.3, 0.5)

	if !reflect.DeepEqual(f.ids, []int64{1}) {
		t.Errorf("ids = %v, want [1]", f.ids)
	}
}
