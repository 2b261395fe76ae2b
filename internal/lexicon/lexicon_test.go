package lexicon

import (
	"reflect"
	"testing"
)

func TestExpand_SingleWordSynonymHit(t *testing.T) {
	l := Default()

	groups := l.Expand("sofa")
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	want := []string{"sofa", "couch", "settee", "loveseat"}
	if !reflect.DeepEqual([]string(groups[0]), want) {
		t.Errorf("group = %v, want %v", groups[0], want)
	}
}

func TestExpand_SingleWordNormalizedFormHit(t *testing.T) {
	l := Default()

	// "sofas" is not a dictionary key; its singular form "sofa" is.
	groups := l.Expand("sofas")
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	want := []string{"sofa", "couch", "settee", "loveseat"}
	if !reflect.DeepEqual([]string(groups[0]), want) {
		t.Errorf("group = %v, want %v", groups[0], want)
	}
}

func TestExpand_SingleWordMiss(t *testing.T) {
	l := Default()

	groups := l.Expand("gazebo")
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	want := []string{"gazebo", "gazebos"}
	if !reflect.DeepEqual([]string(groups[0]), want) {
		t.Errorf("group = %v, want %v", groups[0], want)
	}
}

func TestExpand_MultiWordOneGroupPerWord(t *testing.T) {
	l := Default()

	groups := l.Expand("L-shaped sofa")
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d: %v", len(groups), groups)
	}
	// Second group is the sofa synonym set, first the l-shaped forms.
	if groups[0][0] != "l-shaped" {
		t.Errorf("first group = %v, want l-shaped forms first", groups[0])
	}
	wantSofa := []string{"sofa", "couch", "settee", "loveseat"}
	if !reflect.DeepEqual([]string(groups[1]), wantSofa) {
		t.Errorf("second group = %v, want %v", groups[1], wantSofa)
	}
}

func TestExpand_Idempotent(t *testing.T) {
	l := Default()

	first := l.Expand("center table")
	second := l.Expand("center table")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Expand not idempotent: %v vs %v", first, second)
	}
}

func TestExpand_Empty(t *testing.T) {
	l := Default()
	if groups := l.Expand("   "); groups != nil {
		t.Errorf("expected nil groups for blank query, got %v", groups)
	}
}

func TestExclusions_ExactHit(t *testing.T) {
	l := Default()

	terms := l.Exclusions("center table")
	if len(terms) == 0 {
		t.Fatal("expected exclusion terms for center table")
	}
	if !contains(terms, "dining") {
		t.Errorf("terms = %v, want to contain dining", terms)
	}
}

func TestExclusions_SubstringFallback(t *testing.T) {
	l := Default()

	terms := l.Exclusions("modern center table under 20000")
	if !contains(terms, "dining") {
		t.Errorf("terms = %v, want substring fallback onto center table entry", terms)
	}
}

func TestExclusions_NoMatch(t *testing.T) {
	l := Default()
	if terms := l.Exclusions("velvet ottoman"); len(terms) != 0 {
		t.Errorf("expected no exclusions, got %v", terms)
	}
}

func TestIsBroad(t *testing.T) {
	l := Default()
	if !l.IsBroad("furniture") {
		t.Error("furniture should be broad")
	}
	if !l.IsBroad("Decor") {
		t.Error("decor should be broad (case-insensitive)")
	}
	if l.IsBroad("oak table") {
		t.Error("oak table should not be broad")
	}
}

func TestNew_CopiesTables(t *testing.T) {
	tables := Tables{
		SynonymGroups: [][]string{{"foo", "bar"}},
		Exclusions:    map[string][]string{"foo": {"baz"}},
	}
	l := New(tables)

	tables.SynonymGroups[0][1] = "mutated"
	tables.Exclusions["foo"][0] = "mutated"

	groups := l.Expand("foo")
	if !reflect.DeepEqual([]string(groups[0]), []string{"foo", "bar"}) {
		t.Errorf("synonym table not copied: %v", groups[0])
	}
	if got := l.Exclusions("foo"); !reflect.DeepEqual(got, []string{"baz"}) {
		t.Errorf("exclusion table not copied: %v", got)
	}
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
