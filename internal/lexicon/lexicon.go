// Package lexicon implements query expansion for catalog search:
// singular/plural normalization, synonym term-group expansion, and
// exclusion-term resolution for ambiguous furniture queries.
//
// A Lexicon is built once at process start from immutable tables and is
// safe for concurrent use; no method mutates state.
package lexicon

import (
	"sort"
	"strings"

	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/query"
)

// Tables is the raw configuration a Lexicon is built from.
type Tables struct {
	// SynonymGroups are sets of interchangeable terms. Every
	// single-word member keys its group for lookup.
	SynonymGroups [][]string
	// Exclusions maps an ambiguous query to terms whose presence in a
	// candidate name disqualifies it.
	Exclusions map[string][]string
	// InvariantNouns are never pluralized ("furniture", "decor").
	InvariantNouns []string
	// BroadTerms are queries too generic for description matching.
	BroadTerms []string
}

// Lexicon resolves queries against the synonym and exclusion tables.
type Lexicon struct {
	synonyms      map[string][]string
	exclusions    map[string][]string
	exclusionKeys []string
	invariant     map[string]struct{}
	broad         map[string]struct{}
}

// New builds a Lexicon from tables. The input is copied; later mutation
// of the tables does not affect the Lexicon.
func New(t Tables) *Lexicon {
	l := &Lexicon{
		synonyms:   make(map[string][]string),
		exclusions: make(map[string][]string, len(t.Exclusions)),
		invariant:  make(map[string]struct{}, len(t.InvariantNouns)),
		broad:      make(map[string]struct{}, len(t.BroadTerms)),
	}
	for _, group := range t.SynonymGroups {
		set := normalizeSet(group)
		for _, term := range set {
			if !strings.Contains(term, " ") {
				l.synonyms[term] = set
			}
		}
	}
	for key, terms := range t.Exclusions {
		key = strings.ToLower(strings.TrimSpace(key))
		l.exclusions[key] = normalizeSet(terms)
		l.exclusionKeys = append(l.exclusionKeys, key)
	}
	// Deterministic fallback scan order, longest key first.
	sort.Slice(l.exclusionKeys, func(i, j int) bool {
		if len(l.exclusionKeys[i]) != len(l.exclusionKeys[j]) {
			return len(l.exclusionKeys[i]) > len(l.exclusionKeys[j])
		}
		return l.exclusionKeys[i] < l.exclusionKeys[j]
	})
	for _, w := range t.InvariantNouns {
		l.invariant[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	for _, w := range t.BroadTerms {
		l.broad[strings.ToLower(strings.TrimSpace(w))] = struct{}{}
	}
	return l
}

// Default builds a Lexicon from the built-in furniture tables.
func Default() *Lexicon {
	return New(DefaultTables())
}

// Expand maps a raw query to ordered term groups, one per word.
// Each word resolves to its synonym set on a dictionary hit (the word
// itself, then each normalized form) or to its normalized forms.
// Returns nil for an empty query.
func (l *Lexicon) Expand(rawQuery string) []query.TermGroup {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(rawQuery)))
	if len(words) == 0 {
		return nil
	}
	groups := make([]query.TermGroup, 0, len(words))
	for _, w := range words {
		groups = append(groups, l.resolveGroup(w))
	}
	return groups
}

// resolveGroup resolves one word to a term group.
func (l *Lexicon) resolveGroup(word string) query.TermGroup {
	if set, ok := l.synonyms[word]; ok {
		return query.TermGroup(cloneSet(set))
	}
	forms := l.NormalizeForms(word)
	for _, f := range forms {
		if set, ok := l.synonyms[f]; ok {
			return query.TermGroup(cloneSet(set))
		}
	}
	return query.TermGroup(forms)
}

// Exclusions returns the disqualifying terms for a query: an exact
// table hit, or the longest table key contained in the query. Empty
// when nothing matches.
func (l *Lexicon) Exclusions(rawQuery string) []string {
	q := strings.ToLower(strings.TrimSpace(rawQuery))
	if q == "" {
		return nil
	}
	if terms, ok := l.exclusions[q]; ok {
		return cloneSet(terms)
	}
	for _, key := range l.exclusionKeys {
		if strings.Contains(q, key) {
			return cloneSet(l.exclusions[key])
		}
	}
	return nil
}

// IsBroad reports whether the query is too generic for description matching.
func (l *Lexicon) IsBroad(rawQuery string) bool {
	_, ok := l.broad[strings.ToLower(strings.TrimSpace(rawQuery))]
	return ok
}

// normalizeSet lowercases, trims, and dedupes preserving order.
func normalizeSet(terms []string) []string {
	out := make([]string, 0, len(terms))
	seen := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func cloneSet(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
