package query

import (
	"regexp"
	"strings"
)

// TermGroup is a set of interchangeable synonym terms. A candidate name
// must match at least one term from every group (AND across groups, OR
// within a group).
type TermGroup []string

// Predicate is the boolean keyword-match condition over an item's
// name/brand/description. It is translated to SQL by the catalog
// repository and evaluated in-memory for the primary/related partition.
type Predicate struct {
	groups   []TermGroup
	original string
	broad    bool

	groupRes []*regexp.Regexp
	origRe   *regexp.Regexp
}

// NewPredicate builds a predicate from expanded term groups and the raw
// query. broad marks queries too generic for description matching
// ("furniture", "decor").
func NewPredicate(groups []TermGroup, original string, broad bool) Predicate {
	p := Predicate{
		groups:   groups,
		original: strings.ToLower(strings.TrimSpace(original)),
		broad:    broad,
	}
	p.groupRes = make([]*regexp.Regexp, len(groups))
	for i, g := range groups {
		p.groupRes[i] = wholeWordRegexp(g)
	}
	if p.original != "" {
		p.origRe = wholeWordRegexp([]string{p.original})
	}
	return p
}

// Groups returns the synonym term groups.
func (p Predicate) Groups() []TermGroup { return p.groups }

// Original returns the lowercased raw query.
func (p Predicate) Original() string { return p.original }

// Broad reports whether the query is in the too-broad set.
func (p Predicate) Broad() bool { return p.broad }

// IsEmpty reports whether the predicate constrains nothing (filter-only search).
func (p Predicate) IsEmpty() bool { return len(p.groups) == 0 }

// MatchesName reports whether name satisfies the full AND/OR group
// condition: at least one term from every group, whole words only.
// An empty predicate matches everything.
func (p Predicate) MatchesName(name string) bool {
	for _, re := range p.groupRes {
		if !re.MatchString(name) {
			return false
		}
	}
	return true
}

// Matches evaluates the complete keyword condition: the name satisfies
// every term group, or the brand matches the whole original query, or
// (for non-broad queries) the description matches the original query.
func (p Predicate) Matches(name, brand, description string) bool {
	if p.IsEmpty() {
		return true
	}
	if p.MatchesName(name) {
		return true
	}
	if p.origRe == nil {
		return false
	}
	if p.origRe.MatchString(brand) {
		return true
	}
	return !p.broad && p.origRe.MatchString(description)
}

// wholeWordRegexp compiles a case-insensitive whole-word alternation.
// Word boundaries keep "bed" from matching "bedspread".
func wholeWordRegexp(terms []string) *regexp.Regexp {
	quoted := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t != "" {
			quoted = append(quoted, regexp.QuoteMeta(t))
		}
	}
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`)
}
