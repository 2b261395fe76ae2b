package ranking

import "strings"

// adjacentTypes lists product types close enough for partial attribute
// credit (0.75 instead of exact-match 1.0). Checked both directions.
var adjacentTypes = map[string][]string{
	"sofa":         {"loveseat", "sectional", "futon", "daybed"},
	"sectional":    {"sofa", "loveseat"},
	"loveseat":     {"sofa", "armchair"},
	"armchair":     {"accent chair", "recliner", "loveseat"},
	"recliner":     {"armchair", "sofa"},
	"coffee table": {"side table", "end table", "ottoman"},
	"side table":   {"end table", "coffee table", "nightstand"},
	"end table":    {"side table", "coffee table"},
	"nightstand":   {"side table", "dresser"},
	"dresser":      {"wardrobe", "nightstand", "chest"},
	"wardrobe":     {"dresser", "cabinet"},
	"bookshelf":    {"cabinet", "shelving unit", "display unit"},
	"desk":         {"study table", "console table"},
	"dining table": {"console table"},
	"bench":        {"ottoman", "stool"},
	"stool":        {"bench", "ottoman"},
	"ottoman":      {"stool", "bench", "pouf"},
}

// materialFamily groups materials that substitute for each other, with
// the family-level match score (exact matches always score 1.0).
type materialFamily struct {
	score   float64
	members []string
}

// materialFamilies keys include the family name itself, so a "wood"
// preference matches an "oak" item and vice versa.
var materialFamilies = []materialFamily{
	{0.9, []string{"wood", "oak", "teak", "sheesham", "mango wood", "walnut", "pine", "acacia", "engineered wood", "mdf", "plywood"}},
	{0.85, []string{"metal", "iron", "steel", "stainless steel", "aluminium", "aluminum", "brass", "copper"}},
	{0.85, []string{"fabric", "cotton", "linen", "velvet", "polyester", "jute", "wool", "upholstered"}},
	{0.8, []string{"leather", "leatherette", "faux leather", "suede"}},
	{0.8, []string{"stone", "marble", "granite", "terrazzo", "quartz"}},
	{0.8, []string{"glass", "tempered glass", "mirrored glass"}},
	{0.8, []string{"rattan", "cane", "wicker", "bamboo"}},
}

// colorFamilies groups colors scored 0.85 for a same-family match.
var colorFamilies = [][]string{
	{"white", "ivory", "cream", "off-white", "off white", "beige"},
	{"black", "charcoal", "ebony"},
	{"brown", "walnut", "tan", "chestnut", "coffee", "natural", "honey"},
	{"grey", "gray", "slate", "silver"},
	{"blue", "navy", "teal", "indigo"},
	{"green", "olive", "emerald", "sage"},
	{"red", "maroon", "burgundy", "rust", "terracotta"},
	{"yellow", "mustard", "gold", "ochre"},
	{"pink", "blush", "rose"},
}

// typesAdjacent reports whether a and b are adjacent product types.
func typesAdjacent(a, b string) bool {
	for _, adj := range adjacentTypes[a] {
		if adj == b {
			return true
		}
	}
	for _, adj := range adjacentTypes[b] {
		if adj == a {
			return true
		}
	}
	return false
}

// materialFamilyScore returns the family score when a and b share a
// material family, or 0 when they do not.
func materialFamilyScore(a, b string) float64 {
	for _, fam := range materialFamilies {
		if memberOf(fam.members, a) && memberOf(fam.members, b) {
			return fam.score
		}
	}
	return 0
}

// sameColorFamily reports whether a and b share a color family.
func sameColorFamily(a, b string) bool {
	for _, fam := range colorFamilies {
		if memberOf(fam, a) && memberOf(fam, b) {
			return true
		}
	}
	return false
}

func memberOf(members []string, v string) bool {
	for _, m := range members {
		if m == v {
			return true
		}
	}
	return false
}

// canon lowercases and trims a label for table lookups.
func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
