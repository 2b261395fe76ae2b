package lexicon

// DefaultTables returns the built-in furniture-catalog tables. Callers
// needing a different vocabulary construct a Lexicon from their own
// Tables; nothing here is mutated after New.
func DefaultTables() Tables {
	return Tables{
		SynonymGroups: [][]string{
			{"sofa", "couch", "settee", "loveseat"},
			{"sectional", "l-shaped sofa", "l shaped sofa", "corner sofa"},
			{"armchair", "arm chair", "accent chair", "lounge chair"},
			{"recliner", "reclining sofa", "lounger"},
			{"ottoman", "pouf", "footstool"},
			{"center", "centre", "coffee"},
			{"nightstand", "night stand", "bedside table"},
			{"dresser", "chest of drawers", "drawer chest"},
			{"wardrobe", "almirah", "cupboard", "armoire"},
			{"bookshelf", "bookcase", "book shelf", "shelving unit"},
			{"desk", "study table", "writing table"},
			{"tv", "television", "entertainment unit", "media console"},
			{"rug", "carpet", "dhurrie"},
			{"curtains", "drapes", "drapery"},
			{"lamp", "floor lamp", "table lamp"},
			{"stool", "bar stool", "counter stool"},
			{"crockery", "china cabinet", "display cabinet"},
			{"shoe", "footwear"},
		},
		Exclusions: map[string][]string{
			"center table":   {"dining", "console", "side table", "end table", "nightstand"},
			"coffee table":   {"dining", "console", "side table", "end table", "nightstand"},
			"dining table":   {"coffee", "center", "centre", "side table", "end table", "console", "study"},
			"console table":  {"dining", "coffee", "center", "centre", "bedside"},
			"side table":     {"dining", "coffee table", "console"},
			"study table":    {"dining", "coffee", "dressing"},
			"dressing table": {"dining", "coffee", "study"},
			"dining chair":   {"office", "accent", "lounge"},
			"office chair":   {"dining", "accent"},
		},
		InvariantNouns: []string{
			"furniture", "decor", "seating", "lighting", "storage", "shelving",
		},
		BroadTerms: []string{
			"decor", "art", "furniture", "lighting", "storage",
		},
	}
}
