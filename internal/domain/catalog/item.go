package catalog

// Item is a catalog product row, read-only to the search engine.
// Embedding is either nil or has exactly the configured dimensionality;
// rows violating that are skipped by the semantic matcher.
type Item struct {
	ID              int64
	Name            string
	Description     string
	Brand           string
	Source          string
	Price           float64
	CategoryID      int64
	ProductType     string
	SeatingCapacity int
	Style           string
	SecondaryStyle  string
	Material        string
	Color           string
	Available       bool
	Embedding       []float32
}

// Candidate is the id+vector projection fetched for the semantic scan.
type Candidate struct {
	ID        int64
	Embedding []float32
}
