package catalog

import "fmt"

// Filters are the structural (non-text) constraints applied at the
// datastore on both retrieval paths: category, source, and price range.
// Style, material, and color inputs are ranking preferences, not filters.
type Filters struct {
	CategoryID *int64
	Source     *string
	MinPrice   *float64
	MaxPrice   *float64
}

// Validate rejects structurally impossible filters.
func (f Filters) Validate() error {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return fmt.Errorf("min_price must not be negative, got %v", *f.MinPrice)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return fmt.Errorf("max_price must not be negative, got %v", *f.MaxPrice)
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		return fmt.Errorf("min_price %v exceeds max_price %v", *f.MinPrice, *f.MaxPrice)
	}
	return nil
}

// IsEmpty reports whether no structural constraint is set.
func (f Filters) IsEmpty() bool {
	return f.CategoryID == nil && f.Source == nil && f.MinPrice == nil && f.MaxPrice == nil
}
