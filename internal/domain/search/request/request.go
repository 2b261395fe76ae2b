package request

import (
	"fmt"
	"strings"

	"github.com/sahityapandiri3/omnishop-search/internal/domain"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength  = 1024
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Preferences are the optional user ranking preferences, resolved into
// one typed struct at the boundary. Every field is nullable; a missing
// preference leaves the corresponding score component at neutral 0.5.
type Preferences struct {
	CategoryID      *int64
	ProductType     *string
	SeatingCapacity *int
	Style           *string
	SecondaryStyle  *string
	Material        *string
	Color           *string
	BudgetCeiling   *float64
}

// Request is a validated search request. Query may be empty for
// filter-only searches.
type Request struct {
	query    string
	filters  catalog.Filters
	prefs    Preferences
	page     int
	pageSize int
}

// New validates and normalizes search parameters.
// Page defaults to 1, pageSize to DefaultPageSize (clamped to MaxPageSize).
func New(
	query string,
	filters catalog.Filters,
	prefs Preferences,
	page, pageSize int,
) (Request, error) {
	query = strings.TrimSpace(query)
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidRequest, MaxQueryLength)
	}
	if page == 0 {
		page = 1
	}
	if page < 1 {
		return Request{}, fmt.Errorf("%w: page must be >= 1, got %d", domain.ErrInvalidRequest, page)
	}
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	if pageSize < 1 {
		return Request{}, fmt.Errorf("%w: page_size must be >= 1, got %d", domain.ErrInvalidRequest, pageSize)
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	if err := filters.Validate(); err != nil {
		return Request{}, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err)
	}
	if prefs.BudgetCeiling != nil && *prefs.BudgetCeiling < 0 {
		return Request{}, fmt.Errorf("%w: budget ceiling must not be negative", domain.ErrInvalidRequest)
	}

	return Request{
		query:    query,
		filters:  filters,
		prefs:    prefs,
		page:     page,
		pageSize: pageSize,
	}, nil
}

// Query returns the trimmed query text ("" for filter-only searches).
func (r *Request) Query() string { return r.query }

// Filters returns the structural filters.
func (r *Request) Filters() catalog.Filters { return r.filters }

// Preferences returns the user ranking preferences.
func (r *Request) Preferences() Preferences { return r.prefs }

// Page returns the 1-based page number.
func (r *Request) Page() int { return r.page }

// PageSize returns the page size.
func (r *Request) PageSize() int { return r.pageSize }
