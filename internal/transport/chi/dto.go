package chi

import (
	"github.com/sahityapandiri3/omnishop-search/internal/domain/catalog"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/request"
	"github.com/sahityapandiri3/omnishop-search/internal/domain/search/result"
	healthuc "github.com/sahityapandiri3/omnishop-search/internal/usecase/health"
)

type errorResponseDTO struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponseDTO struct {
	Status string                          `json:"status"`
	Checks map[string]healthuc.CheckResult `json:"checks"`
}

type filtersDTO struct {
	CategoryID *int64   `json:"category_id,omitempty"`
	Source     *string  `json:"source,omitempty"`
	MinPrice   *float64 `json:"min_price,omitempty"`
	MaxPrice   *float64 `json:"max_price,omitempty"`
}

type preferencesDTO struct {
	CategoryID      *int64   `json:"category_id,omitempty"`
	ProductType     *string  `json:"product_type,omitempty"`
	SeatingCapacity *int     `json:"seating_capacity,omitempty"`
	Style           *string  `json:"style,omitempty"`
	SecondaryStyle  *string  `json:"secondary_style,omitempty"`
	Material        *string  `json:"material,omitempty"`
	Color           *string  `json:"color,omitempty"`
	BudgetCeiling   *float64 `json:"budget_ceiling,omitempty"`
}

type searchRequestDTO struct {
	Query       string          `json:"query"`
	Filters     *filtersDTO     `json:"filters,omitempty"`
	Preferences *preferencesDTO `json:"preferences,omitempty"`
	Page        int             `json:"page,omitempty"`
	PageSize    int             `json:"page_size,omitempty"`
}

func (r *searchRequestDTO) toDomain() (request.Request, error) {
	var filters catalog.Filters
	if r.Filters != nil {
		filters = catalog.Filters{
			CategoryID: r.Filters.CategoryID,
			Source:     r.Filters.Source,
			MinPrice:   r.Filters.MinPrice,
			MaxPrice:   r.Filters.MaxPrice,
		}
	}

	var prefs request.Preferences
	if r.Preferences != nil {
		prefs = request.Preferences{
			CategoryID:      r.Preferences.CategoryID,
			ProductType:     r.Preferences.ProductType,
			SeatingCapacity: r.Preferences.SeatingCapacity,
			Style:           r.Preferences.Style,
			SecondaryStyle:  r.Preferences.SecondaryStyle,
			Material:        r.Preferences.Material,
			Color:           r.Preferences.Color,
			BudgetCeiling:   r.Preferences.BudgetCeiling,
		}
	}

	return request.New(r.Query, filters, prefs, r.Page, r.PageSize)
}

type breakdownDTO struct {
	Vector        float64 `json:"vector"`
	Attribute     float64 `json:"attribute"`
	Style         float64 `json:"style"`
	MaterialColor float64 `json:"material_color"`
	Budget        float64 `json:"budget"`
	TextIntent    float64 `json:"text_intent"`
}

type resultItemDTO struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	Description     string       `json:"description,omitempty"`
	Brand           string       `json:"brand,omitempty"`
	Source          string       `json:"source,omitempty"`
	Price           float64      `json:"price"`
	CategoryID      int64        `json:"category_id,omitempty"`
	ProductType     string       `json:"product_type,omitempty"`
	SeatingCapacity int          `json:"seating_capacity,omitempty"`
	Style           string       `json:"style,omitempty"`
	SecondaryStyle  string       `json:"secondary_style,omitempty"`
	Material        string       `json:"material,omitempty"`
	Color           string       `json:"color,omitempty"`
	Score           float64      `json:"score"`
	Breakdown       breakdownDTO `json:"breakdown"`
}

type searchResponseDTO struct {
	Items        []resultItemDTO `json:"items"`
	Total        int             `json:"total"`
	TotalPrimary int             `json:"total_primary"`
	TotalRelated int             `json:"total_related"`
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
	HasMore      bool            `json:"has_more"`
}

func pageToDTO(page result.Page, pageNum, pageSize int) searchResponseDTO {
	items := make([]resultItemDTO, len(page.Items))
	for i := range page.Items {
		items[i] = resultToDTO(&page.Items[i])
	}
	return searchResponseDTO{
		Items:        items,
		Total:        page.Total,
		TotalPrimary: page.TotalPrimary,
		TotalRelated: page.TotalRelated,
		Page:         pageNum,
		PageSize:     pageSize,
		HasMore:      page.HasMore,
	}
}

func resultToDTO(r *result.RankedResult) resultItemDTO {
	item := r.Item()
	b := r.Breakdown()
	return resultItemDTO{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Brand:           item.Brand,
		Source:          item.Source,
		Price:           item.Price,
		CategoryID:      item.CategoryID,
		ProductType:     item.ProductType,
		SeatingCapacity: item.SeatingCapacity,
		Style:           item.Style,
		SecondaryStyle:  item.SecondaryStyle,
		Material:        item.Material,
		Color:           item.Color,
		Score:           r.Score(),
		Breakdown: breakdownDTO{
			Vector:        b.Vector,
			Attribute:     b.Attribute,
			Style:         b.Style,
			MaterialColor: b.MaterialColor,
			Budget:        b.Budget,
			TextIntent:    b.TextIntent,
		},
	}
}
