// ════════════════════════════════════════════════════════════
// STOREFRONT FACETS & SHOP VIEW
// File: models/storefront.go
// ════════════════════════════════════════════════════════════

package models

// CategoryOption is one category facet entry
type CategoryOption struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PriceBounds is the min and max effective price of the current product list
type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CatalogFacets groups the derived facets of a product list
type CatalogFacets struct {
	Categories []CategoryOption `json:"categories"`
	PriceRange PriceBounds      `json:"price_range"`
}

// CatalogPage is the stateless catalog API payload
type CatalogPage struct {
	Products []Product     `json:"products"`
	Facets   CatalogFacets `json:"facets"`
	MaxPrice *float64      `json:"max_price,omitempty"`
}

// ShopView is a snapshot of one visitor's shop state, ready to render
type ShopView struct {
	SearchTerm         string           `json:"search_term"`
	Loading            bool             `json:"loading"`
	Error              string           `json:"error,omitempty"`
	Products           []Product        `json:"products"`
	Categories         []CategoryOption `json:"categories"`
	SelectedCategories []string         `json:"selected_categories"`
	SelectedDiscounts  []string         `json:"selected_discounts"`
	PriceRange         PriceBounds      `json:"price_range"`
	MaxPrice           *float64         `json:"max_price,omitempty"`
	Page               int              `json:"page"`
	PageSize           int              `json:"page_size"`
	TotalPages         int              `json:"total_pages"`
	FilteredCount      int              `json:"filtered_count"`
}

// Pages lists 1..TotalPages for pagination controls.
func (v ShopView) Pages() []int {
	pages := make([]int, v.TotalPages)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// IsCategorySelected reports whether label is part of the category filter.
func (v ShopView) IsCategorySelected(label string) bool {
	for _, c := range v.SelectedCategories {
		if c == label {
			return true
		}
	}
	return false
}

// IsDiscountSelected reports whether token is part of the discount filter.
func (v ShopView) IsDiscountSelected(token string) bool {
	for _, d := range v.SelectedDiscounts {
		if d == token {
			return true
		}
	}
	return false
}
