// Package catalog is the shop's derived-state pipeline: normalization of
// upstream records, facet derivation, filtering and pagination, plus the
// per-visitor state that ties them together.
package catalog

import (
	"slices"
	"sync"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
)

// Shop is one visitor's catalog state. All methods are safe for concurrent use.
type Shop struct {
	mu sync.Mutex

	pageSize   int
	loading    bool
	err        string
	products   []models.Product
	categories []models.CategoryOption
	bounds     models.PriceBounds
	filter     Filter
	page       int
}

// NewShop returns an empty shop. pageSize < 1 falls back to DefaultPageSize.
func NewShop(pageSize int) *Shop {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return &Shop{
		pageSize:   pageSize,
		loading:    true,
		products:   []models.Product{},
		categories: []models.CategoryOption{},
		bounds:     DefaultPriceBounds,
		page:       1,
	}
}

// SetProducts replaces the product list wholesale, re-derives the facets and
// the price ceiling, and returns to the first page.
func (s *Shop) SetProducts(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(products)
	s.loading = false
}

func (s *Shop) replaceLocked(products []models.Product) {
	if products == nil {
		products = []models.Product{}
	}
	s.products = products
	s.categories = Categories(products)
	s.bounds = Bounds(products)
	s.filter.MaxPrice = ClampCeiling(s.filter.MaxPrice, s.bounds.Max)
	s.page = 1
}

func (s *Shop) beginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.err = ""
}

func (s *Shop) fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceLocked(nil)
	s.err = message
	s.loading = false
}

// Failed reports whether the last committed load ended in an error.
func (s *Shop) Failed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loading && s.err != ""
}

// ToggleCategory adds or removes a category from the filter.
func (s *Shop) ToggleCategory(label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.toggleCategory(label)
	s.page = 1
}

// ToggleDiscount adds or removes a discount token from the filter.
func (s *Shop) ToggleDiscount(token string) error {
	if !validDiscount(token) {
		return ErrUnknownDiscount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.toggleDiscount(token)
	s.page = 1
	return nil
}

// SetMaxPrice sets the price ceiling chosen by the visitor. NaN, infinite
// and negative ceilings are rejected and leave the filter unchanged.
func (s *Shop) SetMaxPrice(ceiling float64) error {
	if !ValidCeiling(ceiling) {
		return ErrInvalidCeiling
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter.MaxPrice = &ceiling
	s.page = 1
	return nil
}

// GoToPage moves to page n, clamped into [1, total pages].
func (s *Shop) GoToPage(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	filtered := s.filter.Apply(s.products)
	s.page = ClampPage(n, TotalPages(len(filtered), s.pageSize))
}

// Page returns the current page number.
func (s *Shop) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// View snapshots the state for rendering.
func (s *Shop) View() models.ShopView {
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := s.filter.Apply(s.products)
	totalPages := TotalPages(len(filtered), s.pageSize)
	s.page = ClampPage(s.page, totalPages)

	var maxPrice *float64
	if s.filter.MaxPrice != nil {
		v := *s.filter.MaxPrice
		maxPrice = &v
	}

	return models.ShopView{
		Loading:            s.loading,
		Error:              s.err,
		Products:           slices.Clone(Paginate(filtered, s.page, s.pageSize)),
		Categories:         slices.Clone(s.categories),
		SelectedCategories: s.filter.SelectedCategories(),
		SelectedDiscounts:  s.filter.SelectedDiscounts(),
		PriceRange:         s.bounds,
		MaxPrice:           maxPrice,
		Page:               s.page,
		PageSize:           s.pageSize,
		TotalPages:         totalPages,
		FilteredCount:      len(filtered),
	}
}
