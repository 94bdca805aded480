package catalog

import (
	"errors"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
)

// Discount filter tokens.
const (
	DiscountSale = "sale"
	DiscountFull = "full"
)

var (
	ErrUnknownDiscount = errors.New("unknown discount token")
	ErrInvalidCeiling  = errors.New("price ceiling must be a non-negative number")
)

// Filter holds the category, discount and price ceiling selections.
// The zero value matches every product.
type Filter struct {
	Categories map[string]struct{}
	Discounts  map[string]struct{}
	MaxPrice   *float64
}

// NewFilter builds a filter from plain selections. Unknown discount tokens
// and invalid ceilings are rejected.
func NewFilter(categories, discounts []string, maxPrice *float64) (Filter, error) {
	if maxPrice != nil && !ValidCeiling(*maxPrice) {
		return Filter{}, ErrInvalidCeiling
	}
	f := Filter{MaxPrice: maxPrice}
	for _, c := range categories {
		if _, ok := f.Categories[c]; !ok {
			f.toggleCategory(c)
		}
	}
	for _, d := range discounts {
		if !validDiscount(d) {
			return Filter{}, ErrUnknownDiscount
		}
		if !f.hasDiscount(d) {
			f.toggleDiscount(d)
		}
	}
	return f, nil
}

// ValidCeiling reports whether v can bound prices: finite and not negative.
func ValidCeiling(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// ParseCeiling reads a price ceiling typed by a visitor.
func ParseCeiling(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !ValidCeiling(v) {
		return 0, ErrInvalidCeiling
	}
	return v, nil
}

func validDiscount(token string) bool {
	return token == DiscountSale || token == DiscountFull
}

// Matches reports whether p passes the category, discount and price predicates.
func (f Filter) Matches(p models.Product) bool {
	return f.matchesCategory(p) && f.matchesDiscount(p) && f.matchesPrice(p)
}

// Apply returns the products that match, in their original order.
func (f Filter) Apply(products []models.Product) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f Filter) matchesCategory(p models.Product) bool {
	if len(f.Categories) == 0 {
		return true
	}
	_, ok := f.Categories[p.Category]
	return ok
}

// Selecting both tokens, or neither, does not constrain the result.
func (f Filter) matchesDiscount(p models.Product) bool {
	sale := f.hasDiscount(DiscountSale)
	full := f.hasDiscount(DiscountFull)
	if sale == full {
		return true
	}
	if sale {
		return p.HasSale()
	}
	return !p.HasSale()
}

func (f Filter) matchesPrice(p models.Product) bool {
	if f.MaxPrice == nil {
		return true
	}
	price, ok := p.EffectivePrice()
	if !ok {
		return true
	}
	return price <= *f.MaxPrice
}

func (f Filter) hasDiscount(token string) bool {
	_, ok := f.Discounts[token]
	return ok
}

func (f *Filter) toggleCategory(label string) {
	if f.Categories == nil {
		f.Categories = make(map[string]struct{})
	}
	if _, ok := f.Categories[label]; ok {
		delete(f.Categories, label)
		return
	}
	f.Categories[label] = struct{}{}
}

func (f *Filter) toggleDiscount(token string) {
	if f.Discounts == nil {
		f.Discounts = make(map[string]struct{})
	}
	if _, ok := f.Discounts[token]; ok {
		delete(f.Discounts, token)
		return
	}
	f.Discounts[token] = struct{}{}
}

// SelectedCategories returns the selected category labels, sorted.
func (f Filter) SelectedCategories() []string {
	return sortedKeys(f.Categories)
}

// SelectedDiscounts returns the selected discount tokens, sorted.
func (f Filter) SelectedDiscounts() []string {
	return sortedKeys(f.Discounts)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// ClampCeiling re-derives the price ceiling after the bounds change: an
// existing ceiling is only ever lowered to the new max, a missing one is
// seeded with it.
func ClampCeiling(current *float64, newMax float64) *float64 {
	v := newMax
	if current != nil {
		v = min(*current, newMax)
	}
	return &v
}
