package catalog

import (
	"slices"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
)

// DefaultPriceBounds is used when no product carries a price.
var DefaultPriceBounds = models.PriceBounds{Min: 0, Max: 100}

// Categories counts products per non-empty category, sorted by label.
func Categories(products []models.Product) []models.CategoryOption {
	counts := make(map[string]int)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		counts[p.Category]++
	}

	options := make([]models.CategoryOption, 0, len(counts))
	for label, count := range counts {
		options = append(options, models.CategoryOption{Label: label, Count: count})
	}
	slices.SortFunc(options, func(a, b models.CategoryOption) int {
		return strings.Compare(a.Label, b.Label)
	})
	return options
}

// Bounds returns the min and max effective price of products.
func Bounds(products []models.Product) models.PriceBounds {
	bounds := models.PriceBounds{}
	found := false
	for _, p := range products {
		price, ok := p.EffectivePrice()
		if !ok {
			continue
		}
		if !found {
			bounds = models.PriceBounds{Min: price, Max: price}
			found = true
			continue
		}
		bounds.Min = min(bounds.Min, price)
		bounds.Max = max(bounds.Max, price)
	}
	if !found {
		return DefaultPriceBounds
	}
	return bounds
}

// Facets derives every facet of products at once.
func Facets(products []models.Product) models.CatalogFacets {
	return models.CatalogFacets{
		Categories: Categories(products),
		PriceRange: Bounds(products),
	}
}
