package catalog

import (
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
)

// PlaceholderImage is shown when a product's first image URL is blank.
const PlaceholderImage = "/products/product-bottle.svg"

// Normalize maps upstream records into products, preserving upstream order.
// Records without a title, without any image URL or without a price are
// dropped; they are not reported as errors.
func Normalize(records []models.UpstreamProduct) []models.Product {
	products := make([]models.Product, 0, len(records))
	for _, r := range records {
		if p, ok := normalizeRecord(r); ok {
			products = append(products, p)
		}
	}
	return products
}

func normalizeRecord(r models.UpstreamProduct) (models.Product, bool) {
	title := strings.TrimSpace(r.ProductTitle)
	if title == "" {
		return models.Product{}, false
	}

	images := r.Images()
	if !hasImage(images) {
		return models.Product{}, false
	}

	if !r.SalePrice.Valid && !r.OriginalPrice.Valid {
		return models.Product{}, false
	}

	image := strings.TrimSpace(images[0])
	if image == "" {
		image = PlaceholderImage
	}

	return models.Product{
		ID:            r.Identifier(),
		Title:         title,
		Description:   r.ShortDesc,
		Image:         image,
		SalePrice:     r.SalePrice.Ptr(),
		OriginalPrice: r.OriginalPrice.Ptr(),
		DiscountLabel: r.DiscountPercentage,
		Category:      r.Category1,
	}, true
}

func hasImage(images []string) bool {
	for _, url := range images {
		if strings.TrimSpace(url) != "" {
			return true
		}
	}
	return false
}
