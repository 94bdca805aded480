package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
)

func price(v float64) *float64 { return &v }

func product(id, category string, sale, original *float64) models.Product {
	return models.Product{
		ID:            id,
		Title:         "Product " + id,
		Image:         "https://img.example.com/" + id + ".jpg",
		SalePrice:     sale,
		OriginalPrice: original,
		Category:      category,
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

var randomCategories = []string{"", "Body", "Face", "Hair", "Lips"}

// randomProducts builds n products with a mix of missing prices, discounts
// and categories.
func randomProducts(r *rand.Rand, n int) []models.Product {
	products := make([]models.Product, n)
	for i := range products {
		var sale, original *float64
		switch r.IntN(4) {
		case 0:
			sale = price(float64(r.IntN(100)))
		case 1:
			original = price(float64(r.IntN(100)))
		case 2:
			sale = price(float64(r.IntN(100)))
			original = price(float64(r.IntN(100)))
		}
		products[i] = product(fmt.Sprint(i), randomCategories[r.IntN(len(randomCategories))], sale, original)
	}
	return products
}

func randomFilter(r *rand.Rand) Filter {
	var categories, discounts []string
	for _, c := range randomCategories[1:] {
		if r.IntN(3) == 0 {
			categories = append(categories, c)
		}
	}
	for _, d := range []string{DiscountSale, DiscountFull} {
		if r.IntN(2) == 0 {
			discounts = append(discounts, d)
		}
	}
	var ceiling *float64
	if r.IntN(2) == 0 {
		ceiling = price(float64(r.IntN(110)))
	}
	f, err := NewFilter(categories, discounts, ceiling)
	if err != nil {
		panic(err)
	}
	return f
}
