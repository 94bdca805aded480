// Package views holds the storefront's HTML templates and static assets.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/url"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/Modeva-Ecommerce/sepia-storefront/utils"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// Funcs are the helpers available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"currency":     utils.FormatCurrency,
		"price":        utils.FormatPrice,
		"money":        func(v float64) string { return utils.FormatPrice(&v) },
		"searchURL":    catalog.SearchURL,
		"productURL":   ProductURL,
		"ceiling":      Ceiling,
		"stars":        Stars,
		"discountSale": func() string { return catalog.DiscountSale },
		"discountFull": func() string { return catalog.DiscountFull },
	}
}

// Load parses every page template together with the shared partials.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFiles, "templates/*.html")
}

// Static serves placeholder product art under /products.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static/products")
	if err != nil {
		panic(err)
	}
	return sub
}

func ProductURL(id string) string {
	return "/shop/" + url.PathEscape(id)
}

// Ceiling is the value shown on the price slider: the active ceiling, or
// the top of the range when none is set.
func Ceiling(current *float64, bounds models.PriceBounds) float64 {
	if current != nil {
		return *current
	}
	return bounds.Max
}

// Stars marks which of five rating stars are filled.
func Stars(rating float64) []bool {
	stars := make([]bool, 5)
	for i := range stars {
		stars[i] = float64(i) < rating
	}
	return stars
}
