package models

// ═══════════════════════════════════════════════════════════
// Catalog view models
// ═══════════════════════════════════════════════════════════

// Product is the normalized, read-only view of an upstream record.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	DiscountLabel string   `json:"discount_label,omitempty"`
	Category      string   `json:"category,omitempty"`
}

// EffectivePrice is the sale price when present, otherwise the original price.
func (p Product) EffectivePrice() (float64, bool) {
	if p.SalePrice != nil {
		return *p.SalePrice, true
	}
	if p.OriginalPrice != nil {
		return *p.OriginalPrice, true
	}
	return 0, false
}

// HasSale reports whether both prices are known and the sale price is lower.
func (p Product) HasSale() bool {
	return p.SalePrice != nil && p.OriginalPrice != nil && *p.SalePrice < *p.OriginalPrice
}

// ProductCard is a home page card; prices are preformatted.
type ProductCard struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	OldPrice    string `json:"old_price,omitempty"`
	Badge       string `json:"badge"`
	ImageSrc    string `json:"image_src"`
}

// HomeCategory is a home page category tile.
type HomeCategory struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

// ProductReview is a review shown on the detail page.
type ProductReview struct {
	ID      string   `json:"id"`
	Author  string   `json:"author"`
	Rating  float64  `json:"rating"`
	Content string   `json:"content"`
	Images  []string `json:"images,omitempty"`
}

// InfoItem is one row of the "Additional information" tab.
type InfoItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ProductDetail is the detail page view model.
type ProductDetail struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Brand            string          `json:"brand"`
	Tags             []string        `json:"tags"`
	SKU              string          `json:"sku"`
	Rating           float64         `json:"rating"`
	Reviews          []ProductReview `json:"reviews"`
	Price            string          `json:"price"`
	OldPrice         string          `json:"old_price,omitempty"`
	Badge            string          `json:"badge,omitempty"`
	ShortDescription string          `json:"short_description"`
	ImageSrc         string          `json:"image_src"`
	Gallery          []string        `json:"gallery"`
	Description      string          `json:"description"`
	Features         []string        `json:"features"`
	AdditionalInfo   []InfoItem      `json:"additional_info"`
}

// RelatedProduct is a card in the "related products" strip.
type RelatedProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price,omitempty"`
	OldPrice string `json:"old_price,omitempty"`
	Badge    string `json:"badge,omitempty"`
	ImageSrc string `json:"image_src,omitempty"`
}
