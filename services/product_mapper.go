package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/Modeva-Ecommerce/sepia-storefront/utils"
	"github.com/google/uuid"
)

const (
	HomeProductLimit   = 12
	HomeCategoryLimit  = 5
	RelatedLimit       = 6
	detailTagLimit     = 3
	detailFeatureLimit = 6
	detailInfoLimit    = 6

	ProductImageFallback  = "/products/product-bottle.svg"
	CategoryImageFallback = "/products/product-pouch.svg"
)

// ═══════════════════════════════════════════════════════════
// Home page
// ═══════════════════════════════════════════════════════════

// MapHomeProducts keeps the first titled records as product cards.
func MapHomeProducts(items []models.UpstreamProduct) []models.ProductCard {
	cards := make([]models.ProductCard, 0, HomeProductLimit)
	for _, item := range items {
		if item.ProductTitle == "" {
			continue
		}
		if len(cards) == HomeProductLimit {
			break
		}

		sale := utils.FormatMoney(item.SalePrice.Ptr())
		original := utils.FormatMoney(item.OriginalPrice.Ptr())

		card := models.ProductCard{
			ID:          item.Identifier(),
			Name:        item.ProductTitle,
			Description: item.ShortDesc,
			Price:       firstNonEmpty(sale, original, "$0.00"),
			Badge:       "Sale",
			ImageSrc:    firstNonEmpty(firstOf(homeImages(item)), ProductImageFallback),
		}
		if sale != "" && original != "" {
			card.OldPrice = original
		}
		if item.DiscountPercentage != "" {
			card.Badge = "-" + item.DiscountPercentage
		}
		cards = append(cards, card)
	}
	return cards
}

// MapHomeCategories returns up to five distinct category1 tiles.
func MapHomeCategories(items []models.UpstreamProduct) []models.HomeCategory {
	seen := make(map[string]struct{})
	out := make([]models.HomeCategory, 0, HomeCategoryLimit)
	for _, item := range items {
		if item.Category1 == "" {
			continue
		}
		if _, dup := seen[item.Category1]; dup {
			continue
		}
		seen[item.Category1] = struct{}{}
		out = append(out, models.HomeCategory{
			Title: item.Category1,
			Image: firstNonEmpty(firstOf(homeImages(item)), CategoryImageFallback),
		})
		if len(out) >= HomeCategoryLimit {
			break
		}
	}
	return out
}

// CategorySource is the slice category tiles are drawn from: the records
// after the product cards, or all of them when there are no more.
func CategorySource(items []models.UpstreamProduct) []models.UpstreamProduct {
	if len(items) > HomeProductLimit {
		return items[HomeProductLimit:]
	}
	return items
}

func homeImages(item models.UpstreamProduct) []string {
	if len(item.Image) > 0 {
		return item.Image
	}
	return item.Imge
}

// ═══════════════════════════════════════════════════════════
// Product detail
// ═══════════════════════════════════════════════════════════

// MapProductDetail converts the upstream record to the page view model.
func MapProductDetail(d *models.UpstreamDetail) models.ProductDetail {
	id := firstNonEmpty(string(d.ProductID), string(d.ID))

	categories := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		if c.Name != "" {
			categories = append(categories, c.Name)
		}
	}

	keywords := make([]string, 0, len(d.Keywords))
	for _, k := range d.Keywords {
		if k != "" {
			keywords = append(keywords, k)
		}
	}

	info := make([]models.InfoItem, 0, detailInfoLimit)
	for _, p := range d.ShowedProps {
		if p.AttrName == "" || p.AttrValue == "" {
			continue
		}
		info = append(info, models.InfoItem{Label: p.AttrName, Value: p.AttrValue})
	}

	brand := "Store"
	if d.SellerInfo != nil && d.SellerInfo.StoreName != "" {
		brand = d.SellerInfo.StoreName
	}

	price := 0.0
	if d.SalePrice.Valid {
		price = d.SalePrice.Value
	}

	detail := models.ProductDetail{
		ID:               id,
		Name:             firstNonEmpty(d.ProductTitle, "Product"),
		Category:         firstNonEmpty(firstOf(categories), "Product"),
		Brand:            brand,
		Tags:             head(keywords, detailTagLimit),
		SKU:              id,
		Rating:           d.Rating.Value,
		Reviews:          mapReviews(d.Reviews),
		Price:            utils.FormatCurrency(&price),
		Badge:            d.DiscountPercentage,
		ShortDescription: d.ShortDesc,
		ImageSrc:         firstNonEmpty(firstOf(d.ImagePathList), d.PosterURL, CategoryImageFallback),
		Gallery:          gallery(d),
		Description:      d.ShortDesc,
		Features:         head(keywords, detailFeatureLimit),
		AdditionalInfo:   head(info, detailInfoLimit),
	}
	if d.OriginalPrice.Valid && d.OriginalPrice.Value != 0 {
		detail.OldPrice = utils.FormatCurrency(d.OriginalPrice.Ptr())
	}
	return detail
}

func mapReviews(in []models.UpstreamReview) []models.ProductReview {
	out := make([]models.ProductReview, 0, len(in))
	for _, r := range in {
		images := []string(r.Images)
		if images == nil {
			images = []string{}
		}
		out = append(out, models.ProductReview{
			ID:      firstNonEmpty(string(r.ID), uuid.NewString()),
			Author:  firstNonEmpty(r.Author, "Anonymous"),
			Rating:  r.Rating.Value,
			Content: r.Content,
			Images:  images,
		})
	}
	return out
}

func gallery(d *models.UpstreamDetail) []string {
	if d.ImagePathList != nil {
		return append([]string{}, d.ImagePathList...)
	}
	if d.PosterURL != "" {
		return []string{d.PosterURL}
	}
	return []string{}
}

// ═══════════════════════════════════════════════════════════
// Related products
// ═══════════════════════════════════════════════════════════

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// RelatedKeyword picks the search word for related products: the first
// alphanumeric word longer than three characters, else the first word.
func RelatedKeyword(name string) string {
	words := make([]string, 0, 8)
	for _, w := range nonAlnum.Split(name, -1) {
		if w != "" {
			words = append(words, w)
		}
	}
	for _, w := range words {
		if len(w) > 3 {
			return w
		}
	}
	return firstOf(words)
}

// relatedListPaths are tried in order; the first that holds an array wins.
var relatedListPaths = [][]string{
	{"data", "data", "list"},
	{"data", "list"},
	{"data", "result"},
	{"data", "items"},
	{"data"},
	{"list"},
}

var relatedImageKeys = []string{"imagePathList", "posterUrl", "image", "pictureUrl"}

// ExtractRelated reads related product cards out of a listing body whose
// shape varies between upstream versions.
func ExtractRelated(body []byte) []models.RelatedProduct {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}

	var items []any
	for _, path := range relatedListPaths {
		if list, ok := lookup(payload, path...).([]any); ok {
			items = list
			break
		}
	}

	out := make([]models.RelatedProduct, 0, RelatedLimit)
	for _, raw := range head(items, RelatedLimit) {
		item, _ := raw.(map[string]any)
		out = append(out, mapRelated(item))
	}
	return out
}

func mapRelated(item map[string]any) models.RelatedProduct {
	id, ok := firstScalar(item, "productId", "id", "itemId", "sku")
	if !ok {
		id = uuid.NewString()
	}

	name, ok := firstScalar(item, "productTitle", "title", "name")
	if !ok {
		name, ok = scalar(lookup(item, "data", "productTitle"))
	}
	if !ok {
		name = "Related product"
	}

	rel := models.RelatedProduct{
		ID:       id,
		Name:     name,
		ImageSrc: utils.NormalizeImageURL(relatedImage(item)),
	}
	if v := item["salePrice"]; truthy(v) {
		rel.Price = utils.FormatCurrency(number(v))
	} else if s, ok := item["salePriceString"].(string); ok {
		rel.Price = s
	}
	if v := item["originalPrice"]; truthy(v) {
		rel.OldPrice = utils.FormatCurrency(number(v))
	}
	if badge, ok := scalar(item["discountPercentage"]); ok {
		rel.Badge = badge
	}
	return rel
}

func relatedImage(item map[string]any) string {
	for _, key := range relatedImageKeys {
		for _, cand := range []any{item[key], lookup(item, "data", key)} {
			switch v := cand.(type) {
			case []any:
				if len(v) > 0 {
					s, _ := v[0].(string)
					return s
				}
			case string:
				if strings.TrimSpace(v) != "" {
					return v
				}
			}
		}
	}
	return ""
}

// ── JSON helpers ─────────────────────────────────────────────────────────────

func lookup(v any, path ...string) any {
	for _, key := range path {
		m, ok := v.(map[string]any)
		if !ok {
			return nil
		}
		v = m[key]
	}
	return v
}

// scalar renders a JSON string or number; nil and other types are absent.
func scalar(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	}
	return "", false
}

func firstScalar(item map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := scalar(item[key]); ok {
			return s, true
		}
	}
	return "", false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case float64:
		return t != 0
	case bool:
		return t
	}
	return true
}

// number converts a JSON value the way a loose numeric cast would; nil
// means not a number.
func number(v any) *float64 {
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return nil
		}
		return &f
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return append(make([]T, 0, len(items)), items...)
}
