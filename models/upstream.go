// ════════════════════════════════════════════════════════════
// UPSTREAM COMMERCE API PAYLOADS
// File: models/upstream.go
// ════════════════════════════════════════════════════════════

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Price is an optional upstream amount. The upstream sends numbers, numeric
// strings or null for the same field.
type Price struct {
	Value float64
	Valid bool
}

// PriceOf returns a valid Price.
func PriceOf(v float64) Price {
	return Price{Value: v, Valid: true}
}

func (p *Price) UnmarshalJSON(data []byte) error {
	*p = Price{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Unparseable amounts are treated as absent
			return nil
		}
		*p = PriceOf(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	*p = PriceOf(v)
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}

// Ptr returns the amount as a pointer, nil when absent.
func (p Price) Ptr() *float64 {
	if !p.Valid {
		return nil
	}
	v := p.Value
	return &v
}

// FlexString accepts a JSON string or number (ids come back as both).
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(string(data))
	return nil
}

// StringList accepts either a JSON array of strings or a single string.
// Non-string array members are skipped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*l = StringList{v}
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		out := make(StringList, 0, len(raw))
		for _, item := range raw {
			var v string
			if err := json.Unmarshal(item, &v); err == nil {
				out = append(out, v)
			}
		}
		*l = out
	}
	return nil
}

// UpstreamProduct is one record of the upstream product listing.
type UpstreamProduct struct {
	ProductID          FlexString `json:"productId"`
	ID                 FlexString `json:"id"`
	ProductTitle       string     `json:"productTitle"`
	ShortDesc          string     `json:"shortDesc"`
	SalePrice          Price      `json:"salePrice"`
	OriginalPrice      Price      `json:"originalPrice"`
	DiscountPercentage string     `json:"discountPercentage"`
	Image              StringList `json:"image"`
	ImagePathList      StringList `json:"imagePathList"`
	Imge               StringList `json:"imge"` // legacy misspelling still served by some pages
	Category1          string     `json:"category1"`
}

// Identifier prefers productId over id.
func (p UpstreamProduct) Identifier() string {
	if p.ProductID != "" {
		return string(p.ProductID)
	}
	return string(p.ID)
}

// Images returns the first non-empty image list the record carries.
func (p UpstreamProduct) Images() []string {
	switch {
	case len(p.Image) > 0:
		return p.Image
	case len(p.ImagePathList) > 0:
		return p.ImagePathList
	default:
		return p.Imge
	}
}

// UpstreamListResponse is the body of GET {API_BASE_URL}/products.
type UpstreamListResponse struct {
	Message string            `json:"message,omitempty"`
	Data    []UpstreamProduct `json:"data,omitempty"`
}

// UpstreamDetail is the product record nested at data.data of the detail payload.
type UpstreamDetail struct {
	ProductID          FlexString       `json:"productId"`
	ID                 FlexString       `json:"id"`
	ProductTitle       string           `json:"productTitle"`
	ShortDesc          string           `json:"shortDesc"`
	Rating             Price            `json:"rating"`
	SalePrice          Price            `json:"salePrice"`
	OriginalPrice      Price            `json:"originalPrice"`
	DiscountPercentage string           `json:"discountPercentage"`
	ImagePathList      StringList       `json:"imagePathList"`
	PosterURL          string           `json:"posterUrl"`
	Keywords           StringList       `json:"keywords"`
	Categories         []UpstreamNamed  `json:"categories"`
	SellerInfo         *UpstreamSeller  `json:"sellerInfo"`
	Reviews            []UpstreamReview `json:"reviews"`
	ShowedProps        []UpstreamAttr   `json:"showedProps"`
}

type UpstreamNamed struct {
	Name string `json:"name"`
}

type UpstreamSeller struct {
	StoreName string `json:"storeName"`
}

type UpstreamReview struct {
	ID      FlexString `json:"id"`
	Author  string     `json:"author"`
	Rating  Price      `json:"rating"`
	Content string     `json:"content"`
	Images  StringList `json:"images"`
}

type UpstreamAttr struct {
	AttrName  string `json:"attrName"`
	AttrValue string `json:"attrValue"`
}

// UpstreamDetailResponse is the body of GET {API_BASE_URL}/products/details/:id.
type UpstreamDetailResponse struct {
	Data *struct {
		ProductID FlexString      `json:"productId"`
		Data      *UpstreamDetail `json:"data"`
	} `json:"data"`
}
