package catalog

import (
	"net/url"
	"strings"
	"sync"
)

const (
	ShopPath = "/shop"

	// QueryParam carries the search term in shop URLs. LegacyQueryParam is
	// still accepted on the way in.
	QueryParam       = "query"
	LegacyQueryParam = "q"
)

// SearchBox is the visitor's search input. The URL is the source of truth:
// SyncFromURL overwrites the text, Submit only produces the URL to navigate to.
type SearchBox struct {
	mu   sync.Mutex
	text string
}

func (b *SearchBox) SyncFromURL(term string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = term
}

func (b *SearchBox) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
}

func (b *SearchBox) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Submit returns the shop URL for the current text.
func (b *SearchBox) Submit() string {
	return SearchURL(b.Text())
}

// SearchURL is /shop?query=<trimmed term>, or bare /shop for a blank term.
func SearchURL(term string) string {
	term = strings.TrimSpace(term)
	if term == "" {
		return ShopPath
	}
	return ShopPath + "?" + url.Values{QueryParam: {term}}.Encode()
}

// TermFromQuery reads the search term from query values, preferring
// QueryParam over LegacyQueryParam.
func TermFromQuery(values url.Values) string {
	if values.Has(QueryParam) {
		return values.Get(QueryParam)
	}
	return values.Get(LegacyQueryParam)
}
