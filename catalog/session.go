package catalog

import (
	"context"
	"sync"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"go.uber.org/zap"
)

// Session bundles a visitor's shop state, search box and loader.
type Session struct {
	ID     string
	Shop   *Shop
	Search *SearchBox

	loader *Loader

	mu         sync.Mutex
	loaded     bool
	loadedTerm string
}

func NewSession(id string, src Source, pageSize int, log *zap.Logger) *Session {
	shop := NewShop(pageSize)
	return &Session{
		ID:     id,
		Shop:   shop,
		Search: &SearchBox{},
		loader: NewLoader(src, shop, log),
	}
}

// Sync applies the URL search term: the search box is overwritten, and the
// product list is fetched on first use, when the term differs from the last
// one fetched, or when the last load for it failed.
func (s *Session) Sync(ctx context.Context, term string) {
	s.Search.SyncFromURL(term)

	s.mu.Lock()
	if s.loaded && s.loadedTerm == term && !s.Shop.Failed() {
		s.mu.Unlock()
		return
	}
	s.loaded = true
	s.loadedTerm = term
	s.mu.Unlock()

	s.loader.Load(ctx, term)
}

// View snapshots the shop with the current search box text.
func (s *Session) View() models.ShopView {
	view := s.Shop.View()
	view.SearchTerm = s.Search.Text()
	return view
}

// Close discards the session; pending loads no longer commit.
func (s *Session) Close() {
	s.loader.Close()
}
