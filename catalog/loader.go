package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"go.uber.org/zap"
)

// Messages committed to the shop when a load fails.
const (
	MsgFetchFailed  = "Failed to fetch products."
	MsgUnableToLoad = "Unable to load products."
)

// Source fetches one page of upstream records for a search term. An empty
// term means an unfiltered listing.
type Source interface {
	SearchProducts(ctx context.Context, term string) ([]models.UpstreamProduct, error)
}

// statusCoder is implemented by errors carrying an upstream HTTP status.
type statusCoder interface {
	StatusCode() int
}

// Loader fetches products into a Shop. Only the most recently started load
// may commit; earlier loads are cancelled and their results discarded.
type Loader struct {
	src  Source
	shop *Shop
	log  *zap.Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

func NewLoader(src Source, shop *Shop, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{src: src, shop: shop, log: log}
}

// Load fetches products for term and commits them to the shop unless a newer
// load started or the loader was closed meanwhile. It reports whether the
// result was committed.
func (l *Loader) Load(ctx context.Context, term string) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.generation++
	gen := l.generation
	if l.cancel != nil {
		l.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.shop.beginLoad()
	l.mu.Unlock()
	defer cancel()

	term = strings.TrimSpace(term)
	records, err := l.src.SearchProducts(reqCtx, term)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.generation {
		l.log.Debug("dropping stale catalog load",
			zap.Uint64("generation", gen),
			zap.Uint64("latest", l.generation),
			zap.String("term", term))
		return false
	}
	l.cancel = nil

	if err != nil {
		l.log.Warn("catalog load failed", zap.String("term", term), zap.Error(err))
		l.shop.fail(FetchErrorMessage(err))
		return true
	}

	products := Normalize(records)
	l.log.Debug("catalog loaded",
		zap.String("term", term),
		zap.Int("records", len(records)),
		zap.Int("products", len(products)))
	l.shop.SetProducts(products)
	return true
}

// Close stops any in-flight load from committing.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}

// FetchErrorMessage turns a load error into the message shown to visitors.
func FetchErrorMessage(err error) string {
	var sc statusCoder
	if errors.As(err, &sc) {
		return MsgFetchFailed
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgUnableToLoad
}
