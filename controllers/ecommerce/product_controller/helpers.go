package product_controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/gin-gonic/gin"
)

// Upstream is the raw commerce API the proxy relays.
type Upstream interface {
	FetchListingRaw(ctx context.Context, query, page string) ([]byte, error)
	FetchDetailRaw(ctx context.Context, id string) ([]byte, error)
}

// CatalogService runs the stateless catalog pipeline.
type CatalogService interface {
	Catalog(ctx context.Context, q services.CatalogQuery) (*services.CatalogResult, error)
}

var (
	upstream        Upstream
	catalogService  CatalogService
	defaultPageSize = catalog.DefaultPageSize
)

// Init wires the handlers to the upstream client and the catalog service.
func Init(up Upstream, svc CatalogService, pageSize int) {
	upstream = up
	catalogService = svc
	if pageSize > 0 {
		defaultPageSize = pageSize
	}
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = defaultPageSize
	}

	return page, limit
}

// parseMaxPrice reads an optional non-negative price ceiling.
func parseMaxPrice(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := catalog.ParseCeiling(raw)
	if err != nil {
		return nil, errors.New("maxPrice must be a non-negative number")
	}
	return &v, nil
}

// searchTerm accepts both the shop's query parameter and the legacy q.
func searchTerm(c *gin.Context) string {
	return strings.TrimSpace(catalog.TermFromQuery(c.Request.URL.Query()))
}

// upstreamStatus is the status to relay for an upstream error, or 0 when
// the upstream never answered.
func upstreamStatus(err error) int {
	var statusErr *services.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode()
	}
	return 0
}

func errorText(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}

func relayStatus(code int) int {
	if code < 400 || code > 599 {
		return http.StatusBadGateway
	}
	return code
}
