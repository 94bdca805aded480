package product_controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpstream struct {
	body     []byte
	err      error
	gotQuery string
	gotPage  string
	gotID    string
}

func (s *stubUpstream) FetchListingRaw(_ context.Context, query, page string) ([]byte, error) {
	s.gotQuery, s.gotPage = query, page
	return s.body, s.err
}

func (s *stubUpstream) FetchDetailRaw(_ context.Context, id string) ([]byte, error) {
	s.gotID = id
	return s.body, s.err
}

type stubCatalog struct {
	res *services.CatalogResult
	err error
	got services.CatalogQuery
}

func (s *stubCatalog) Catalog(_ context.Context, q services.CatalogQuery) (*services.CatalogResult, error) {
	s.got = q
	return s.res, s.err
}

func newRouter(up Upstream, svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(up, svc, 6)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/products", GetProducts)
	api.GET("/products/details", MissingProductID)
	api.GET("/products/details/:id", GetProductDetails)
	api.GET("/catalog", GetCatalog)
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func TestGetProducts_RelaysBody(t *testing.T) {
	up := &stubUpstream{body: []byte(`{"message":"ok","data":[{"productId":"1"}]}`)}
	r := newRouter(up, &stubCatalog{})

	w := get(r, "/api/products?query=rose&page=2")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	assert.JSONEq(t, `{"message":"ok","data":[{"productId":"1"}]}`, w.Body.String())
	assert.Equal(t, "rose", up.gotQuery)
	assert.Equal(t, "2", up.gotPage)
}

func TestGetProducts_DefaultsAndLegacyParam(t *testing.T) {
	up := &stubUpstream{body: []byte(`{}`)}
	r := newRouter(up, &stubCatalog{})

	get(r, "/api/products?q=oud")
	assert.Equal(t, "oud", up.gotQuery)
	assert.Equal(t, "1", up.gotPage)

	get(r, "/api/products?query=musk&q=oud")
	assert.Equal(t, "musk", up.gotQuery)
}

func TestGetProducts_UpstreamStatus(t *testing.T) {
	up := &stubUpstream{err: &services.StatusError{Code: http.StatusNotFound}}
	r := newRouter(up, &stubCatalog{})

	w := get(r, "/api/products")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Failed to fetch products.", message(t, w))
}

func TestGetProducts_TransportFailure(t *testing.T) {
	up := &stubUpstream{err: &services.TransportError{Err: errors.New("dial tcp 10.0.0.1:443: connection refused")}}
	r := newRouter(up, &stubCatalog{})

	w := get(r, "/api/products")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "upstream unavailable", message(t, w))
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
}

func TestGetProducts_InvalidJSON(t *testing.T) {
	r := newRouter(&stubUpstream{body: []byte(`<html>oops`)}, &stubCatalog{})

	w := get(r, "/api/products")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, errInvalidUpstreamJSON.Error(), message(t, w))
}

func TestGetProductDetails(t *testing.T) {
	up := &stubUpstream{body: []byte(`{"data":{"productId":"9"}}`)}
	r := newRouter(up, &stubCatalog{})

	w := get(r, "/api/products/details/9")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "9", up.gotID)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	up.err = &services.StatusError{Code: http.StatusServiceUnavailable}
	w = get(r, "/api/products/details/9")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Failed to fetch product details.", message(t, w))
}

func TestGetProductDetails_MissingID(t *testing.T) {
	r := newRouter(&stubUpstream{}, &stubCatalog{})

	for _, target := range []string{"/api/products/details", "/api/products/details/%20"} {
		w := get(r, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "Product id is required.", message(t, w), target)
	}
}

func TestGetCatalog(t *testing.T) {
	sale := 12.0
	svc := &stubCatalog{res: &services.CatalogResult{
		Products:   []models.Product{{ID: "1", Title: "Soap", SalePrice: &sale}},
		Facets:     models.CatalogFacets{PriceRange: models.PriceBounds{Min: 12, Max: 12}},
		Page:       2,
		Limit:      3,
		Total:      4,
		TotalPages: 2,
	}}
	r := newRouter(&stubUpstream{}, svc)

	w := get(r, "/api/catalog?query=soap&category=Bath&category=Body&discount=sale&maxPrice=20&page=2&limit=3")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "soap", svc.got.Query)
	assert.Equal(t, []string{"Bath", "Body"}, svc.got.Categories)
	assert.Equal(t, []string{"sale"}, svc.got.Discounts)
	require.NotNil(t, svc.got.MaxPrice)
	assert.Equal(t, 20.0, *svc.got.MaxPrice)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 3, svc.got.Limit)

	var body struct {
		Data models.CatalogPage `json:"data"`
		Meta models.Pagination  `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, models.Pagination{Page: 2, Limit: 3, Total: 4, TotalPages: 2}, body.Meta)
	require.Len(t, body.Data.Products, 1)
	assert.Equal(t, "Soap", body.Data.Products[0].Title)
}

func TestGetCatalog_DefaultsPageSize(t *testing.T) {
	svc := &stubCatalog{res: &services.CatalogResult{}}
	r := newRouter(&stubUpstream{}, svc)

	get(r, "/api/catalog?limit=1000&page=-3")
	assert.Equal(t, 6, svc.got.Limit)
	assert.Equal(t, 1, svc.got.Page)
}

func TestGetCatalog_BadInput(t *testing.T) {
	svc := &stubCatalog{err: catalog.ErrUnknownDiscount}
	r := newRouter(&stubUpstream{}, svc)

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/catalog?maxPrice=cheap").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/catalog?maxPrice=-1").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/catalog?discount=clearance").Code)
}

func TestGetCatalog_UpstreamFailure(t *testing.T) {
	svc := &stubCatalog{err: &services.StatusError{Code: http.StatusInternalServerError}}
	r := newRouter(&stubUpstream{}, svc)

	w := get(r, "/api/catalog")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Error)
	assert.Equal(t, "Failed to fetch products.", body.Message)
}
