package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/cache"
	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"go.uber.org/zap"
)

// HomePageSpan is the range of upstream pages the home page samples from.
const HomePageSpan = 100

var (
	ErrMissingProductID  = errors.New("Product id is missing.")
	ErrDetailFailed      = errors.New("Failed to load product details.")
	ErrDetailUnavailable = errors.New("Product data is unavailable.")
)

// Upstream is the part of UpstreamClient the storefront pages need.
type Upstream interface {
	FetchListingRaw(ctx context.Context, query, page string) ([]byte, error)
	FetchDetailRaw(ctx context.Context, id string) ([]byte, error)
}

type StorefrontService struct {
	upstream Upstream
	listings cache.ListingCache
	log      *zap.Logger
	pickPage func() int
}

func NewStorefrontService(upstream Upstream, listings cache.ListingCache, log *zap.Logger) *StorefrontService {
	if log == nil {
		log = zap.NewNop()
	}
	if listings == nil {
		listings = cache.NewMemoryListingCache(cache.ListingTTL)
	}
	return &StorefrontService{
		upstream: upstream,
		listings: listings,
		log:      log,
		pickPage: func() int { return rand.IntN(HomePageSpan) + 1 },
	}
}

// HomeContent feeds the home page sections.
type HomeContent struct {
	Page       int                   `json:"page"`
	Products   []models.ProductCard  `json:"products"`
	Categories []models.HomeCategory `json:"categories"`
}

// Home samples one random upstream page. Failures leave both sections empty.
func (s *StorefrontService) Home(ctx context.Context) HomeContent {
	content := HomeContent{
		Page:       s.pickPage(),
		Products:   []models.ProductCard{},
		Categories: []models.HomeCategory{},
	}

	body, err := s.listing(ctx, "", strconv.Itoa(content.Page))
	if err != nil {
		s.log.Warn("⚠️ home listing unavailable", zap.Int("page", content.Page), zap.Error(err))
		return content
	}

	var payload models.UpstreamListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		s.log.Warn("⚠️ home listing malformed", zap.Int("page", content.Page), zap.Error(err))
		return content
	}

	content.Products = MapHomeProducts(payload.Data)
	content.Categories = MapHomeCategories(CategorySource(payload.Data))
	return content
}

// ProductDetail loads one product. Errors carry the message shown on the page.
func (s *StorefrontService) ProductDetail(ctx context.Context, id string) (*models.ProductDetail, error) {
	if id == "" {
		return nil, ErrMissingProductID
	}

	body, err := s.upstream.FetchDetailRaw(ctx, id)
	if err != nil {
		s.log.Warn("⚠️ product detail fetch failed", zap.String("product_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrDetailFailed, err)
	}

	var payload models.UpstreamDetailResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDetailFailed, err)
	}
	if payload.Data == nil || payload.Data.Data == nil {
		return nil, ErrDetailUnavailable
	}

	detail := MapProductDetail(payload.Data.Data)
	return &detail, nil
}

// DetailErrorMessage is the visitor-facing text for a ProductDetail error.
func DetailErrorMessage(err error) string {
	for _, known := range []error{ErrMissingProductID, ErrDetailUnavailable, ErrDetailFailed} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "Something went wrong while loading the product."
}

// Related searches for products sharing a keyword with name. Failures are
// logged and yield an empty strip.
func (s *StorefrontService) Related(ctx context.Context, name string) []models.RelatedProduct {
	keyword := RelatedKeyword(name)
	if keyword == "" {
		return []models.RelatedProduct{}
	}

	body, err := s.listing(ctx, keyword, "1")
	if err != nil {
		s.log.Warn("⚠️ related products unavailable", zap.String("keyword", keyword), zap.Error(err))
		return []models.RelatedProduct{}
	}
	return ExtractRelated(body)
}

// CatalogQuery is one stateless run of the catalog pipeline.
type CatalogQuery struct {
	Query      string
	Categories []string
	Discounts  []string
	MaxPrice   *float64
	Page       int
	Limit      int
}

type CatalogResult struct {
	Products   []models.Product     `json:"products"`
	Facets     models.CatalogFacets `json:"facets"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	Total      int                  `json:"total"`
	TotalPages int                  `json:"total_pages"`
}

// Catalog fetches, normalizes, filters and paginates in one call.
func (s *StorefrontService) Catalog(ctx context.Context, q CatalogQuery) (*CatalogResult, error) {
	filter, err := catalog.NewFilter(q.Categories, q.Discounts, q.MaxPrice)
	if err != nil {
		return nil, err
	}
	if q.Limit < 1 {
		q.Limit = catalog.DefaultPageSize
	}

	records, err := s.SearchProducts(ctx, q.Query)
	if err != nil {
		return nil, err
	}

	products := catalog.Normalize(records)
	filtered := filter.Apply(products)
	totalPages := catalog.TotalPages(len(filtered), q.Limit)
	page := catalog.ClampPage(q.Page, totalPages)

	return &CatalogResult{
		Products:   catalog.Paginate(filtered, page, q.Limit),
		Facets:     catalog.Facets(products),
		Page:       page,
		Limit:      q.Limit,
		Total:      len(filtered),
		TotalPages: totalPages,
	}, nil
}

// SearchProducts returns the first listing page for the trimmed term. Shop
// sessions load through it, so they share the listing cache.
func (s *StorefrontService) SearchProducts(ctx context.Context, term string) ([]models.UpstreamProduct, error) {
	body, err := s.listing(ctx, strings.TrimSpace(term), "1")
	if err != nil {
		return nil, err
	}
	var payload models.UpstreamListResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode product listing: %w", err)
	}
	return payload.Data, nil
}

// listing returns a raw listing body, served from the cache while fresh.
func (s *StorefrontService) listing(ctx context.Context, query, page string) ([]byte, error) {
	key := cache.ListingKey(query, page)
	if body, ok := s.listings.Get(ctx, key); ok {
		return body, nil
	}

	body, err := s.upstream.FetchListingRaw(ctx, query, page)
	if err != nil {
		return nil, err
	}
	s.listings.Set(ctx, key, body)
	return body, nil
}
