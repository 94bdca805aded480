package product_controller

import (
	"errors"
	"net/http"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetCatalog godoc
// @Summary Filter and paginate the catalog
// @Description Fetches the listing for the search term, drops malformed records, derives category and price facets, then applies the category, discount and price filters and returns one page.
// @Tags Storefront - Catalog
// @Produce json
// @Param query query string false "Search term"
// @Param category query []string false "Category labels (repeatable, OR-ed)"
// @Param discount query []string false "Discount tokens (repeatable)" Enums(sale, full)
// @Param maxPrice query number false "Inclusive price ceiling"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(6)
// @Success 200 {object} models.ApiResponse{data=models.CatalogPage}
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/catalog [get]
func GetCatalog(c *gin.Context) {
	page, limit := parsePagination(c)

	maxPrice, err := parseMaxPrice(c.Query("maxPrice"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res, err := catalogService.Catalog(ctx, services.CatalogQuery{
		Query:      searchTerm(c),
		Categories: c.QueryArray("category"),
		Discounts:  c.QueryArray("discount"),
		MaxPrice:   maxPrice,
		Page:       page,
		Limit:      limit,
	})
	if errors.Is(err, catalog.ErrUnknownDiscount) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "discount must be sale or full"))
		return
	}
	if err != nil {
		config.Logger.Warn("⚠️ catalog fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, catalog.FetchErrorMessage(err)))
		return
	}

	data := models.CatalogPage{
		Products: res.Products,
		Facets:   res.Facets,
		MaxPrice: maxPrice,
	}
	meta := &models.Pagination{
		Page:       res.Page,
		Limit:      res.Limit,
		Total:      res.Total,
		TotalPages: res.TotalPages,
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Catalog fetched successfully", data, meta))
}
