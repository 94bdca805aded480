package product_controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/gin-gonic/gin"
)

const (
	msgListFailed      = "Failed to fetch products."
	msgListUnavailable = "Unable to fetch products."

	msgDetailFailed      = "Failed to fetch product details."
	msgDetailUnavailable = "Unable to fetch product details."
	msgMissingID         = "Product id is required."
)

var errInvalidUpstreamJSON = errors.New("upstream returned invalid JSON")

// GetProducts godoc
// @Summary Proxy the upstream product listing
// @Description Forwards to {API_BASE_URL}/products and relays the upstream JSON body unchanged.
// @Tags Storefront - Proxy
// @Produce json
// @Param query query string false "Search term"
// @Param q query string false "Search term (legacy name)"
// @Param page query string false "Upstream page" default(1)
// @Success 200 {object} models.UpstreamListResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/products [get]
func GetProducts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	body, err := upstream.FetchListingRaw(ctx, searchTerm(c), c.DefaultQuery("page", "1"))
	relay(c, body, err, msgListFailed, msgListUnavailable)
}

// GetProductDetails godoc
// @Summary Proxy the upstream product detail
// @Description Forwards to {API_BASE_URL}/products/details/{id} and relays the upstream JSON body unchanged.
// @Tags Storefront - Proxy
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.UpstreamDetailResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/products/details/{id} [get]
func GetProductDetails(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		MissingProductID(c)
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	body, err := upstream.FetchDetailRaw(ctx, id)
	relay(c, body, err, msgDetailFailed, msgDetailUnavailable)
}

// MissingProductID answers /products/details without an id.
func MissingProductID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, models.MessageResponse{Message: msgMissingID})
}

func relay(c *gin.Context, body []byte, err error, failedMsg, unavailableMsg string) {
	if err == nil && !json.Valid(body) {
		err = errInvalidUpstreamJSON
	}

	if err != nil {
		if code := upstreamStatus(err); code != 0 {
			c.JSON(relayStatus(code), models.MessageResponse{Message: failedMsg})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.MessageResponse{Message: errorText(err, unavailableMsg)})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
