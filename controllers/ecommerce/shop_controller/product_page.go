package shop_controller

import (
	"errors"
	"net/http"

	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/gin-gonic/gin"
)

// ShowProduct godoc
// @Summary Product detail page
// @Description Renders one product with its gallery, tabs and related products.
// @Tags Storefront - Pages
// @Produce html
// @Param id path string true "Product ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {string} string "HTML page with the error state"
// @Failure 502 {string} string "HTML page with the error state"
// @Router /shop/{id} [get]
func ShowProduct(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	detail, err := productService.ProductDetail(ctx, c.Param("id"))
	if err != nil {
		c.HTML(productErrorStatus(err), "product.html", gin.H{
			"Title": "Product",
			"Error": services.DetailErrorMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "product.html", gin.H{
		"Title":   detail.Name,
		"Product": detail,
		"Related": productService.Related(ctx, detail.Name),
	})
}

func productErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingProductID):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDetailUnavailable):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
