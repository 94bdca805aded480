package page_controller

import (
	"context"
	"net/http"

	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/gin-gonic/gin"
)

// HomeService samples the catalog for the home page.
type HomeService interface {
	Home(ctx context.Context) services.HomeContent
}

var homeService HomeService

func Init(svc HomeService) {
	homeService = svc
}

// Home godoc
// @Summary Home page
// @Description Hero, category tiles and product cards sampled from a random upstream page.
// @Tags Storefront - Pages
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func Home(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	content := homeService.Home(ctx)
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":      "",
		"Products":   content.Products,
		"Categories": content.Categories,
	})
}

// Static renders a page with no dynamic content.
func Static(template, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, template, gin.H{"Title": title})
	}
}

// Healthz godoc
// @Summary Liveness check
// @Tags System
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /healthz [get]
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", nil))
}
