package shop_controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/middleware"
	"github.com/Modeva-Ecommerce/sepia-storefront/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ShowShop godoc
// @Summary Shop page
// @Description Renders the visitor's catalog: search box, category, discount and price filters, and the current page of products. The query parameter (or legacy q) drives the search term.
// @Tags Storefront - Pages
// @Produce html
// @Param query query string false "Search term"
// @Success 200 {string} string "HTML page"
// @Router /shop [get]
func ShowShop(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	sess.Sync(ctx, catalog.TermFromQuery(c.Request.URL.Query()))

	c.HTML(http.StatusOK, "shop.html", gin.H{
		"Title": "Shop",
		"View":  sess.View(),
	})
}

// ToggleCategory godoc
// @Summary Toggle a category filter
// @Tags Storefront - Pages
// @Accept x-www-form-urlencoded
// @Param category formData string true "Category label"
// @Success 303
// @Router /shop/category [post]
func ToggleCategory(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	sess.Shop.ToggleCategory(c.PostForm("category"))
	backToShop(c, sess)
}

// ToggleDiscount godoc
// @Summary Toggle a discount filter
// @Tags Storefront - Pages
// @Accept x-www-form-urlencoded
// @Param discount formData string true "Discount token" Enums(sale, full)
// @Success 303
// @Failure 400 {object} models.ApiResponse
// @Router /shop/discount [post]
func ToggleDiscount(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	if err := sess.Shop.ToggleDiscount(c.PostForm("discount")); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "discount must be sale or full"))
		return
	}
	backToShop(c, sess)
}

// SetMaxPrice godoc
// @Summary Set the price ceiling
// @Tags Storefront - Pages
// @Accept x-www-form-urlencoded
// @Param max_price formData number true "Inclusive price ceiling"
// @Success 303
// @Failure 400 {object} models.ApiResponse
// @Router /shop/price [post]
func SetMaxPrice(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	ceiling, err := catalog.ParseCeiling(c.PostForm("max_price"))
	if err == nil {
		err = sess.Shop.SetMaxPrice(ceiling)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "max_price must be a non-negative number"))
		return
	}
	backToShop(c, sess)
}

// GoToPage godoc
// @Summary Go to a results page
// @Tags Storefront - Pages
// @Accept x-www-form-urlencoded
// @Param page formData int true "Page number"
// @Success 303
// @Failure 400 {object} models.ApiResponse
// @Router /shop/page [post]
func GoToPage(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	page, err := strconv.Atoi(strings.TrimSpace(c.PostForm("page")))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "page must be a number"))
		return
	}
	sess.Shop.GoToPage(page)
	backToShop(c, sess)
}

// SubmitSearch godoc
// @Summary Submit the search box
// @Description Redirects to /shop?query=<term>, or /shop when the term is blank.
// @Tags Storefront - Pages
// @Accept x-www-form-urlencoded
// @Param query formData string false "Search term"
// @Success 303
// @Router /shop/search [post]
func SubmitSearch(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	sess.Search.SetText(c.PostForm("query"))
	c.Redirect(http.StatusSeeOther, sess.Search.Submit())
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

func session(c *gin.Context) (*catalog.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(c)
	if !ok {
		config.Logger.Error("❌ shop session missing from context", zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return nil, false
	}
	return sess, true
}

// backToShop redirects to the shop URL for the term last synced from the URL.
func backToShop(c *gin.Context, sess *catalog.Session) {
	c.Redirect(http.StatusSeeOther, catalog.SearchURL(sess.Search.Text()))
}

// ProductService loads the product detail page content.
type ProductService interface {
	ProductDetail(ctx context.Context, id string) (*models.ProductDetail, error)
	Related(ctx context.Context, name string) []models.RelatedProduct
}

var productService ProductService

// Init wires the product detail page.
func Init(svc ProductService) {
	productService = svc
}
