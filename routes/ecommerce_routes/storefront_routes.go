package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/sepia-storefront/controllers/ecommerce/page_controller"
	"github.com/Modeva-Ecommerce/sepia-storefront/controllers/ecommerce/shop_controller"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the HTML pages. limiter guards the pages
// that reach the upstream; session attaches the visitor's shop state and is
// only needed by the catalog routes.
func SetupStorefrontRoutes(router gin.IRouter, limiter, session gin.HandlerFunc) {
	router.GET("/", limiter, page_controller.Home)
	router.GET("/about-us", page_controller.Static("about.html", "About us"))
	router.GET("/contact-us", page_controller.Static("contact.html", "Contact us"))
	router.GET("/cart", page_controller.Static("cart.html", "Cart"))
	router.GET("/register", page_controller.Static("register.html", "Register"))

	shop := router.Group("/shop", limiter)
	shop.GET("/:id", shop_controller.ShowProduct)

	catalog := shop.Group("", session)
	{
		catalog.GET("", shop_controller.ShowShop)

		// Filter actions (POST → 303 back to the shop URL)
		catalog.POST("/category", shop_controller.ToggleCategory)
		catalog.POST("/discount", shop_controller.ToggleDiscount)
		catalog.POST("/price", shop_controller.SetMaxPrice)
		catalog.POST("/page", shop_controller.GoToPage)
		catalog.POST("/search", shop_controller.SubmitSearch)
	}
}
