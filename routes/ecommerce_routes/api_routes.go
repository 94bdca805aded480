package ecommerce_routes

import (
	"github.com/Modeva-Ecommerce/sepia-storefront/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the JSON endpoints under router (mounted at /api).
func SetupAPIRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.GET("", product_controller.GetProducts)                   // Upstream listing proxy
		products.GET("/details", product_controller.MissingProductID)      // 400
		products.GET("/details/:id", product_controller.GetProductDetails) // Upstream detail proxy
	}

	router.GET("/catalog", product_controller.GetCatalog) // Filter + paginate in one call
}
