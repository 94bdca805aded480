package routes

import (
	"net/http"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/cache"
	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/controllers/ecommerce/page_controller"
	"github.com/Modeva-Ecommerce/sepia-storefront/controllers/ecommerce/product_controller"
	"github.com/Modeva-Ecommerce/sepia-storefront/controllers/ecommerce/shop_controller"
	"github.com/Modeva-Ecommerce/sepia-storefront/middleware"
	"github.com/Modeva-Ecommerce/sepia-storefront/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/Modeva-Ecommerce/sepia-storefront/views"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Deps are the long-lived collaborators the handlers are wired to.
type Deps struct {
	Upstream   product_controller.Upstream
	Storefront *services.StorefrontService
	Sessions   *cache.SessionStore
	Redis      *redis.Client
	Logger     *zap.Logger
}

// NewRouter builds the storefront engine: pages at the root, JSON under /api.
func NewRouter(cfg *config.Config, deps Deps) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	product_controller.Init(deps.Upstream, deps.Storefront, cfg.Catalog.PageSize)
	shop_controller.Init(deps.Storefront)
	page_controller.Init(deps.Storefront)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(deps.Logger))
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/products", http.FS(views.Static()))

	router.GET("/healthz", page_controller.Healthz)

	// ✅ The rate limiter covers every route that reaches the upstream
	limiter := middleware.RateLimiter(deps.Redis, cfg.RateLimit.Max, cfg.RateLimit.Window)
	session := middleware.ShopSession(deps.Sessions, cfg.Catalog.SessionTTL, cfg.IsProduction())
	ecommerce_routes.SetupStorefrontRoutes(router, limiter, session)

	// CORS only applies to the JSON API
	api := router.Group("/api")
	api.Use(cors.New(corsConfig(cfg.App.AllowedOrigins)))
	api.Use(limiter)
	ecommerce_routes.SetupAPIRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	return corsCfg
}
