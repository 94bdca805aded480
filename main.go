// @title Sepia Storefront
// @version 1.0
// @description Sepia storefront: shop pages backed by the upstream commerce API, plus the JSON product proxy and catalog endpoints.
// @host localhost:8080
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Modeva-Ecommerce/sepia-storefront/cache"
	"github.com/Modeva-Ecommerce/sepia-storefront/catalog"
	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	_ "github.com/Modeva-Ecommerce/sepia-storefront/docs"
	"github.com/Modeva-Ecommerce/sepia-storefront/routes"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	logger, err := config.InitLogger(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	config.UpstreamTimeout = cfg.Upstream.Timeout

	// Redis connection (optional)
	redisClient, err := config.ConnectRedis(cfg)
	if err != nil {
		logger.Fatal("❌ Redis unavailable", zap.Error(err))
	}
	defer config.CloseRedis()

	upstream := services.NewUpstreamClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger.Named("upstream"))
	storefront := services.NewStorefrontService(upstream, cache.NewListingCache(redisClient, cache.ListingTTL), logger.Named("storefront"))

	sessions := cache.NewSessionStore(cfg.Catalog.SessionTTL, cfg.Catalog.MaxSessions, func(id string) *catalog.Session {
		return catalog.NewSession(id, storefront, cfg.Catalog.PageSize, logger.Named("shop"))
	})
	defer sessions.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router, err := routes.NewRouter(cfg, routes.Deps{
		Upstream:   upstream,
		Storefront: storefront,
		Sessions:   sessions,
		Redis:      redisClient,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("❌ Failed to build router", zap.Error(err))
	}
	logger.Info("✅ Routes registered")

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 Server is running", zap.String("addr", "http://localhost:"+cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("❌ Server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("🛑 Shutting down")

	shutdownCtx, cancel := config.WithCustomTimeout(10 * time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
