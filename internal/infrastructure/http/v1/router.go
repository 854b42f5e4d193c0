// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"printdesk/internal/domain/analytics"
	"printdesk/internal/domain/auth"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/catalogs/stock"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/domain/sales"
	"printdesk/internal/infrastructure/http/v1/handlers"
	"printdesk/internal/infrastructure/http/v1/middleware"
	"printdesk/internal/infrastructure/storage/postgres"
	"printdesk/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	AuthService      *auth.Service
	StoreService     *store.Service
	PlatformService  *platform.Service
	FilamentService  *filament.Service
	ProductService   *product.Service
	StockService     *stock.Service
	SalesService     *sales.Service
	AnalyticsService *analytics.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	// API v1
	v1 := router.Group("/api/v1")
	{
		authHandler := handlers.NewAuthHandler(base, cfg.AuthService)

		public := v1.Group("/auth")
		protected := v1.Group("/auth")
		protected.Use(middleware.Auth(cfg.JWTValidator))
		authHandler.RegisterRoutes(public, protected)

		// Store-scoped endpoints: authenticated users acting on their store.
		scoped := v1.Group("")
		scoped.Use(middleware.Auth(cfg.JWTValidator))
		scoped.Use(middleware.RequireStore())

		handlers.RegisterPlatformRoutes(scoped.Group("/platforms"), handlers.NewPlatformHandler(base, cfg.PlatformService))
		handlers.NewStoreHandler(base, cfg.StoreService).RegisterRoutes(scoped.Group("/store"))
		handlers.NewFilamentHandler(base, cfg.FilamentService, cfg.AnalyticsService).RegisterRoutes(scoped.Group("/filaments"))
		handlers.NewProductHandler(base, cfg.ProductService).RegisterRoutes(scoped.Group("/products"))
		handlers.NewPricingHandler(base, cfg.ProductService).RegisterRoutes(scoped.Group("/pricing"))
		handlers.NewStockHandler(base, cfg.StockService).RegisterRoutes(scoped.Group("/stock"))
		handlers.NewSaleHandler(base, cfg.SalesService).RegisterRoutes(scoped.Group("/sales"))
		handlers.NewDashboardHandler(base, cfg.AnalyticsService).RegisterRoutes(scoped.Group("/dashboard"))
	}

	return router
}
