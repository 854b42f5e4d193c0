// Package main is the entry point for the printdesk API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printdesk/internal/domain"
	"printdesk/internal/domain/analytics"
	"printdesk/internal/domain/auth"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/product"
	"printdesk/internal/domain/catalogs/stock"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/domain/sales"
	v1 "printdesk/internal/infrastructure/http/v1"
	"printdesk/internal/infrastructure/storage/postgres"
	"printdesk/internal/infrastructure/storage/postgres/auth_repo"
	"printdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"printdesk/internal/infrastructure/storage/postgres/sales_repo"
	"printdesk/pkg/logger"
)

func main() {
	// Initialize logger
	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting printdesk server")

	// --- Database ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}

	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalw("failed to ping database", "error", err)
	}
	log.Info("database connection established")

	txManager := postgres.NewTxManager(pool)

	// --- Audit ---
	auditService, err := postgres.NewAuditService(txManager)
	if err != nil {
		log.Fatalw("failed to initialize audit service", "error", err)
	}

	// --- Repositories ---
	storeRepo := catalog_repo.NewStoreRepo(txManager)
	platformRepo := catalog_repo.NewPlatformRepo(txManager)
	filamentRepo := catalog_repo.NewFilamentRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	stockRepo := catalog_repo.NewStockRepo(txManager)
	saleRepo := sales_repo.NewSaleRepo(txManager)
	userRepo := auth_repo.NewUserRepo(txManager)
	tokenRepo := auth_repo.NewTokenRepo(txManager)

	// --- Domain services ---
	storeService := store.NewService(storeRepo, txManager, log)
	platformService := platform.NewService(platformRepo, txManager, log)
	filamentService := filament.NewService(filamentRepo, txManager, log)
	productService := product.NewService(productRepo, filamentService, platformService, storeService, txManager, log)
	stockService := stock.NewService(stockRepo, txManager, log)
	salesService := sales.NewService(saleRepo, productService, platformService, storeService, filamentService, txManager, log)
	analyticsService := analytics.NewService(salesService, productService, filamentService, platformService, stockService, log)

	registerAuditHooks(auditService, filamentService, productService, platformService, salesService)

	// --- Auth ---
	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")
	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(jwtSecret))
	authService := auth.NewService(userRepo, tokenRepo, storeService, txManager, jwtService, auth.DefaultServiceConfig())

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:             pool,
		Logger:           log,
		JWTValidator:     jwtService,
		AuthService:      authService,
		StoreService:     storeService,
		PlatformService:  platformService,
		FilamentService:  filamentService,
		ProductService:   productService,
		StockService:     stockService,
		SalesService:     salesService,
		AnalyticsService: analyticsService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}

// registerAuditHooks captures catalog changes into the audit trail.
func registerAuditHooks(
	audit *postgres.AuditService,
	filaments *filament.Service,
	products *product.Service,
	platforms *platform.Service,
	saleRecords *sales.Service,
) {
	filaments.Hooks().OnAfterCreate(func(ctx context.Context, f *filament.Filament) error {
		return audit.LogChange(ctx, "filament", f.ID, postgres.AuditActionCreate, postgres.StructToMap(f))
	})
	filaments.Hooks().OnAfterUpdate(func(ctx context.Context, f *filament.Filament) error {
		return audit.LogChange(ctx, "filament", f.ID, postgres.AuditActionUpdate, postgres.StructToMap(f))
	})
	filaments.Hooks().On(domain.AfterDelete, func(ctx context.Context, f *filament.Filament) error {
		return audit.LogChange(ctx, "filament", f.ID, postgres.AuditActionDelete, nil)
	})

	products.Hooks().OnAfterCreate(func(ctx context.Context, p *product.Product) error {
		return audit.LogChange(ctx, "product", p.ID, postgres.AuditActionCreate, postgres.StructToMap(p))
	})
	products.Hooks().OnAfterUpdate(func(ctx context.Context, p *product.Product) error {
		return audit.LogChange(ctx, "product", p.ID, postgres.AuditActionUpdate, postgres.StructToMap(p))
	})
	products.Hooks().On(domain.AfterDelete, func(ctx context.Context, p *product.Product) error {
		return audit.LogChange(ctx, "product", p.ID, postgres.AuditActionDelete, nil)
	})

	platforms.Hooks().OnAfterUpdate(func(ctx context.Context, p *platform.Platform) error {
		return audit.LogChange(ctx, "platform", p.ID, postgres.AuditActionUpdate, postgres.StructToMap(p))
	})

	saleRecords.Hooks().OnAfterCreate(func(ctx context.Context, s *sales.Sale) error {
		return audit.LogChange(ctx, "sale", s.ID, postgres.AuditActionCreate, postgres.StructToMap(s))
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Printf("required environment variable %s not set\n", key)
		os.Exit(1)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
