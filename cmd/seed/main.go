// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"fmt"
	"os"

	"printdesk/internal/core/apperror"
	"printdesk/internal/core/types"
	"printdesk/internal/domain/auth"
	"printdesk/internal/domain/catalogs/filament"
	"printdesk/internal/domain/catalogs/platform"
	"printdesk/internal/domain/catalogs/store"
	"printdesk/internal/infrastructure/storage/postgres"
	"printdesk/internal/infrastructure/storage/postgres/auth_repo"
	"printdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"printdesk/pkg/logger"
)

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)

	storeService := store.NewService(catalog_repo.NewStoreRepo(txManager), txManager, log)
	platformService := platform.NewService(catalog_repo.NewPlatformRepo(txManager), txManager, log)
	filamentService := filament.NewService(catalog_repo.NewFilamentRepo(txManager), txManager, log)

	jwtService := auth.NewJWTService(auth.DefaultJWTConfig(os.Getenv("JWT_SECRET")))
	authService := auth.NewService(
		auth_repo.NewUserRepo(txManager),
		auth_repo.NewTokenRepo(txManager),
		storeService,
		txManager,
		jwtService,
		auth.DefaultServiceConfig(),
	)

	if err := seedPlatforms(ctx, platformService, log); err != nil {
		log.Fatalw("failed to seed platforms", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoStore(ctx, authService, filamentService, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

// seedPlatforms creates the default marketplace catalog. Existing platforms
// are left untouched.
func seedPlatforms(ctx context.Context, svc *platform.Service, log *logger.Logger) error {
	defaults := []struct {
		name       string
		commission float64
		fixedFee   float64
	}{
		{"Etsy", 9.5, 0.25},
		{"eBay", 13.0, 0.35},
		{"Amazon Handmade", 15.0, 0},
		{"Direct", 0, 0},
	}

	existing, err := svc.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list platforms: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, p := range existing {
		known[p.Name] = true
	}

	for _, d := range defaults {
		if known[d.name] {
			continue
		}
		p := platform.New(d.name, types.NewMoney(d.commission), types.NewMoney(d.fixedFee))
		if err := svc.Create(ctx, p); err != nil {
			return fmt.Errorf("create platform %q: %w", d.name, err)
		}
		log.Infow("platform seeded", "name", d.name, "id", p.ID)
	}

	return nil
}

// seedDemoStore registers a demo user with a store and a few spools.
func seedDemoStore(ctx context.Context, authSvc *auth.Service, filamentSvc *filament.Service, log *logger.Logger) error {
	email := getEnvDefault("DEMO_EMAIL", "demo@printdesk.io")
	password := getEnvDefault("DEMO_PASSWORD", "Demo1234!")

	user, err := authSvc.Register(ctx, auth.RegisterRequest{
		Email:     email,
		Password:  password,
		Name:      "Demo Seller",
		StoreName: "Demo Print Shop",
	})
	if err != nil {
		if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConflict {
			log.Infow("demo user already exists", "email", email)
			return nil
		}
		return fmt.Errorf("register demo user: %w", err)
	}
	log.Infow("demo user created", "email", email, "store_id", user.StoreID)

	storeID := user.StoreID

	spools := []struct {
		name     string
		material string
		color    string
		grams    float64
		value    float64
	}{
		{"PLA Galaxy Black", "PLA", "black", 1000, 24.90},
		{"PETG Clear", "PETG", "transparent", 1000, 27.50},
		{"TPU Flex Red", "TPU", "red", 500, 19.90},
	}
	for _, sp := range spools {
		f, err := filamentSvc.Register(ctx, storeID, sp.name, sp.material, sp.color,
			types.NewGramsFromFloat64(sp.grams), types.NewMoney(sp.value))
		if err != nil {
			return fmt.Errorf("register filament %q: %w", sp.name, err)
		}
		log.Infow("filament seeded", "name", sp.name, "id", f.ID)
	}

	return nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
