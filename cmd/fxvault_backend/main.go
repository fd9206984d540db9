package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/fxvault/fxvault_backend/internal/adapters/ratecache"
	"github.com/fxvault/fxvault_backend/internal/adapters/ratesapi"
	"github.com/fxvault/fxvault_backend/internal/core/services"
	"github.com/fxvault/fxvault_backend/internal/handlers"
	"github.com/fxvault/fxvault_backend/internal/middleware"
	"github.com/fxvault/fxvault_backend/internal/platform/currencycatalog"
	"github.com/fxvault/fxvault_backend/internal/platform/metrics"
	"github.com/fxvault/fxvault_backend/internal/repositories/database/pgsql"
	"github.com/fxvault/fxvault_backend/pkg/config"
	"github.com/fxvault/fxvault_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title FXVault Backend API
// @version 1.0
// @description Currency exchange transaction service with per-user currency preferences.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Per-IP rate limiter shared by the whole API group
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	limiterInstance := limiter.New(memory.NewStore(), rate)

	conversionMetrics := metrics.NewConversionMetrics()

	// Rate pipeline: provider client -> in-memory TTL cache
	providerOpts := []ratesapi.Option{
		ratesapi.WithTimeout(cfg.RateAPITimeout),
		ratesapi.WithMetrics(conversionMetrics),
	}
	if cfg.RateAPIInsecureSkipVerify {
		providerOpts = append(providerOpts, ratesapi.WithInsecureSkipVerify())
	}
	rateProvider := ratesapi.New(cfg.RateAPIBaseURL, cfg.RateAPIKey, providerOpts...)
	rateCache := ratecache.NewMemory(conversionMetrics)
	catalog := currencycatalog.New()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(
		repos,
		rateCache,
		rateProvider,
		catalog,
		cfg.BaseCurrency,
		cfg.RateCacheTTL,
		conversionMetrics,
	)

	handlers.RegisterRoutes(r, cfg, serviceContainer, limiterInstance)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies any pending schema migrations using a temporary
// database/sql connection via the pgx stdlib driver.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
