package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/ais-aviation/currency-service/internal/adapters/cache"
	"github.com/ais-aviation/currency-service/internal/adapters/database/pgsql"
	"github.com/ais-aviation/currency-service/internal/adapters/rates"
	"github.com/ais-aviation/currency-service/internal/core/ports"
	portsrepo "github.com/ais-aviation/currency-service/internal/core/ports/repositories"
	"github.com/ais-aviation/currency-service/internal/core/services"
	"github.com/ais-aviation/currency-service/internal/handlers"
	"github.com/ais-aviation/currency-service/internal/middleware"
	"github.com/ais-aviation/currency-service/pkg/config"
	"github.com/ais-aviation/currency-service/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title AIS Currency Service API
// @version 1.0
// @description Exchange rates, currency conversion and auth for the AIS aviation system.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Optional Redis rate cache
	var rateCache ports.RateCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisRateCache(context.Background(), cache.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.RatesCacheTTL,
		})
		if err != nil {
			logger.Error("Failed to connect to Redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisCache.Close()
		rateCache = redisCache
		logger.Info("Redis rate cache enabled", slog.String("addr", cfg.RedisAddr))
	}

	repos := portsrepo.RepositoryProvider{
		ExchangeRateRepo: pgsql.NewExchangeRateRepository(dbPool),
		UserRepo:         pgsql.NewUserRepository(dbPool),
	}
	rateSource := rates.NewClient(cfg.RatesAPIURL, cfg.RatesAPIKey, cfg.RatesFetchTimeout)
	container := services.NewServiceContainer(cfg, repos, rateSource, rateCache)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.MetricsMiddleware(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending "up" migrations using a temporary
// database/sql connection over the pgx stdlib driver.
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

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
