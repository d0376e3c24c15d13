package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/harborfleet/crewdesk/internal/core/services"
	"github.com/harborfleet/crewdesk/internal/handlers"
	"github.com/harborfleet/crewdesk/internal/middleware"
	"github.com/harborfleet/crewdesk/internal/notifier"
	"github.com/harborfleet/crewdesk/internal/platform/config"
	"github.com/harborfleet/crewdesk/internal/repositories"
	"github.com/harborfleet/crewdesk/internal/repositories/cache/sqlitecache"
	"github.com/harborfleet/crewdesk/internal/scheduler"
	"github.com/harborfleet/crewdesk/internal/utils"
	"github.com/harborfleet/crewdesk/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title CrewDesk Backend API
// @version 1.0
// @description Crew administration backend: fleet, rotation, loans and the stand-back ledger.

// @host localhost:8080
// @BasePath /

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
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

	// Open the local cache tier. The remote store can be down at startup;
	// the cache keeps the snapshot serviceable.
	cacheStore, err := sqlitecache.NewStore(cfg.CacheDBPath)
	if err != nil {
		logger.Error("Failed to open local cache store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cacheStore.Close()

	repos := repositories.NewProvider(dbPool, cacheStore, logger)

	var office notifier.Notifier = notifier.NoopNotifier{}
	if cfg.TelegramBotToken != "" {
		tg, err := notifier.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Warn("Telegram notifier unavailable, continuing without it", slog.String("error", err.Error()))
		} else {
			office = tg
		}
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	container := services.NewServiceContainer(cfg, repos,
		services.WithNotifier(office),
		services.WithAnalytics(posthogClient),
	)

	// First snapshot before the server accepts traffic. A soft-degraded
	// load is fine; only a hard failure on every tier is worth a warning.
	reloadCtx := middleware.ContextWithLogger(ctx, logger)
	if err := container.Snapshot.Reload(reloadCtx); err != nil {
		logger.Warn("Initial snapshot load failed, starting with empty snapshot",
			slog.String("error", err.Error()))
	}

	// Nightly reload at midnight plus a small offset, plus on-demand wakes
	// from the API.
	sched := scheduler.New(reloaderWithLogger{container.Snapshot, logger},
		scheduler.WithOffset(cfg.ReloadOffset),
		scheduler.WithLogger(logger))
	go sched.Run(ctx)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, sched)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// reloaderWithLogger stamps the base logger onto the background reload
// context so service logging works outside a request.
type reloaderWithLogger struct {
	snapshot interface {
		Reload(ctx context.Context) error
	}
	logger *slog.Logger
}

func (r reloaderWithLogger) Reload(ctx context.Context) error {
	return r.snapshot.Reload(middleware.ContextWithLogger(ctx, r.logger))
}

// runMigrations applies all pending "up" migrations using a short-lived
// database/sql connection compatible with the main pgx pool.
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
		// An unreachable remote store is not fatal. The cache tier serves
		// the snapshot; migrations will run on the next boot with the
		// database back.
		logger.Warn("Remote database unreachable, skipping migrations",
			slog.String("error", err.Error()))
		return nil
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
