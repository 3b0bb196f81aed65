package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/http/handler"
	postgresRepo "github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/repository/postgres"
	redisRepo "github.com/Samuelkaoma/sunricort-accounting-app/internal/adapter/repository/redis"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/infrastructure/config"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/infrastructure/logging"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/infrastructure/metrics"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/infrastructure/postgres"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/infrastructure/redis"
	"github.com/Samuelkaoma/sunricort-accounting-app/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	slogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	accountRepo := postgresRepo.NewAccountRepository(pool)
	contactRepo := postgresRepo.NewContactRepository(pool)
	transactionRepo := postgresRepo.NewTransactionRepository(pool)
	invoiceRepo := postgresRepo.NewInvoiceRepository(pool)
	recurringRepo := postgresRepo.NewRecurringRepository(pool)
	reportCache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()
	engineMetrics := metrics.New()

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo, transactionRepo, idGen)
	contactUC := usecase.NewContactUseCase(contactRepo, invoiceRepo, transactionRepo, idGen)
	transactionUC := usecase.NewTransactionUseCase(transactionRepo, idGen, retrier)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo, contactRepo, idGen)
	recurringUC := usecase.NewRecurringUseCase(recurringRepo, transactionRepo, idGen)
	reportUC := usecase.NewReportUseCase(accountRepo, contactRepo, invoiceRepo, transactionRepo, reportCache, engineMetrics, slogger)

	// Initialize handlers
	accountHandler := handler.NewAccountHandler(accountUC)
	contactHandler := handler.NewContactHandler(contactUC)
	transactionHandler := handler.NewTransactionHandler(transactionUC)
	invoiceHandler := handler.NewInvoiceHandler(invoiceUC)
	recurringHandler := handler.NewRecurringHandler(recurringUC)
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:     accountHandler,
		ContactHandler:     contactHandler,
		TransactionHandler: transactionHandler,
		InvoiceHandler:     invoiceHandler,
		RecurringHandler:   recurringHandler,
		ReportHandler:      reportHandler,
		HealthHandler:      healthHandler,
		IdempotencyStore:   idempotencyStore,
		Logger:             log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
