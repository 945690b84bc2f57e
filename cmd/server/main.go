package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/dmarins/bankledger/internal/adapter/http"
	"github.com/dmarins/bankledger/internal/adapter/http/handler"
	"github.com/dmarins/bankledger/internal/adapter/http/middleware"
	postgresRepo "github.com/dmarins/bankledger/internal/adapter/repository/postgres"
	redisRepo "github.com/dmarins/bankledger/internal/adapter/repository/redis"
	"github.com/dmarins/bankledger/internal/infrastructure/config"
	"github.com/dmarins/bankledger/internal/infrastructure/eventpublisher"
	"github.com/dmarins/bankledger/internal/infrastructure/logger"
	"github.com/dmarins/bankledger/internal/infrastructure/metrics"
	"github.com/dmarins/bankledger/internal/infrastructure/postgres"
	infraRedis "github.com/dmarins/bankledger/internal/infrastructure/redis"
	"github.com/dmarins/bankledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis
	redisClient, err := infraRedis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Metrics
	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool, cfg.LockTimeout)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	outboxRepo := postgresRepo.NewOutboxRepository(pool)
	ledgerRepo := postgresRepo.NewLedgerRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	accountUC := usecase.NewAccountUseCase(accountRepo).WithCache(cache)
	depositUC := usecase.NewDepositUseCase(txManager, accountRepo, entryRepo, outboxRepo, idGen).
		WithRetrier(retrier).
		WithCache(cache)
	transferUC := usecase.NewTransferUseCase(txManager, accountRepo, entryRepo, outboxRepo, idGen).
		WithRetrier(retrier).
		WithCache(cache)
	entryUC := usecase.NewEntryUseCase(entryRepo)
	ledgerUC := usecase.NewLedgerUseCase(ledgerRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthChecker{
		"postgres": pool.Ping,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	})

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AccountHandler:   handler.NewAccountHandler(accountUC),
		DepositHandler:   handler.NewDepositHandler(depositUC),
		TransferHandler:  handler.NewTransferHandler(transferUC),
		EntryHandler:     handler.NewEntryHandler(entryUC),
		LedgerHandler:    handler.NewLedgerHandler(ledgerUC),
		HealthHandler:    healthHandler,
		Logger:           appLogger,
		Metrics:          appMetrics,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).WithMetrics(appMetrics),
	})

	// Start outbox event publisher
	publisherCtx, stopPublisher := context.WithCancel(ctx)
	defer stopPublisher()

	var eventSink eventpublisher.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := eventpublisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer kafkaPublisher.Close()
		eventSink = kafkaPublisher
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("publishing events to kafka")
	} else {
		eventSink = eventpublisher.NewLogPublisher(nil)
		log.Info().Msg("no kafka brokers configured, logging events")
	}

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		OutboxRepo: outboxRepo,
		Publisher:  eventSink,
		BatchSize:  cfg.OutboxBatchSize,
		Interval:   cfg.OutboxPollInterval,
	})

	go func() {
		if err := publisher.Start(publisherCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("event publisher stopped")
		}
	}()

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
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	stopPublisher()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
