package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"safe-wallet-service/config"
	"safe-wallet-service/internal/adapter/evm"
	httpHandler "safe-wallet-service/internal/adapter/http/handler"
	"safe-wallet-service/internal/adapter/safe"
	pgStorage "safe-wallet-service/internal/adapter/storage/postgres"
	redisStorage "safe-wallet-service/internal/adapter/storage/redis"
	"safe-wallet-service/internal/core/domain"
	"safe-wallet-service/internal/core/ports"
	"safe-wallet-service/internal/service"
	"safe-wallet-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("SWS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Int64("chain_id", cfg.Chain.ID).
		Msg("Starting Safe Wallet Service")

	keys := cfg.Keys()
	if config.IsPlaceholderKey(keys.AdminKey()) || config.IsPlaceholderKey(keys.BackupKey()) {
		log.Warn().Msg("PRIVATE_KEY_1 or PRIVATE_KEY_2 not set, transactions will fail until configured")
	}

	ctx := context.Background()

	// Chain access
	chains := service.NewChainConfigProvider(cfg.Chain)
	evmFactory := evm.NewClientFactory(nil, cfg.Chain.ReceiptPollInterval, log)
	defer evmFactory.Close()

	version, contracts, err := safe.ContractsFromConfig(cfg.Safe)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid Safe contract configuration")
	}
	readers := func(ctx context.Context, chain domain.ChainDescriptor) (safe.ChainReader, error) {
		return evmFactory.Backend(ctx, chain)
	}
	safeKits := safe.NewKitFactory(readers, evmFactory, version, contracts, log)

	walletSvc := service.NewWalletService(
		keys,
		chains,
		evm.NewAccountDeriver(),
		evmFactory,
		safeKits,
		log,
	)

	checkers := []ports.HealthChecker{evm.NewHealthCheck(evmFactory, chains)}

	// Optional PostgreSQL audit trail
	var auditRepo ports.AuditRepository
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		log.Info().Msg("PostgreSQL connected")

		if err := pgStorage.EnsureSchema(ctx, pgStorage.NewTransactor(pool)); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database schema")
		}
		auditRepo = pgStorage.NewAuditRepository(pool)
		checkers = append(checkers, pgStorage.NewHealthCheck(pool))
	}
	auditSvc := service.NewAuditService(auditRepo, log)

	// Optional Redis rate limiting and idempotency
	var (
		rateLimitStore   *redisStorage.RateLimitStore
		idempotencyStore *redisStorage.IdempotencyStore
	)
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		idempotencyStore = redisStorage.NewIdempotencyStore(rdb)
		checkers = append(checkers, redisStorage.NewHealthCheck(rdb))
	}

	var tokenSvc ports.TokenService
	if cfg.Auth.Enabled() {
		tokenSvc = service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.Expiry, cfg.Auth.Issuer)
		log.Info().Msg("Operator authentication enabled")
	}

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	var metricsRegistry *prometheus.Registry
	if cfg.Server.Metrics {
		metricsRegistry = prometheus.NewRegistry()
		metricsRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:        walletSvc,
		TokenSvc:         tokenSvc,
		RateLimitStore:   rateLimitStore,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.Redis.IdempotencyTTL,
		AuditSvc:         auditSvc,
		HealthCheckers:   checkers,
		MetricsRegistry:  metricsRegistry,
		Mode:             cfg.Server.Mode,
		Logger:           log,
	})

	// HTTP Server with graceful shutdown
	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
