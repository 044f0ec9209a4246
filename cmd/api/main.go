package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rxbryan/galoy/internal/account"
	"github.com/rxbryan/galoy/internal/history"
	"github.com/rxbryan/galoy/internal/infra/gateway/bitcoind"
	"github.com/rxbryan/galoy/internal/infra/gateway/pricefeed"
	"github.com/rxbryan/galoy/internal/infra/postgres"
	infraRedis "github.com/rxbryan/galoy/internal/infra/redis"
	"github.com/rxbryan/galoy/internal/pricing"
	"github.com/rxbryan/galoy/internal/transport/httpapi"
	"github.com/rxbryan/galoy/internal/transport/httpapi/handler"
	"github.com/rxbryan/galoy/internal/transport/httpapi/middleware"
	"github.com/rxbryan/galoy/pkg/config"
	"github.com/rxbryan/galoy/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewDefault(cfg.Env)
	log.Info("Starting wallet API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	rewards, err := config.LoadRewardsConfig(cfg.RewardsConfigPath)
	if err != nil {
		log.Error("Failed to load rewards config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.NewPool(ctx, postgres.Config{URL: cfg.DatabaseURL})
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("Database connection established")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	log.Info("Redis connection established")

	// Repositories
	accountRepo := postgres.NewAccountRepository(db.Pool)
	walletRepo := postgres.NewWalletRepository(db.Pool)
	ledgerRepo := postgres.NewLedgerRepository(db.Pool)

	// Pricing: external feed behind a Redis cache with stale fallback
	priceClient := pricefeed.NewClient(cfg.PriceFeedAPIKey, log)
	priceProvider := pricefeed.NewProviderAdapter(priceClient)
	priceCache := infraRedis.NewPriceCache(redisClient, log)
	pricingSvc := pricing.NewService(priceProvider, priceCache, log)

	// Pending incoming on-chain transfers come straight from bitcoind
	bitcoindClient := bitcoind.NewClient(cfg.BitcoindRPCURL, cfg.BitcoindRPCUser, cfg.BitcoindRPCPass, log)
	onchainWatcher := bitcoind.NewWatcherAdapter(bitcoindClient)

	memoCfg := history.MemoConfig{
		SharingSatsThreshold:  cfg.MemoSharingSatsThreshold,
		SharingCentsThreshold: cfg.MemoSharingCentsThreshold,
		OnboardingRewards:     rewards.AmountsByID(),
	}

	accountSvc := account.NewService(accountRepo, log)
	historySvc := history.NewService(memoCfg, ledgerRepo, walletRepo, onchainWatcher, pricingSvc, log)
	jwtSvc := middleware.NewJWTService(cfg.JWTSecret)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(accountSvc, jwtSvc)
	transactionHandler := handler.NewTransactionHandler(historySvc, walletRepo)
	healthHandler := handler.NewHealthHandler(db)

	allowedOrigins := []string{"http://localhost:5173"}
	if cfg.IsProduction() {
		if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
			allowedOrigins = []string{origins}
		}
	}

	r := httpapi.NewRouter(httpapi.Config{
		Logger:             log,
		AllowedOrigins:     allowedOrigins,
		AuthHandler:        authHandler,
		TransactionHandler: transactionHandler,
		HealthHandler:      healthHandler,
		JWTMiddleware:      middleware.JWTMiddleware(jwtSvc),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	log.Info("Server stopped")
}
