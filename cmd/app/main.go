package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/alicebob/miniredis/v2"

	_ "lyra-coin-backend/docs"
	"lyra-coin-backend/internal/common/cache"
	"lyra-coin-backend/internal/common/config"
	"lyra-coin-backend/internal/common/logger"
	"lyra-coin-backend/internal/features/appstore/repository"
	"lyra-coin-backend/internal/features/appstore/repository/memory"
	snapshotRepo "lyra-coin-backend/internal/features/appstore/repository/redis"
	appstore "lyra-coin-backend/internal/features/appstore/service"
	priceService "lyra-coin-backend/internal/features/prices/service"
	referralService "lyra-coin-backend/internal/features/referral/service"
	taskService "lyra-coin-backend/internal/features/tasks/service"
	userRepo "lyra-coin-backend/internal/features/user/repository/redis"
	userService "lyra-coin-backend/internal/features/user/service"
	walletModels "lyra-coin-backend/internal/features/wallet/models"
	walletRepo "lyra-coin-backend/internal/features/wallet/repository/redis"
	walletService "lyra-coin-backend/internal/features/wallet/service"
	apphttp "lyra-coin-backend/internal/http"
	"lyra-coin-backend/internal/metrics"
	"lyra-coin-backend/internal/platform/redis"
)

// @title           Lyra Coin API
// @version         1.0
// @description     Backend of the Lyra Coin Telegram Mini App: social tasks, rewards, prices, referrals and wallet status.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey TelegramInitData
// @in header
// @name init_data
// @description Telegram Mini App init_data string for authentication

// @tag.name tasks
// @tag.description Social task lifecycle - countdowns and reward claims

// @tag.name prices
// @tag.description Market prices of the top coins

// @tag.name referrals
// @tag.description Referral codes and share links

// @tag.name users
// @tag.description Profile, balance and level

// @tag.name wallet
// @tag.description TON Connect wallet status

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init("lyra-coin-backend", cfg.Debug)
	logger.Info().
		Str("store_backend", cfg.Store.Backend).
		Int("port", cfg.Server.Port).
		Msg("Starting Lyra Coin backend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(logger.Component("metrics"))

	redisAddr := cfg.RedisAddr()
	if cfg.Store.Backend == "memory" {
		// In-process Redis for local runs; nothing survives a restart.
		mr, err := miniredis.Run()
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to start embedded Redis")
		}
		defer mr.Close()
		redisAddr = mr.Addr()
	}

	redisClient, err := redis.Open(ctx, redis.Options{
		Addr:     redisAddr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Str("addr", redisAddr).Msg("Redis connection established")

	var snapshots repository.SnapshotRepository
	if cfg.Store.Backend == "memory" {
		snapshots = memory.NewRepository()
	} else {
		snapshots = snapshotRepo.NewSnapshotRepository(redisClient)
	}
	stores := appstore.NewManager(snapshots, cfg.Store.Namespace, logger.Component("store"))

	tasks := taskService.NewController(stores, taskService.Options{
		Seconds: cfg.Tasks.CountdownSeconds,
		Tick:    cfg.Tasks.Tick,
	}, m, logger.Component("tasks"))

	prices := priceService.NewService(
		priceService.NewClient(cfg.Prices.BaseURL, cfg.Prices.Timeout),
		cache.NewCacheService(redisClient),
		cfg.Prices.RefreshInterval,
		m,
		logger.Component("prices"),
	)
	go prices.Run(ctx)

	wallets := walletService.NewService(
		walletRepo.NewRepository(redisClient),
		walletService.NewTonAPI(cfg.Wallet.TonAPIBaseURL, cfg.Wallet.TonAPIToken),
		walletModels.Manifest{
			URL:     cfg.Wallet.ManifestAppURL,
			Name:    cfg.Wallet.ManifestName,
			IconURL: cfg.Wallet.ManifestIcon,
		},
		m,
		logger.Component("wallet"),
	)

	router := apphttp.NewRouter(apphttp.Deps{
		Config:    cfg,
		Logger:    logger.Component("http"),
		Metrics:   m,
		Health:    redisClient,
		Users:     userService.NewService(userRepo.NewUserRepository(redisClient), stores, logger.Component("users")),
		Tasks:     tasks,
		Prices:    prices,
		Referrals: referralService.NewService(stores, cfg.Telegram.BotDeepLinkBase, m, logger.Component("referrals")),
		Wallets:   wallets,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	tasks.Stop()

	logger.Info().Msg("Server exited")
}
