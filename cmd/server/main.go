package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/transitpulse/transit-api/internal/api"
	"github.com/transitpulse/transit-api/internal/infrastructure/config"
	"github.com/transitpulse/transit-api/internal/infrastructure/db/memory"
	redisinfra "github.com/transitpulse/transit-api/internal/infrastructure/db/redis"
	"github.com/transitpulse/transit-api/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "transit-api"})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "transit-api",
	})

	if cfg.Env == "production" && cfg.JWTSecret == "super-secret-key" {
		log.Warn().Msg("running in production with the default JWT secret; set JWT_SECRET")
	}

	// Credential directory: in-process, seeded with the fixed accounts.
	store := memory.NewCredentialStore()
	if err := memory.SeedDefaults(ctx, store); err != nil {
		log.Fatal().Err(err).Msg("failed to seed credential store")
	}

	// Redis backs the login throttle; the service runs without it.
	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisinfra.Connect(ctx, redisinfra.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, login throttle disabled")
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	e := api.NewRouter(store, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server stopped cleanly")
}
