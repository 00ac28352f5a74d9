package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"carwash-dashboard/internal/auth"
	"carwash-dashboard/internal/config"
	"carwash-dashboard/internal/db"
	httphandler "carwash-dashboard/internal/http"
	"carwash-dashboard/internal/http/middleware"
	"carwash-dashboard/internal/logger"
	"carwash-dashboard/internal/repository"
	"carwash-dashboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	revocations := newRevocationStore(cfg, appLogger)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLHrs) * time.Hour
	tokens := auth.NewManager(cfg.Auth.Secret, tokenTTL)

	userRepo := repository.NewUserRepository(database)
	statsRepo := repository.NewStatsRepository(database)
	carRepo := repository.NewCarRepository(database)

	authService := service.NewAuthService(userRepo, tokens, revocations)
	userService := service.NewUserService(userRepo, appLogger)
	statsService := service.NewStatsService(statsRepo, appLogger)
	carService := service.NewCarService(carRepo, cfg.Pagination.DefaultPageSize, cfg.Pagination.MaxPageSize)

	handler := httphandler.NewHandler(authService, userService, statsService, carService, appLogger, httphandler.HandlerConfig{
		DevMode:      cfg.IsDevelopment(),
		CookieSecure: cfg.Auth.CookieSecure,
		CookieTTL:    tokenTTL,
	})

	authMiddleware := middleware.Auth(tokens, revocations)
	requestLogger := middleware.RequestLogger(appLogger)
	router := httphandler.NewRouter(handler, authMiddleware, requestLogger, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting carwash dashboard service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}

// newRevocationStore prefers Redis so logout survives restarts; without a
// configured address it falls back to the in-process store.
func newRevocationStore(cfg *config.Config, log zerolog.Logger) auth.RevocationStore {
	if cfg.Redis.Addr == "" {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory token revocation store")
		return auth.NewMemoryRevocationStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis token revocation store ready")
	return auth.NewRedisRevocationStore(client)
}
