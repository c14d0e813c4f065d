package main

import (
	"context"
	"net"

	"github.com/joho/godotenv"

	"github.com/alliance-hq/roster/internal/config"
	"github.com/alliance-hq/roster/internal/db"
	"github.com/alliance-hq/roster/internal/handler"
	"github.com/alliance-hq/roster/internal/logging"
	"github.com/alliance-hq/roster/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.App.Environment)

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer pool.Close()

	store := db.New(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	// Misconfigured secrets abort startup; nothing in the request path is
	// allowed to fail fatally.
	authService, err := service.NewAuthService(store, store, cfg.Auth)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init auth service")
	}

	sessionService, err := service.NewSessionService(store, cfg.Session)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to init session service")
	}

	memberService := service.NewMemberService(store)

	router := handler.NewRouter(logger, authService, sessionService, memberService, cfg.Server, cfg.App.Name)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	logger.Info().Str("addr", addr).Str("app", cfg.App.Name).Str("version", cfg.App.Version).Msg("starting server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
