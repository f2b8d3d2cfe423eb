// cmd/server/main.go is the entry point of the Sport Stats API server.
// It loads configuration, opens the database, applies migrations, starts the live-feed
// hub and serves HTTP until SIGINT/SIGTERM.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/trentd187/sport-stats-api/internal/config"
	"github.com/trentd187/sport-stats-api/internal/database"
	"github.com/trentd187/sport-stats-api/internal/server"
	"github.com/trentd187/sport-stats-api/internal/store"
	"github.com/trentd187/sport-stats-api/internal/websocket"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()
	setupLogging(cfg)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	// Without a database URL there is nothing to migrate; requests will fail with 500s
	// until one is configured.
	if cfg.RunMigrations && cfg.DatabaseURL != "" && !cfg.IsTest() {
		if err := database.RunMigrations(cfg.DSN(), cfg.MigrationsDir); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	app := server.New(cfg, store.New(db), hub)

	if cfg.IsTest() {
		log.Info().Msg("ENV=test, not opening a listener")
		return
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("port", cfg.Port).
		Str("profile", string(cfg.Profile)).
		Bool("auth", cfg.AuthEnabled()).
		Msgf("API listening at http://localhost:%s", cfg.Port)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// setupLogging switches to JSON logs in production and applies the configured level.
func setupLogging(cfg *config.Config) {
	if cfg.Env == config.EnvProduction {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)
}
