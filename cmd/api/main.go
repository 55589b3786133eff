// Command api is the entry point for the portal system HTTP API.
//
// Startup sequence: logger, configuration, MongoDB, Redis, indexes and
// optional demo seeding, router, HTTP server with graceful shutdown. No
// business logic lives here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/calmora/portal-system/internal/api"
	"github.com/calmora/portal-system/internal/infrastructure/config"
	mongodb "github.com/calmora/portal-system/internal/infrastructure/db/mongo"
	redisdb "github.com/calmora/portal-system/internal/infrastructure/db/redis"
	"github.com/calmora/portal-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(startupCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redisdb.Connect(startupCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Indexes and seeding ---
	userRepo := mongodb.NewUserRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	sedationistRepo := mongodb.NewSedationistRepository(db)

	if err := userRepo.EnsureIndexes(startupCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := patientRepo.EnsureIndexes(startupCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to create patient indexes")
	}
	if err := sedationistRepo.EnsureIndexes(startupCtx); err != nil {
		log.Fatal().Err(err).Msg("failed to create sedationist indexes")
	}

	if cfg.SeedDemoUsers {
		if err := mongodb.SeedDemoUsers(startupCtx, userRepo, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo users")
		}
	}

	// --- Router ---
	e := api.NewRouter(db, rdb, api.Options{
		JWTSecret:       cfg.JWTSecret,
		SessionTTL:      cfg.SessionTTL,
		VerifyPasswords: cfg.VerifyPasswords,
		Logger:          log,
	})

	// --- Serve with graceful shutdown ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
