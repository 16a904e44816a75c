// Command api runs the studio content backend: token issuance, authenticated
// media/poem uploads, public listings, and owner-scoped deletion over a
// MongoDB document store.
//
// @title        Shree Kara Studios API
// @version      1.0
// @description  Content-management backend for the studio website.
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/shreekara/studio-api/docs"
	"github.com/shreekara/studio-api/internal/api"
	"github.com/shreekara/studio-api/internal/infrastructure/config"
	mongodb "github.com/shreekara/studio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/shreekara/studio-api/internal/infrastructure/db/redis"
	"github.com/shreekara/studio-api/pkg/logger"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "studio-api",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	if err := mongodb.NewAuthorRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure author indexes")
	}
	if err := mongodb.NewContentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure content indexes")
	}
	if err := mongodb.NewActivityRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not ensure activity indexes")
	}

	e, dispatcher := api.NewRouter(db, rdb, cfg, log)
	dispatcher.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
