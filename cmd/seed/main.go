// Command seed creates the author credential records the API authenticates
// against, hashing each password with bcrypt and upserting by username so
// reruns are safe.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/shreekara/studio-api/internal/core/domain"
	"github.com/shreekara/studio-api/internal/core/service"
	"github.com/shreekara/studio-api/internal/infrastructure/config"
	mongodb "github.com/shreekara/studio-api/internal/infrastructure/db/mongo"
	"github.com/shreekara/studio-api/pkg/logger"
)

// seedAuthors is the studio's fixed author roster.
var seedAuthors = map[string]string{
	"admin":   "shree123",
	"author1": "kara456",
	"editor":  "studios789",
}

func main() {
	_ = godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "seed"})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(ctx) }()

	repo := mongodb.NewAuthorRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("could not ensure author indexes")
	}

	for username, password := range seedAuthors {
		hash, err := service.HashPassword(password)
		if err != nil {
			log.Fatal().Err(err).Str("username", username).Msg("hashing failed")
		}
		if err := repo.Upsert(ctx, &domain.Author{Username: username, PasswordHash: hash}); err != nil {
			log.Fatal().Err(err).Str("username", username).Msg("seeding failed")
		}
		log.Info().Str("username", username).Msg("author seeded")
	}

	log.Info().Int("count", len(seedAuthors)).Msg("seeding complete")
}
