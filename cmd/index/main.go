package main

import (
	"context"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	logging.Info().Msg("Creating indexes...")

	mongoDB, err := database.NewMongoDB(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logging.Error().Err(err).Msg("Index creation failed")
		return
	}

	logging.Info().Msg("Indexes created successfully")
}
