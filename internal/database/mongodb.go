// Package database connects to MongoDB and owns the collection names and indexes.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog/internal/logging"
)

// Collection names.
const (
	UsersCollection     = "users"
	MoviesCollection    = "movies"
	ActorsCollection    = "actors"
	DirectorsCollection = "directors"
	FavoritesCollection = "favorites"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
)

// MongoDB holds the client and the catalog database.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to uri and pings the server within connectTimeout.
func NewMongoDB(ctx context.Context, uri, dbName string) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetAppName("movie-catalog").
		SetServerSelectionTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logging.Info().Str("database", dbName).Msg("Connected to MongoDB")

	return &MongoDB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// Close disconnects from MongoDB
func (m *MongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	if err := m.Client.Disconnect(ctx); err != nil {
		logging.Error().Err(err).Msg("Error disconnecting from MongoDB")
		return
	}
	logging.Info().Msg("Disconnected from MongoDB")
}
