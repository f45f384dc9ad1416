package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog/internal/logging"
)

type index struct {
	collection string
	model      mongo.IndexModel
}

func indexes() []index {
	return []index{
		{UsersCollection, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{FavoritesCollection, mongo.IndexModel{
			Keys: bson.D{
				{Key: "userId", Value: 1},
				{Key: "kind", Value: 1},
				{Key: "targetId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		}},
		{FavoritesCollection, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: 1}},
		}},
		{MoviesCollection, mongo.IndexModel{Keys: bson.D{{Key: "title", Value: 1}}}},
		{MoviesCollection, mongo.IndexModel{Keys: bson.D{{Key: "genre", Value: 1}}}},
		{ActorsCollection, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}}},
		{DirectorsCollection, mongo.IndexModel{Keys: bson.D{{Key: "name", Value: 1}}}},
	}
}

// EnsureIndexes creates the catalog indexes. Existing identical indexes are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, idx := range indexes() {
		name, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil {
			return fmt.Errorf("create index on %s: %w", idx.collection, err)
		}
		logging.Debug().Str("collection", idx.collection).Str("index", name).Msg("Index ready")
	}
	return nil
}
