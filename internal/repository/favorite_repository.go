package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog/internal/database"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
	"movie-catalog/internal/query"
)

//go:generate mockgen -destination=mocks/mock_favorite_repository.go -package=mocks movie-catalog/internal/repository FavoriteRepository

// FavoriteRepository stores the links between users and catalog entries.
type FavoriteRepository interface {
	// Add links target to the user. Returns ErrFavoriteAlreadyExists if the link exists.
	Add(ctx context.Context, userID primitive.ObjectID, kind models.FavoriteKind, targetID primitive.ObjectID) error
	// Remove unlinks target. Returns ErrFavoriteNotFound if there was no link.
	Remove(ctx context.Context, userID primitive.ObjectID, kind models.FavoriteKind, targetID primitive.ObjectID) error
	// IDs returns the user's favorite ids of every kind, oldest first.
	IDs(ctx context.Context, userID primitive.ObjectID) (map[models.FavoriteKind][]primitive.ObjectID, error)
	Movies(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error)
	Actors(ctx context.Context, userID primitive.ObjectID) ([]models.Actor, error)
	Directors(ctx context.Context, userID primitive.ObjectID) ([]models.Director, error)
}

type favoriteRepository struct {
	collection *mongo.Collection
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *mongo.Database) FavoriteRepository {
	return &favoriteRepository{
		collection: db.Collection(database.FavoritesCollection),
	}
}

func linkFilter(userID primitive.ObjectID, kind models.FavoriteKind, targetID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "kind": kind, "targetId": targetID}
}

// Add upserts the link so concurrent adds of the same target cannot both succeed.
func (r *favoriteRepository) Add(ctx context.Context, userID primitive.ObjectID, kind models.FavoriteKind, targetID primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx,
		linkFilter(userID, kind, targetID),
		bson.M{"$setOnInsert": bson.M{"createdAt": time.Now().UTC()}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrFavoriteAlreadyExists
		}
		return err
	}

	if result.UpsertedCount == 0 {
		return apperrors.ErrFavoriteAlreadyExists
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID primitive.ObjectID, kind models.FavoriteKind, targetID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, linkFilter(userID, kind, targetID))
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrFavoriteNotFound
	}
	return nil
}

func (r *favoriteRepository) IDs(ctx context.Context, userID primitive.ObjectID) (map[models.FavoriteKind][]primitive.ObjectID, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}).
		SetProjection(bson.M{"kind": 1, "targetId": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var links []models.Favorite
	if err := cursor.All(ctx, &links); err != nil {
		return nil, err
	}

	ids := make(map[models.FavoriteKind][]primitive.ObjectID, len(models.FavoriteKinds))
	for _, kind := range models.FavoriteKinds {
		ids[kind] = []primitive.ObjectID{}
	}
	for _, link := range links {
		ids[link.Kind] = append(ids[link.Kind], link.TargetID)
	}
	return ids, nil
}

func (r *favoriteRepository) Movies(ctx context.Context, userID primitive.ObjectID) ([]models.Movie, error) {
	return findTargets[models.Movie](ctx, r.collection, userID, models.FavoriteMovie, database.MoviesCollection)
}

func (r *favoriteRepository) Actors(ctx context.Context, userID primitive.ObjectID) ([]models.Actor, error) {
	return findTargets[models.Actor](ctx, r.collection, userID, models.FavoriteActor, database.ActorsCollection)
}

func (r *favoriteRepository) Directors(ctx context.Context, userID primitive.ObjectID) ([]models.Director, error) {
	return findTargets[models.Director](ctx, r.collection, userID, models.FavoriteDirector, database.DirectorsCollection)
}

// findTargets resolves a user's links of one kind into the target documents, oldest link first.
// Links whose target no longer exists are skipped.
func findTargets[T any](ctx context.Context, coll *mongo.Collection, userID primitive.ObjectID, kind models.FavoriteKind, from string) ([]T, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"userId": userID, "kind": kind}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}}},
		query.LookupStage(from, "targetId", "_id", "target"),
		{{Key: "$unwind", Value: "$target"}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$target"}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var targets []T
	if err := cursor.All(ctx, &targets); err != nil {
		return nil, err
	}
	if targets == nil {
		targets = []T{}
	}
	return targets, nil
}
