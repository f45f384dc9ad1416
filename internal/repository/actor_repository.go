package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"movie-catalog/internal/database"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
)

//go:generate mockgen -destination=mocks/mock_actor_repository.go -package=mocks movie-catalog/internal/repository ActorRepository

// ActorRepository defines the interface for actor data operations
type ActorRepository interface {
	Create(ctx context.Context, actor *models.Actor) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedActor, error)
	List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedActor], error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type actorRepository struct {
	catalog[models.Actor, models.PopulatedActor]
}

// NewActorRepository creates a new ActorRepository
func NewActorRepository(db *mongo.Database) ActorRepository {
	return &actorRepository{catalog[models.Actor, models.PopulatedActor]{
		collection: db.Collection(database.ActorsCollection),
		schema:     actorSchema,
		notFound:   apperrors.ErrActorNotFound,
	}}
}

func (r *actorRepository) Create(ctx context.Context, actor *models.Actor) error {
	if actor.Movies == nil {
		actor.Movies = []primitive.ObjectID{}
	}

	id, err := r.insert(ctx, actor)
	if err != nil {
		return err
	}
	actor.ID = id
	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedActor, error) {
	return r.findByID(ctx, id)
}

func (r *actorRepository) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedActor], error) {
	return r.list(ctx, params)
}

func (r *actorRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.exists(ctx, id)
}
