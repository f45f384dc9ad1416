package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"movie-catalog/internal/database"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
)

//go:generate mockgen -destination=mocks/mock_director_repository.go -package=mocks movie-catalog/internal/repository DirectorRepository

// DirectorRepository defines the interface for director data operations
type DirectorRepository interface {
	Create(ctx context.Context, director *models.Director) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedDirector, error)
	List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedDirector], error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type directorRepository struct {
	catalog[models.Director, models.PopulatedDirector]
}

// NewDirectorRepository creates a new DirectorRepository
func NewDirectorRepository(db *mongo.Database) DirectorRepository {
	return &directorRepository{catalog[models.Director, models.PopulatedDirector]{
		collection: db.Collection(database.DirectorsCollection),
		schema:     directorSchema,
		notFound:   apperrors.ErrDirectorNotFound,
	}}
}

func (r *directorRepository) Create(ctx context.Context, director *models.Director) error {
	if director.Movies == nil {
		director.Movies = []primitive.ObjectID{}
	}

	id, err := r.insert(ctx, director)
	if err != nil {
		return err
	}
	director.ID = id
	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedDirector, error) {
	return r.findByID(ctx, id)
}

func (r *directorRepository) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedDirector], error) {
	return r.list(ctx, params)
}

func (r *directorRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.exists(ctx, id)
}
