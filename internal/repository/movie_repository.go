package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"movie-catalog/internal/database"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
)

//go:generate mockgen -destination=mocks/mock_movie_repository.go -package=mocks movie-catalog/internal/repository MovieRepository

// MovieRepository defines the interface for movie data operations
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedMovie, error)
	List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedMovie], error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type movieRepository struct {
	catalog[models.Movie, models.PopulatedMovie]
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *mongo.Database) MovieRepository {
	return &movieRepository{catalog[models.Movie, models.PopulatedMovie]{
		collection: db.Collection(database.MoviesCollection),
		schema:     movieSchema,
		notFound:   apperrors.ErrMovieNotFound,
	}}
}

// Create inserts a movie and sets its generated ID.
func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	if movie.Actors == nil {
		movie.Actors = []primitive.ObjectID{}
	}
	if movie.Directors == nil {
		movie.Directors = []primitive.ObjectID{}
	}

	id, err := r.insert(ctx, movie)
	if err != nil {
		return err
	}
	movie.ID = id
	return nil
}

// FindByID returns the movie with actors and directors populated.
func (r *movieRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.PopulatedMovie, error) {
	return r.findByID(ctx, id)
}

// List returns one page of movies.
func (r *movieRepository) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedMovie], error) {
	return r.list(ctx, params)
}

// Exists reports whether a movie with the id is stored.
func (r *movieRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.exists(ctx, id)
}
