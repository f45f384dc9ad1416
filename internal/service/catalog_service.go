package service

import (
	"context"
	"time"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
	"movie-catalog/internal/query"
	"movie-catalog/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieService handles business logic for movies.
type MovieService struct {
	repo  repository.MovieRepository
	files FileServicer
}

// NewMovieService creates a new MovieService.
func NewMovieService(repo repository.MovieRepository, files FileServicer) *MovieService {
	return &MovieService{repo: repo, files: files}
}

// List returns one page of movies with actors and directors populated.
func (s *MovieService) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedMovie], error) {
	return s.repo.List(ctx, params)
}

// Get retrieves a populated movie by ID.
func (s *MovieService) Get(ctx context.Context, id string) (*models.PopulatedMovie, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrMovieNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// Create stores a new movie. The image is optional.
func (s *MovieService) Create(ctx context.Context, req *models.CreateMovieRequest, image *models.Upload) (*models.Movie, error) {
	creationDate, err := parseDate(req.CreationDate)
	if err != nil {
		return nil, err
	}
	actors, err := objectIDs(req.Actors)
	if err != nil {
		return nil, err
	}
	directors, err := objectIDs(req.Directors)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{
		MovieFields: models.MovieFields{
			Title:        req.Title,
			Description:  req.Description,
			CreationDate: creationDate,
			Genre:        req.Genre,
			Budget:       req.Budget,
		},
		Actors:    actors,
		Directors: directors,
	}

	if movie.Image, err = saveImage(ctx, s.files, image); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

// ActorService handles business logic for actors.
type ActorService struct {
	repo  repository.ActorRepository
	files FileServicer
}

// NewActorService creates a new ActorService.
func NewActorService(repo repository.ActorRepository, files FileServicer) *ActorService {
	return &ActorService{repo: repo, files: files}
}

// List returns one page of actors with movies populated.
func (s *ActorService) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedActor], error) {
	return s.repo.List(ctx, params)
}

// Get retrieves a populated actor by ID.
func (s *ActorService) Get(ctx context.Context, id string) (*models.PopulatedActor, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrActorNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// Create stores a new actor. The image is optional.
func (s *ActorService) Create(ctx context.Context, req *models.CreateActorRequest, image *models.Upload) (*models.Actor, error) {
	person, movies, err := buildPerson(&req.CreatePersonRequest)
	if err != nil {
		return nil, err
	}

	actor := &models.Actor{
		ActorFields: models.ActorFields{Person: person, Height: req.Height},
		Movies:      movies,
	}

	if actor.Image, err = saveImage(ctx, s.files, image); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// DirectorService handles business logic for directors.
type DirectorService struct {
	repo  repository.DirectorRepository
	files FileServicer
}

// NewDirectorService creates a new DirectorService.
func NewDirectorService(repo repository.DirectorRepository, files FileServicer) *DirectorService {
	return &DirectorService{repo: repo, files: files}
}

// List returns one page of directors with movies populated.
func (s *DirectorService) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedDirector], error) {
	return s.repo.List(ctx, params)
}

// Get retrieves a populated director by ID.
func (s *DirectorService) Get(ctx context.Context, id string) (*models.PopulatedDirector, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrDirectorNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

// Create stores a new director. The image is optional.
func (s *DirectorService) Create(ctx context.Context, req *models.CreateDirectorRequest, image *models.Upload) (*models.Director, error) {
	person, movies, err := buildPerson(&req.CreatePersonRequest)
	if err != nil {
		return nil, err
	}

	director := &models.Director{Person: person, Movies: movies}

	if director.Image, err = saveImage(ctx, s.files, image); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, director); err != nil {
		return nil, err
	}
	return director, nil
}

func buildPerson(req *models.CreatePersonRequest) (models.Person, []primitive.ObjectID, error) {
	birthday, err := parseDate(req.Birthday)
	if err != nil {
		return models.Person{}, nil, err
	}

	var dateOfDeath *time.Time
	if req.DateOfDeath != nil && *req.DateOfDeath != "" {
		d, err := parseDate(*req.DateOfDeath)
		if err != nil {
			return models.Person{}, nil, err
		}
		dateOfDeath = &d
	}

	movies, err := objectIDs(req.Movies)
	if err != nil {
		return models.Person{}, nil, err
	}

	return models.Person{
		Name:         req.Name,
		Surname:      req.Surname,
		Description:  req.Description,
		Birthday:     birthday,
		DateOfDeath:  dateOfDeath,
		PlaceOfBirth: req.PlaceOfBirth,
	}, movies, nil
}

// saveImage stores image when one was uploaded and returns its name.
func saveImage(ctx context.Context, files FileServicer, image *models.Upload) (*string, error) {
	if image == nil {
		return nil, nil
	}
	name, err := files.SaveImage(ctx, image)
	if err != nil {
		return nil, err
	}
	return &name, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := query.ParseDate(s)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t, nil
}

// objectIDs converts hex references. Empty input yields an empty slice.
func objectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperrors.ErrInvalidReference
		}
		ids = append(ids, id)
	}
	return ids, nil
}
