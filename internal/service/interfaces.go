package service

import (
	"context"

	"movie-catalog/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Check(ctx context.Context, email string) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user and favorites operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error)

	AddFavorite(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error)
	RemoveFavorite(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error)
	FavoriteMovies(ctx context.Context, userID string) ([]models.Movie, error)
	FavoriteActors(ctx context.Context, userID string) ([]models.Actor, error)
	FavoriteDirectors(ctx context.Context, userID string) ([]models.Director, error)
}

// MovieServicer defines the interface for movie operations.
type MovieServicer interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedMovie], error)
	Get(ctx context.Context, id string) (*models.PopulatedMovie, error)
	Create(ctx context.Context, req *models.CreateMovieRequest, image *models.Upload) (*models.Movie, error)
}

// ActorServicer defines the interface for actor operations.
type ActorServicer interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedActor], error)
	Get(ctx context.Context, id string) (*models.PopulatedActor, error)
	Create(ctx context.Context, req *models.CreateActorRequest, image *models.Upload) (*models.Actor, error)
}

// DirectorServicer defines the interface for director operations.
type DirectorServicer interface {
	List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedDirector], error)
	Get(ctx context.Context, id string) (*models.PopulatedDirector, error)
	Create(ctx context.Context, req *models.CreateDirectorRequest, image *models.Upload) (*models.Director, error)
}

// FileServicer defines the interface for upload storage.
type FileServicer interface {
	SaveImage(ctx context.Context, file *models.Upload) (string, error)
}

// ReportServicer defines the interface for favorites reports.
type ReportServicer interface {
	FavoritesReport(ctx context.Context, userID string, kind models.FavoriteKind, format models.ReportFormat) (*models.Report, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer     = (*AuthService)(nil)
	_ UserServicer     = (*UserService)(nil)
	_ MovieServicer    = (*MovieService)(nil)
	_ ActorServicer    = (*ActorService)(nil)
	_ DirectorServicer = (*DirectorService)(nil)
	_ FileServicer     = (*FileService)(nil)
	_ ReportServicer   = (*ReportService)(nil)
)
