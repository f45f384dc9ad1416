// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"movie-catalog/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	CheckFunc    func(ctx context.Context, email string) (*models.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.CreateUserRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Check(ctx context.Context, email string) (*models.AuthResponse, error) {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, email)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc           func(ctx context.Context, id string) (*models.User, error)
	GetAllUsersFunc       func(ctx context.Context) ([]models.User, error)
	GetByEmailFunc        func(ctx context.Context, email string) (*models.User, error)
	CreateUserFunc        func(ctx context.Context, req *models.CreateUserRequest) (*models.User, error)
	UpdateUserFunc        func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error)
	AddFavoriteFunc       func(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error)
	RemoveFavoriteFunc    func(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error)
	FavoriteMoviesFunc    func(ctx context.Context, userID string) ([]models.Movie, error)
	FavoriteActorsFunc    func(ctx context.Context, userID string) ([]models.Actor, error)
	FavoriteDirectorsFunc func(ctx context.Context, userID string) ([]models.Director, error)
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) AddFavorite(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error) {
	if m.AddFavoriteFunc != nil {
		return m.AddFavoriteFunc(ctx, userID, kind, targetID)
	}
	return nil, nil
}

func (m *MockUserService) RemoveFavorite(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error) {
	if m.RemoveFavoriteFunc != nil {
		return m.RemoveFavoriteFunc(ctx, userID, kind, targetID)
	}
	return nil, nil
}

func (m *MockUserService) FavoriteMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	if m.FavoriteMoviesFunc != nil {
		return m.FavoriteMoviesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) FavoriteActors(ctx context.Context, userID string) ([]models.Actor, error) {
	if m.FavoriteActorsFunc != nil {
		return m.FavoriteActorsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockUserService) FavoriteDirectors(ctx context.Context, userID string) ([]models.Director, error) {
	if m.FavoriteDirectorsFunc != nil {
		return m.FavoriteDirectorsFunc(ctx, userID)
	}
	return nil, nil
}

// MockMovieService is a mock implementation of MovieServicer.
type MockMovieService struct {
	ListFunc   func(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedMovie], error)
	GetFunc    func(ctx context.Context, id string) (*models.PopulatedMovie, error)
	CreateFunc func(ctx context.Context, req *models.CreateMovieRequest, image *models.Upload) (*models.Movie, error)
}

func (m *MockMovieService) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedMovie], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockMovieService) Get(ctx context.Context, id string) (*models.PopulatedMovie, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMovieService) Create(ctx context.Context, req *models.CreateMovieRequest, image *models.Upload) (*models.Movie, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, image)
	}
	return nil, nil
}

// MockActorService is a mock implementation of ActorServicer.
type MockActorService struct {
	ListFunc   func(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedActor], error)
	GetFunc    func(ctx context.Context, id string) (*models.PopulatedActor, error)
	CreateFunc func(ctx context.Context, req *models.CreateActorRequest, image *models.Upload) (*models.Actor, error)
}

func (m *MockActorService) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedActor], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockActorService) Get(ctx context.Context, id string) (*models.PopulatedActor, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockActorService) Create(ctx context.Context, req *models.CreateActorRequest, image *models.Upload) (*models.Actor, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, image)
	}
	return nil, nil
}

// MockDirectorService is a mock implementation of DirectorServicer.
type MockDirectorService struct {
	ListFunc   func(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedDirector], error)
	GetFunc    func(ctx context.Context, id string) (*models.PopulatedDirector, error)
	CreateFunc func(ctx context.Context, req *models.CreateDirectorRequest, image *models.Upload) (*models.Director, error)
}

func (m *MockDirectorService) List(ctx context.Context, params models.ListParams) (*models.Page[models.PopulatedDirector], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockDirectorService) Get(ctx context.Context, id string) (*models.PopulatedDirector, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDirectorService) Create(ctx context.Context, req *models.CreateDirectorRequest, image *models.Upload) (*models.Director, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req, image)
	}
	return nil, nil
}

// MockFileService is a mock implementation of FileServicer.
type MockFileService struct {
	SaveImageFunc func(ctx context.Context, file *models.Upload) (string, error)
}

func (m *MockFileService) SaveImage(ctx context.Context, file *models.Upload) (string, error) {
	if m.SaveImageFunc != nil {
		return m.SaveImageFunc(ctx, file)
	}
	return "", nil
}

// MockReportService is a mock implementation of ReportServicer.
type MockReportService struct {
	FavoritesReportFunc func(ctx context.Context, userID string, kind models.FavoriteKind, format models.ReportFormat) (*models.Report, error)
}

func (m *MockReportService) FavoritesReport(ctx context.Context, userID string, kind models.FavoriteKind, format models.ReportFormat) (*models.Report, error) {
	if m.FavoritesReportFunc != nil {
		return m.FavoritesReportFunc(ctx, userID, kind, format)
	}
	return nil, nil
}
