// Package service contains business logic for the application.
package service

import (
	"context"
	"errors"

	"movie-catalog/internal/cache"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/logging"
	"movie-catalog/internal/metrics"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles business logic for user accounts and their favorites.
type UserService struct {
	repo      repository.UserRepository
	favorites repository.FavoriteRepository
	movies    repository.MovieRepository
	actors    repository.ActorRepository
	directors repository.DirectorRepository
	cache     cache.Cache
	tokens    auth.TokenManager
}

// UserServiceConfig holds the dependencies of UserService.
type UserServiceConfig struct {
	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	MovieRepo    repository.MovieRepository
	ActorRepo    repository.ActorRepository
	DirectorRepo repository.DirectorRepository
	Cache        cache.Cache
	JWTManager   auth.TokenManager
}

// NewUserService creates a new UserService.
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{
		repo:      cfg.UserRepo,
		favorites: cfg.FavoriteRepo,
		movies:    cfg.MovieRepo,
		actors:    cfg.ActorRepo,
		directors: cfg.DirectorRepo,
		cache:     cfg.Cache,
		tokens:    cfg.JWTManager,
	}
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	// Try cache first
	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	metrics.RecordCacheLookup(err == nil && found)
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if err := s.withFavorites(ctx, dbUser); err != nil {
		return nil, err
	}

	// Cache is best effort
	if err := s.cache.Set(ctx, cacheKey, dbUser, cache.UserTTL); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", id).Msg("Failed to cache user")
	}

	return dbUser, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if err := s.withFavorites(ctx, &users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// GetByEmail retrieves a user by email. The stored password hash is kept.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.withFavorites(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser hashes the password and stores a new user.
func (s *UserService) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, error) {
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	for _, kind := range models.FavoriteKinds {
		user.SetFavorites(kind, nil)
	}
	return user, nil
}

// UpdateUser changes profile fields. A new password needs the current one in
// OldPassword. The response carries the user as it was before the update and
// a token for the updated email.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	changes := &models.UserChanges{Name: req.Name, Surname: req.Surname}

	if req.Password != nil {
		if req.OldPassword == nil || !auth.PasswordMatches(*req.OldPassword, user.Password) {
			return nil, apperrors.ErrIncorrectPassword
		}
		if auth.PasswordMatches(*req.Password, user.Password) {
			return nil, apperrors.ErrPasswordUnchanged
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	if req.Email != nil && *req.Email != user.Email {
		changes.Email = req.Email
	}

	updated, err := s.repo.Update(ctx, objectID, changes)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(updated.ID.Hex(), updated.Email)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	if err := s.withFavorites(ctx, user); err != nil {
		return nil, err
	}
	return &models.UpdateUserResponse{User: *user, Token: token}, nil
}

// AddFavorite links a catalog entry to the user. Adding an entry twice fails
// with ErrFavoriteAlreadyExists.
func (s *UserService) AddFavorite(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error) {
	if userID == "" || targetID == "" {
		return nil, apperrors.ErrMissingID
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	target, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, apperrors.ErrFavoriteTargetNotFound
	}
	exists, err := s.targetExists(ctx, kind, target)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrFavoriteTargetNotFound
	}

	if err := s.favorites.Add(ctx, user.ID, kind, target); err != nil {
		return nil, err
	}
	metrics.RecordFavoriteChange("add", string(kind))
	s.invalidate(ctx, userID)

	return s.favoriteResponse(ctx, user, kind.Title()+" added to favorites")
}

// RemoveFavorite unlinks a catalog entry from the user.
func (s *UserService) RemoveFavorite(ctx context.Context, userID string, kind models.FavoriteKind, targetID string) (*models.FavoriteResponse, error) {
	if userID == "" || targetID == "" {
		return nil, apperrors.ErrMissingID
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	target, err := primitive.ObjectIDFromHex(targetID)
	if err != nil {
		return nil, apperrors.ErrFavoriteNotFound
	}

	if err := s.favorites.Remove(ctx, user.ID, kind, target); err != nil {
		return nil, err
	}
	metrics.RecordFavoriteChange("remove", string(kind))
	s.invalidate(ctx, userID)

	return s.favoriteResponse(ctx, user, kind.Title()+" removed from favorites")
}

// FavoriteMovies returns the user's favorite movies in the order they were added.
func (s *UserService) FavoriteMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.favorites.Movies(ctx, user.ID)
}

// FavoriteActors returns the user's favorite actors in the order they were added.
func (s *UserService) FavoriteActors(ctx context.Context, userID string) ([]models.Actor, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.favorites.Actors(ctx, user.ID)
}

// FavoriteDirectors returns the user's favorite directors in the order they were added.
func (s *UserService) FavoriteDirectors(ctx context.Context, userID string) ([]models.Director, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.favorites.Directors(ctx, user.ID)
}

func (s *UserService) findUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, objectID)
}

func (s *UserService) targetExists(ctx context.Context, kind models.FavoriteKind, id primitive.ObjectID) (bool, error) {
	switch kind {
	case models.FavoriteMovie:
		return s.movies.Exists(ctx, id)
	case models.FavoriteActor:
		return s.actors.Exists(ctx, id)
	case models.FavoriteDirector:
		return s.directors.Exists(ctx, id)
	}
	return false, apperrors.ErrInvalidFavoriteKind
}

// withFavorites fills the favorite id lists of user.
func (s *UserService) withFavorites(ctx context.Context, user *models.User) error {
	ids, err := s.favorites.IDs(ctx, user.ID)
	if err != nil {
		return err
	}
	for _, kind := range models.FavoriteKinds {
		user.SetFavorites(kind, ids[kind])
	}
	return nil
}

func (s *UserService) favoriteResponse(ctx context.Context, user *models.User, message string) (*models.FavoriteResponse, error) {
	if err := s.withFavorites(ctx, user); err != nil {
		return nil, err
	}
	return &models.FavoriteResponse{Message: message, User: *user}, nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.UserCacheKey(id)); err != nil && !errors.Is(err, context.Canceled) {
		logging.Ctx(ctx).Warn().Err(err).Str("user_id", id).Msg("Failed to invalidate cached user")
	}
}
