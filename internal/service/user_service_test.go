package service

import (
	"context"
	"testing"
	"time"

	cachemocks "movie-catalog/internal/cache/mocks"
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
	repomocks "movie-catalog/internal/repository/mocks"
	"movie-catalog/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type userServiceDeps struct {
	users     *repomocks.MockUserRepository
	favorites *repomocks.MockFavoriteRepository
	movies    *repomocks.MockMovieRepository
	actors    *repomocks.MockActorRepository
	directors *repomocks.MockDirectorRepository
	cache     *cachemocks.MockCache
	jwt       *auth.JWTManager
}

func newTestUserService(t *testing.T) (*UserService, *userServiceDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &userServiceDeps{
		users:     repomocks.NewMockUserRepository(ctrl),
		favorites: repomocks.NewMockFavoriteRepository(ctrl),
		movies:    repomocks.NewMockMovieRepository(ctrl),
		actors:    repomocks.NewMockActorRepository(ctrl),
		directors: repomocks.NewMockDirectorRepository(ctrl),
		cache:     cachemocks.NewMockCache(ctrl),
		jwt:       auth.NewJWTManager("test-secret", time.Hour),
	}

	service := NewUserService(UserServiceConfig{
		UserRepo:     deps.users,
		FavoriteRepo: deps.favorites,
		MovieRepo:    deps.movies,
		ActorRepo:    deps.actors,
		DirectorRepo: deps.directors,
		Cache:        deps.cache,
		JWTManager:   deps.jwt,
	})
	return service, deps
}

func noFavorites() map[models.FavoriteKind][]primitive.ObjectID {
	return map[models.FavoriteKind][]primitive.ObjectID{
		models.FavoriteMovie:    {},
		models.FavoriteActor:    {},
		models.FavoriteDirector: {},
	}
}

func TestNewUserService(t *testing.T) {
	service, deps := newTestUserService(t)

	assert.NotNil(t, service)
	assert.Equal(t, deps.users, service.repo)
	assert.Equal(t, deps.cache, service.cache)
	assert.Equal(t, deps.favorites, service.favorites)
}

func TestUserService_GetUser(t *testing.T) {
	validUserID := primitive.NewObjectID()
	cacheKey := "user:" + validUserID.Hex()

	t.Run("returns user from cache when cached", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), cacheKey, gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest any) (bool, error) {
				user := dest.(*models.User)
				*user = models.User{ID: validUserID, Email: "test@example.com"}
				return true, nil
			})

		user, err := service.GetUser(context.Background(), validUserID.Hex())

		require.NoError(t, err)
		assert.Equal(t, validUserID, user.ID)
		assert.Equal(t, "test@example.com", user.Email)
	})

	t.Run("loads user and favorites on cache miss and caches result", func(t *testing.T) {
		service, deps := newTestUserService(t)
		movieID := primitive.NewObjectID()
		favorites := noFavorites()
		favorites[models.FavoriteMovie] = []primitive.ObjectID{movieID}

		deps.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(false, nil)
		deps.users.EXPECT().FindByID(gomock.Any(), validUserID).
			Return(&models.User{ID: validUserID, Email: "test@example.com"}, nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), validUserID).Return(favorites, nil)
		deps.cache.EXPECT().
			Set(gomock.Any(), cacheKey, gomock.Any(), 15*time.Minute).
			Return(nil)

		user, err := service.GetUser(context.Background(), validUserID.Hex())

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{movieID}, user.Movies)
		assert.Empty(t, user.Actors)
		assert.NotNil(t, user.Directors)
	})

	t.Run("returns not found for invalid user ID format", func(t *testing.T) {
		service, _ := newTestUserService(t)

		user, err := service.GetUser(context.Background(), "invalid-id")

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("returns error when user not found in database", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(false, nil)
		deps.users.EXPECT().FindByID(gomock.Any(), validUserID).Return(nil, apperrors.ErrUserNotFound)

		user, err := service.GetUser(context.Background(), validUserID.Hex())

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("continues on cache errors", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(false, assert.AnError)
		deps.users.EXPECT().FindByID(gomock.Any(), validUserID).Return(&models.User{ID: validUserID}, nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), validUserID).Return(noFavorites(), nil)
		deps.cache.EXPECT().Set(gomock.Any(), cacheKey, gomock.Any(), gomock.Any()).Return(assert.AnError)

		user, err := service.GetUser(context.Background(), validUserID.Hex())

		require.NoError(t, err)
		assert.Equal(t, validUserID, user.ID)
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	t.Run("fills favorites of every user", func(t *testing.T) {
		service, deps := newTestUserService(t)
		a, b := primitive.NewObjectID(), primitive.NewObjectID()

		deps.users.EXPECT().FindAll(gomock.Any()).Return([]models.User{{ID: a}, {ID: b}}, nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), a).Return(noFavorites(), nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), b).Return(noFavorites(), nil)

		users, err := service.GetAllUsers(context.Background())

		require.NoError(t, err)
		assert.Len(t, users, 2)
		assert.NotNil(t, users[1].Movies)
	})

	t.Run("returns repository error", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindAll(gomock.Any()).Return(nil, assert.AnError)

		users, err := service.GetAllUsers(context.Background())

		assert.Nil(t, users)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUserService_CreateUser(t *testing.T) {
	req := &models.CreateUserRequest{Name: "John", Surname: "Doe", Email: "john@example.com", Password: "secret123"}

	t.Run("hashes the password and starts with empty favorites", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, user *models.User) error {
				assert.NotEqual(t, req.Password, user.Password)
				assert.NoError(t, auth.CheckPassword(req.Password, user.Password))
				user.ID = primitive.NewObjectID()
				return nil
			})

		user, err := service.CreateUser(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "Doe", user.Surname)
		assert.Equal(t, []primitive.ObjectID{}, user.Movies)
		assert.Equal(t, []primitive.ObjectID{}, user.Actors)
		assert.Equal(t, []primitive.ObjectID{}, user.Directors)
	})

	t.Run("returns conflict for a taken email", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)

		user, err := service.CreateUser(context.Background(), req)

		assert.Nil(t, user)
		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := primitive.NewObjectID()
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	stored := func() *models.User {
		return &models.User{ID: userID, Name: "John", Email: "john@example.com", Password: hash}
	}
	ptr := func(s string) *string { return &s }

	t.Run("changes the password when the old one matches", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored(), nil)
		deps.users.EXPECT().
			Update(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, changes *models.UserChanges) (*models.User, error) {
				require.NotNil(t, changes.PasswordHash)
				assert.NoError(t, auth.CheckPassword("newsecret", *changes.PasswordHash))
				assert.Nil(t, changes.Email)
				u := stored()
				u.Password = *changes.PasswordHash
				return u, nil
			})
		deps.cache.EXPECT().Delete(gomock.Any(), "user:"+userID.Hex()).Return(nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), userID).Return(noFavorites(), nil)

		resp, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{
			Password:    ptr("newsecret"),
			OldPassword: ptr("secret123"),
		})

		require.NoError(t, err)
		claims, err := deps.jwt.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, userID.Hex(), claims.UserID)
		assert.Equal(t, "john@example.com", claims.Email)
	})

	t.Run("returns the profile as it was before the update", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored(), nil)
		deps.users.EXPECT().
			Update(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id primitive.ObjectID, changes *models.UserChanges) (*models.User, error) {
				u := stored()
				u.Name = *changes.Name
				u.Email = *changes.Email
				return u, nil
			})
		deps.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), userID).Return(noFavorites(), nil)

		resp, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{
			Name:  ptr("Jane"),
			Email: ptr("jane@example.com"),
		})

		require.NoError(t, err)
		assert.Equal(t, "John", resp.User.Name)
		assert.Equal(t, "john@example.com", resp.User.Email)
		claims, err := deps.jwt.ValidateToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", claims.Email)
	})

	t.Run("rejects a password change without the old password", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored(), nil)

		resp, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{
			Password: ptr("newsecret"),
		})

		assert.Nil(t, resp)
		assert.Equal(t, apperrors.ErrIncorrectPassword, err)
	})

	t.Run("rejects a wrong old password", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored(), nil)

		_, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{
			Password:    ptr("newsecret"),
			OldPassword: ptr("wrong"),
		})

		assert.Equal(t, apperrors.ErrIncorrectPassword, err)
	})

	t.Run("rejects an unchanged password", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored(), nil)

		_, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{
			Password:    ptr("secret123"),
			OldPassword: ptr("secret123"),
		})

		assert.Equal(t, apperrors.ErrPasswordUnchanged, err)
	})

	t.Run("returns conflict when the email belongs to someone else", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(stored(), nil)
		deps.users.EXPECT().Update(gomock.Any(), userID, gomock.Any()).Return(nil, apperrors.ErrUserAlreadyExists)

		_, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{
			Email: ptr("taken@example.com"),
		})

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})

	t.Run("returns not found for unknown users", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)

		_, err := service.UpdateUser(context.Background(), userID.Hex(), &models.UpdateUserRequest{Name: ptr("X")})

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserService_AddFavorite(t *testing.T) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	t.Run("adds the movie and returns refreshed favorites", func(t *testing.T) {
		service, deps := newTestUserService(t)
		favorites := noFavorites()
		favorites[models.FavoriteMovie] = []primitive.ObjectID{movieID}

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.movies.EXPECT().Exists(gomock.Any(), movieID).Return(true, nil)
		deps.favorites.EXPECT().Add(gomock.Any(), userID, models.FavoriteMovie, movieID).Return(nil)
		deps.cache.EXPECT().Delete(gomock.Any(), "user:"+userID.Hex()).Return(nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), userID).Return(favorites, nil)

		resp, err := service.AddFavorite(context.Background(), userID.Hex(), models.FavoriteMovie, movieID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Movie added to favorites", resp.Message)
		assert.Equal(t, []primitive.ObjectID{movieID}, resp.User.Movies)
	})

	t.Run("checks the collection matching the kind", func(t *testing.T) {
		service, deps := newTestUserService(t)
		actorID := primitive.NewObjectID()

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.actors.EXPECT().Exists(gomock.Any(), actorID).Return(false, nil)

		_, err := service.AddFavorite(context.Background(), userID.Hex(), models.FavoriteActor, actorID.Hex())

		assert.Equal(t, apperrors.ErrFavoriteTargetNotFound, err)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		service, deps := newTestUserService(t)
		directorID := primitive.NewObjectID()

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.directors.EXPECT().Exists(gomock.Any(), directorID).Return(true, nil)
		deps.favorites.EXPECT().Add(gomock.Any(), userID, models.FavoriteDirector, directorID).
			Return(apperrors.ErrFavoriteAlreadyExists)

		_, err := service.AddFavorite(context.Background(), userID.Hex(), models.FavoriteDirector, directorID.Hex())

		assert.Equal(t, apperrors.ErrFavoriteAlreadyExists, err)
	})

	t.Run("requires both ids", func(t *testing.T) {
		service, _ := newTestUserService(t)

		_, err := service.AddFavorite(context.Background(), "", models.FavoriteMovie, movieID.Hex())
		assert.Equal(t, apperrors.ErrMissingID, err)

		_, err = service.AddFavorite(context.Background(), userID.Hex(), models.FavoriteMovie, "")
		assert.Equal(t, apperrors.ErrMissingID, err)
	})

	t.Run("returns not found for unknown users", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)

		_, err := service.AddFavorite(context.Background(), userID.Hex(), models.FavoriteMovie, movieID.Hex())

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})

	t.Run("treats a malformed target id as missing", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)

		_, err := service.AddFavorite(context.Background(), userID.Hex(), models.FavoriteMovie, "nope")

		assert.Equal(t, apperrors.ErrFavoriteTargetNotFound, err)
	})
}

func TestUserService_RemoveFavorite(t *testing.T) {
	userID := primitive.NewObjectID()
	movieID := primitive.NewObjectID()

	t.Run("removes the movie", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.favorites.EXPECT().Remove(gomock.Any(), userID, models.FavoriteMovie, movieID).Return(nil)
		deps.cache.EXPECT().Delete(gomock.Any(), "user:"+userID.Hex()).Return(nil)
		deps.favorites.EXPECT().IDs(gomock.Any(), userID).Return(noFavorites(), nil)

		resp, err := service.RemoveFavorite(context.Background(), userID.Hex(), models.FavoriteMovie, movieID.Hex())

		require.NoError(t, err)
		assert.Equal(t, "Movie removed from favorites", resp.Message)
		assert.Empty(t, resp.User.Movies)
	})

	t.Run("returns not found when the movie is not a favorite", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.favorites.EXPECT().Remove(gomock.Any(), userID, models.FavoriteMovie, movieID).
			Return(apperrors.ErrFavoriteNotFound)

		_, err := service.RemoveFavorite(context.Background(), userID.Hex(), models.FavoriteMovie, movieID.Hex())

		assert.Equal(t, apperrors.ErrFavoriteNotFound, err)
	})
}

func TestUserService_FavoriteLists(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("movies", func(t *testing.T) {
		service, deps := newTestUserService(t)
		movies := []models.Movie{{ID: primitive.NewObjectID()}}

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.favorites.EXPECT().Movies(gomock.Any(), userID).Return(movies, nil)

		got, err := service.FavoriteMovies(context.Background(), userID.Hex())

		require.NoError(t, err)
		assert.Equal(t, movies, got)
	})

	t.Run("actors", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
		deps.favorites.EXPECT().Actors(gomock.Any(), userID).Return([]models.Actor{}, nil)

		got, err := service.FavoriteActors(context.Background(), userID.Hex())

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("directors of an unknown user", func(t *testing.T) {
		service, deps := newTestUserService(t)

		deps.users.EXPECT().FindByID(gomock.Any(), userID).Return(nil, apperrors.ErrUserNotFound)

		got, err := service.FavoriteDirectors(context.Background(), userID.Hex())

		assert.Nil(t, got)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}
