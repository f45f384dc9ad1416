package service

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/models"
	repomocks "movie-catalog/internal/repository/mocks"
	"movie-catalog/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func TestMovieService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockMovieRepository(ctrl)
	params := models.ListParams{Page: 2, Limit: 3, Search: "incep"}
	page := models.NewPage([]models.PopulatedMovie{{ID: primitive.NewObjectID()}}, 4, 2, 3)

	repo.EXPECT().List(gomock.Any(), params).Return(&page, nil)

	service := NewMovieService(repo, &mocks.MockFileService{})
	got, err := service.List(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, &page, got)
}

func TestMovieService_Get(t *testing.T) {
	t.Run("returns the populated movie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockMovieRepository(ctrl)
		id := primitive.NewObjectID()
		movie := &models.PopulatedMovie{ID: id, Actors: []models.Actor{{ID: primitive.NewObjectID()}}}

		repo.EXPECT().FindByID(gomock.Any(), id).Return(movie, nil)

		got, err := NewMovieService(repo, nil).Get(context.Background(), id.Hex())

		require.NoError(t, err)
		assert.Equal(t, movie, got)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		got, err := NewMovieService(repomocks.NewMockMovieRepository(ctrl), nil).Get(context.Background(), "123")

		assert.Nil(t, got)
		assert.Equal(t, apperrors.ErrMovieNotFound, err)
	})
}

func TestMovieService_Create(t *testing.T) {
	actorID := primitive.NewObjectID()
	newReq := func() *models.CreateMovieRequest {
		return &models.CreateMovieRequest{
			Title:        "Inception",
			CreationDate: "2010-07-16",
			Genre:        "Sci-Fi",
			Budget:       160000000,
			Actors:       []string{actorID.Hex()},
		}
	}

	t.Run("stores the movie without an image", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockMovieRepository(ctrl)
		files := &mocks.MockFileService{
			SaveImageFunc: func(ctx context.Context, file *models.Upload) (string, error) {
				t.Fatal("no upload expected")
				return "", nil
			},
		}

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, movie *models.Movie) error {
				movie.ID = primitive.NewObjectID()
				return nil
			})

		movie, err := NewMovieService(repo, files).Create(context.Background(), newReq(), nil)

		require.NoError(t, err)
		assert.False(t, movie.ID.IsZero())
		assert.Nil(t, movie.Image)
		assert.Equal(t, time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC), movie.CreationDate)
		assert.Equal(t, []primitive.ObjectID{actorID}, movie.Actors)
		assert.Equal(t, []primitive.ObjectID{}, movie.Directors)
	})

	t.Run("stores the uploaded image name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockMovieRepository(ctrl)
		files := &mocks.MockFileService{
			SaveImageFunc: func(ctx context.Context, file *models.Upload) (string, error) {
				assert.Equal(t, "poster.png", file.Filename)
				return "generated.png", nil
			},
		}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		upload := &models.Upload{Filename: "poster.png", Body: strings.NewReader("png")}
		movie, err := NewMovieService(repo, files).Create(context.Background(), newReq(), upload)

		require.NoError(t, err)
		require.NotNil(t, movie.Image)
		assert.Equal(t, "generated.png", *movie.Image)
	})

	t.Run("does not store the movie when the upload is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		files := &mocks.MockFileService{
			SaveImageFunc: func(ctx context.Context, file *models.Upload) (string, error) {
				return "", apperrors.ErrUnsupportedFileFormat
			},
		}

		upload := &models.Upload{Filename: "virus.exe", Body: strings.NewReader("MZ")}
		movie, err := NewMovieService(repomocks.NewMockMovieRepository(ctrl), files).Create(context.Background(), newReq(), upload)

		assert.Nil(t, movie)
		assert.Equal(t, apperrors.ErrUnsupportedFileFormat, err)
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		req := newReq()
		req.Directors = []string{"not-an-id"}

		_, err := NewMovieService(repomocks.NewMockMovieRepository(ctrl), nil).Create(context.Background(), req, nil)

		assert.Equal(t, apperrors.ErrInvalidReference, err)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		req := newReq()
		req.CreationDate = "16/07/2010"

		_, err := NewMovieService(repomocks.NewMockMovieRepository(ctrl), nil).Create(context.Background(), req, nil)

		assert.Equal(t, apperrors.ErrInvalidDate, err)
	})
}

func TestActorService(t *testing.T) {
	t.Run("create keeps height and optional death date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockActorRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		height := 183.0
		death := "2020-02-01"
		req := &models.CreateActorRequest{
			CreatePersonRequest: models.CreatePersonRequest{
				Name: "Leonardo", Surname: "DiCaprio", Birthday: "1974-11-11",
				DateOfDeath: &death, PlaceOfBirth: "Los Angeles",
			},
			Height: &height,
		}

		actor, err := NewActorService(repo, nil).Create(context.Background(), req, nil)

		require.NoError(t, err)
		assert.Equal(t, &height, actor.Height)
		require.NotNil(t, actor.DateOfDeath)
		assert.Equal(t, 2020, actor.DateOfDeath.Year())
		assert.Equal(t, []primitive.ObjectID{}, actor.Movies)
	})

	t.Run("get with malformed id is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		_, err := NewActorService(repomocks.NewMockActorRepository(ctrl), nil).Get(context.Background(), "x")

		assert.Equal(t, apperrors.ErrActorNotFound, err)
	})

	t.Run("list delegates to the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockActorRepository(ctrl)
		repo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidFilters)

		_, err := NewActorService(repo, nil).List(context.Background(), models.ListParams{Filters: "{"})

		assert.Equal(t, apperrors.ErrInvalidFilters, err)
	})
}

func TestDirectorService(t *testing.T) {
	t.Run("create links movies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		movieID := primitive.NewObjectID()
		repo := repomocks.NewMockDirectorRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		req := &models.CreateDirectorRequest{CreatePersonRequest: models.CreatePersonRequest{
			Name: "Christopher", Surname: "Nolan", Birthday: "1970-07-30", PlaceOfBirth: "London",
			Movies: []string{movieID.Hex()},
		}}

		director, err := NewDirectorService(repo, nil).Create(context.Background(), req, nil)

		require.NoError(t, err)
		assert.Equal(t, []primitive.ObjectID{movieID}, director.Movies)
		assert.Nil(t, director.DateOfDeath)
	})

	t.Run("get returns repository not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		id := primitive.NewObjectID()
		repo := repomocks.NewMockDirectorRepository(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, apperrors.ErrDirectorNotFound)

		_, err := NewDirectorService(repo, nil).Get(context.Background(), id.Hex())

		assert.Equal(t, apperrors.ErrDirectorNotFound, err)
	})
}
