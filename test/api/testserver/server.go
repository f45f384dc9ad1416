//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"movie-catalog/internal/cache"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handler"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/router"
	"movie-catalog/internal/service"
	"movie-catalog/internal/storage"
	"movie-catalog/pkg/auth"
	"movie-catalog/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestMaxUploadSize caps uploaded images in tests.
	TestMaxUploadSize = 1 << 20
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo     repository.UserRepository
	FavoriteRepo repository.FavoriteRepository
	MovieRepo    repository.MovieRepository
	ActorRepo    repository.ActorRepository
	DirectorRepo repository.DirectorRepository

	// Services (for direct service access in tests)
	UserService service.UserServicer

	JWTManager *auth.JWTManager
	Storage    *storage.S3Client
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	redisCache, err := cache.NewRedis(ctx, redisContainer.URI)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)
	if err := s3Client.EnsureBucket(ctx); err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		_ = minioContainer.Cleanup(ctx)
		return nil, err
	}

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	favoriteRepo := repository.NewFavoriteRepository(mongoDB.Database)
	movieRepo := repository.NewMovieRepository(mongoDB.Database)
	actorRepo := repository.NewActorRepository(mongoDB.Database)
	directorRepo := repository.NewDirectorRepository(mongoDB.Database)

	// Service layer
	fileService := service.NewFileService(s3Client)
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo:     userRepo,
		FavoriteRepo: favoriteRepo,
		MovieRepo:    movieRepo,
		ActorRepo:    actorRepo,
		DirectorRepo: directorRepo,
		Cache:        redisCache,
		JWTManager:   jwtManager,
	})

	r := router.Setup(&router.Config{
		AuthHandler:     handler.NewAuthHandler(service.NewAuthService(userService, jwtManager)),
		UserHandler:     handler.NewUserHandler(userService),
		FavoriteHandler: handler.NewFavoriteHandler(userService),
		MovieHandler:    handler.NewMovieHandler(service.NewMovieService(movieRepo, fileService), TestMaxUploadSize),
		ActorHandler:    handler.NewActorHandler(service.NewActorService(actorRepo, fileService), TestMaxUploadSize),
		DirectorHandler: handler.NewDirectorHandler(service.NewDirectorService(directorRepo, fileService), TestMaxUploadSize),
		ReportHandler:   handler.NewReportHandler(service.NewReportService(userService)),
		JWTManager:      jwtManager,
		Files:           s3Client,
		CORSOrigin:      "*",
	})

	ts := &TestServer{
		Router:       r,
		MongoDB:      mongoDB,
		Redis:        redisContainer,
		MinIO:        minioContainer,
		UserRepo:     userRepo,
		FavoriteRepo: favoriteRepo,
		MovieRepo:    movieRepo,
		ActorRepo:    actorRepo,
		DirectorRepo: directorRepo,
		UserService:  userService,
		JWTManager:   jwtManager,
		Storage:      s3Client,
	}
	return ts, nil
}

// EnsureIndexes recreates the unique indexes dropped by CleanupBetweenTests.
func (ts *TestServer) EnsureIndexes(ctx context.Context) error {
	return database.EnsureIndexes(ctx, ts.MongoDB.Database)
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
