package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movie-catalog/internal/cache"
	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handler"
	"movie-catalog/internal/logging"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/router"
	"movie-catalog/internal/service"
	"movie-catalog/internal/storage"
	"movie-catalog/internal/validator"
	"movie-catalog/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Movie Catalog API
// @version         1.0
// @description     A REST API for a movie, actor and director catalog built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Msg("Configuration loaded")

	validator.RegisterCustomValidators()
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB, err := database.NewMongoDB(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoDB.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB.Database); err != nil {
		logging.Warn().Err(err).Msg("Failed to ensure indexes")
	}
	indexCancel()

	// Redis Cache
	redisCache, err := cache.NewRedis(context.Background(), cfg.RedisURI)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisCache.Close()

	files := newStorage(cfg)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	favoriteRepo := repository.NewFavoriteRepository(mongoDB.Database)
	movieRepo := repository.NewMovieRepository(mongoDB.Database)
	actorRepo := repository.NewActorRepository(mongoDB.Database)
	directorRepo := repository.NewDirectorRepository(mongoDB.Database)

	// Service layer
	fileService := service.NewFileService(files)
	movieService := service.NewMovieService(movieRepo, fileService)
	actorService := service.NewActorService(actorRepo, fileService)
	directorService := service.NewDirectorService(directorRepo, fileService)
	userService := service.NewUserService(service.UserServiceConfig{
		UserRepo:     userRepo,
		FavoriteRepo: favoriteRepo,
		MovieRepo:    movieRepo,
		ActorRepo:    actorRepo,
		DirectorRepo: directorRepo,
		Cache:        redisCache,
		JWTManager:   jwtManager,
	})
	authService := service.NewAuthService(userService, jwtManager)
	reportService := service.NewReportService(userService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:     handler.NewAuthHandler(authService),
		UserHandler:     handler.NewUserHandler(userService),
		FavoriteHandler: handler.NewFavoriteHandler(userService),
		MovieHandler:    handler.NewMovieHandler(movieService, cfg.MaxUploadSize),
		ActorHandler:    handler.NewActorHandler(actorService, cfg.MaxUploadSize),
		DirectorHandler: handler.NewDirectorHandler(directorService, cfg.MaxUploadSize),
		ReportHandler:   handler.NewReportHandler(reportService),
		JWTManager:      jwtManager,
		Files:           files,
		CORSOrigin:      cfg.CORSOrigin,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().Str("addr", addr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logging.Info().Msg("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Server shutdown complete")
}

// newStorage builds the upload backend selected by STORAGE_DRIVER.
func newStorage(cfg *config.Config) storage.Storage {
	if cfg.StorageDriver != config.StorageS3 {
		logging.Info().Str("dir", cfg.StorageDir).Msg("Using local file storage")
		return storage.NewLocalStorage(cfg.StorageDir)
	}

	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s3Client.EnsureBucket(ctx); err != nil {
		logging.Fatal().Err(err).Str("bucket", cfg.S3Bucket).Msg("Failed to prepare S3 bucket")
	}

	logging.Info().Str("bucket", cfg.S3Bucket).Msg("Using S3 storage")
	return s3Client
}
