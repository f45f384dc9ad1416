// Package router sets up HTTP routes for the API.
package router

import (
	"errors"
	"net/http"
	"strings"

	_ "movie-catalog/swagger" // Import generated swagger docs

	"movie-catalog/internal/handler"
	"movie-catalog/internal/logging"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/storage"
	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	FavoriteHandler *handler.FavoriteHandler
	MovieHandler    *handler.MovieHandler
	ActorHandler    *handler.ActorHandler
	DirectorHandler *handler.DirectorHandler
	ReportHandler   *handler.ReportHandler
	JWTManager      auth.TokenManager
	// Files serves uploaded images at the application root. Nil disables it.
	Files      storage.Storage
	CORSOrigin string
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigin),
		gin.Recovery(),
	)

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(cfg.JWTManager)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/registration", cfg.AuthHandler.Register)
			authRoutes.GET("/check", requireAuth, cfg.AuthHandler.Check)
		}

		movies := api.Group("/movies")
		{
			movies.GET("", cfg.MovieHandler.List)
			movies.GET("/:id", cfg.MovieHandler.Get)
			movies.POST("", cfg.MovieHandler.Create)
		}

		actors := api.Group("/actors")
		{
			actors.GET("", cfg.ActorHandler.List)
			actors.GET("/:id", cfg.ActorHandler.Get)
			actors.POST("", cfg.ActorHandler.Create)
		}

		directors := api.Group("/directors")
		{
			directors.GET("", cfg.DirectorHandler.List)
			directors.GET("/:id", cfg.DirectorHandler.Get)
			directors.POST("", cfg.DirectorHandler.Create)
		}

		users := api.Group("/users")
		{
			users.GET("", cfg.UserHandler.GetAllUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.POST("", cfg.UserHandler.CreateUser)
			users.PATCH("/:id", requireAuth, middleware.SelfOnly("id"), cfg.UserHandler.UpdateUser)

			favorites := users.Group("/favorites")
			favorites.Use(requireAuth)
			{
				favorites.GET("/:kind", cfg.FavoriteHandler.List)
				favorites.POST("/:kind/:id", cfg.FavoriteHandler.Add)
				favorites.DELETE("/:kind/:id", cfg.FavoriteHandler.Remove)
			}
		}

		reports := api.Group("/reports")
		reports.Use(requireAuth)
		{
			reports.GET("/favorites/:kind/:format", cfg.ReportHandler.Favorites)
		}
	}

	r.NoRoute(serveFiles(cfg.Files))

	return r
}

// serveFiles streams stored uploads requested as /<name>. Anything else,
// or a missing object, gets the JSON 404 envelope.
func serveFiles(files storage.Storage) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimPrefix(c.Request.URL.Path, "/")
		if files == nil || c.Request.Method != http.MethodGet || name == "" || strings.Contains(name, "/") {
			response.NotFound(c, "route not found")
			return
		}

		body, err := files.GetObject(c.Request.Context(), name)
		if err != nil {
			if !errors.Is(err, storage.ErrObjectNotFound) {
				logging.Ctx(c.Request.Context()).Error().Err(err).Str("key", name).Msg("Failed to read stored file")
			}
			response.NotFound(c, "route not found")
			return
		}
		defer body.Close()

		response.Stream(c, name, body)
	}
}
