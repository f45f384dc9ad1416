package handler

import (
	"movie-catalog/internal/models"
	"movie-catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// MovieHandler handles HTTP requests for movies.
type MovieHandler struct {
	service       service.MovieServicer
	maxUploadSize int64
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(service service.MovieServicer, maxUploadSize int64) *MovieHandler {
	return &MovieHandler{service: service, maxUploadSize: maxUploadSize}
}

// List godoc
// @Summary      List movies
// @Description  Paginated movies with actors and directors populated. Filters is a JSON object with creationDateMin, creationDateMax, budgetMin, budgetMax.
// @Tags         movies
// @Produce      json
// @Param        page       query     int     false  "Page number"     default(1)
// @Param        limit      query     int     false  "Page size"       default(3)
// @Param        sortBy     query     string  false  "Sort field"      Enums(title, genre, creationDate, budget)
// @Param        sortOrder  query     string  false  "Sort direction"  Enums(ASC, DESC)
// @Param        search     query     string  false  "Matches title or genre"
// @Param        filters    query     string  false  "Range filters as JSON"
// @Success      200        {object}  response.Response{data=models.Page[models.PopulatedMovie]}
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /movies [get]
func (h *MovieHandler) List(c *gin.Context) {
	listPage(c, h.service.List)
}

// Get godoc
// @Summary      Get movie by ID
// @Tags         movies
// @Produce      json
// @Param        id   path      string  true  "Movie ID"
// @Success      200  {object}  response.Response{data=models.PopulatedMovie}
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /movies/{id} [get]
func (h *MovieHandler) Get(c *gin.Context) {
	getOne(c, h.service.Get)
}

// Create godoc
// @Summary      Create movie
// @Description  Multipart form; the image file is optional
// @Tags         movies
// @Accept       multipart/form-data
// @Produce      json
// @Param        title         formData  string  true   "Title"
// @Param        description   formData  string  false  "Description"
// @Param        creationDate  formData  string  true   "Release date (YYYY-MM-DD)"
// @Param        genre         formData  string  true   "Genre"
// @Param        budget        formData  int     false  "Budget"
// @Param        actors        formData  []string  false  "Actor IDs"     collectionFormat(multi)
// @Param        directors     formData  []string  false  "Director IDs"  collectionFormat(multi)
// @Param        image         formData  file    false  "Poster"
// @Success      201  {object}  response.Response{data=models.Movie}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /movies [post]
func (h *MovieHandler) Create(c *gin.Context) {
	createWithImage(c, h.maxUploadSize, &models.CreateMovieRequest{}, h.service.Create)
}
