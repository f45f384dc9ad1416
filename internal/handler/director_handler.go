package handler

import (
	"movie-catalog/internal/models"
	"movie-catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectorHandler handles HTTP requests for directors.
type DirectorHandler struct {
	service       service.DirectorServicer
	maxUploadSize int64
}

// NewDirectorHandler creates a new DirectorHandler.
func NewDirectorHandler(service service.DirectorServicer, maxUploadSize int64) *DirectorHandler {
	return &DirectorHandler{service: service, maxUploadSize: maxUploadSize}
}

// List godoc
// @Summary      List directors
// @Description  Paginated directors with movies populated. Filters is a JSON object with birthdayMin, birthdayMax.
// @Tags         directors
// @Produce      json
// @Param        page       query     int     false  "Page number"     default(1)
// @Param        limit      query     int     false  "Page size"       default(3)
// @Param        sortBy     query     string  false  "Sort field"      Enums(name, surname, birthday, placeOfBirth)
// @Param        sortOrder  query     string  false  "Sort direction"  Enums(ASC, DESC)
// @Param        search     query     string  false  "Matches name, surname or place of birth"
// @Param        filters    query     string  false  "Range filters as JSON"
// @Success      200        {object}  response.Response{data=models.Page[models.PopulatedDirector]}
// @Failure      400        {object}  response.Response
// @Router       /directors [get]
func (h *DirectorHandler) List(c *gin.Context) {
	listPage(c, h.service.List)
}

// Get godoc
// @Summary      Get director by ID
// @Tags         directors
// @Produce      json
// @Param        id   path      string  true  "Director ID"
// @Success      200  {object}  response.Response{data=models.PopulatedDirector}
// @Failure      404  {object}  response.Response
// @Router       /directors/{id} [get]
func (h *DirectorHandler) Get(c *gin.Context) {
	getOne(c, h.service.Get)
}

// Create godoc
// @Summary      Create director
// @Tags         directors
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string   true   "Name"
// @Param        surname       formData  string   true   "Surname"
// @Param        description   formData  string   false  "Description"
// @Param        birthday      formData  string   true   "Birthday (YYYY-MM-DD)"
// @Param        dateOfDeath   formData  string   false  "Date of death (YYYY-MM-DD)"
// @Param        placeOfBirth  formData  string   true   "Place of birth"
// @Param        movies        formData  []string  false  "Movie IDs"  collectionFormat(multi)
// @Param        image         formData  file     false  "Photo"
// @Success      201  {object}  response.Response{data=models.Director}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Router       /directors [post]
func (h *DirectorHandler) Create(c *gin.Context) {
	createWithImage(c, h.maxUploadSize, &models.CreateDirectorRequest{}, h.service.Create)
}
