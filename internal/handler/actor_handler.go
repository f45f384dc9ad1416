package handler

import (
	"movie-catalog/internal/models"
	"movie-catalog/internal/service"

	"github.com/gin-gonic/gin"
)

// ActorHandler handles HTTP requests for actors.
type ActorHandler struct {
	service       service.ActorServicer
	maxUploadSize int64
}

// NewActorHandler creates a new ActorHandler.
func NewActorHandler(service service.ActorServicer, maxUploadSize int64) *ActorHandler {
	return &ActorHandler{service: service, maxUploadSize: maxUploadSize}
}

// List godoc
// @Summary      List actors
// @Description  Paginated actors with movies populated. Filters is a JSON object with heightMin, heightMax, birthdayMin, birthdayMax.
// @Tags         actors
// @Produce      json
// @Param        page       query     int     false  "Page number"     default(1)
// @Param        limit      query     int     false  "Page size"       default(3)
// @Param        sortBy     query     string  false  "Sort field"      Enums(name, surname, birthday, height, placeOfBirth)
// @Param        sortOrder  query     string  false  "Sort direction"  Enums(ASC, DESC)
// @Param        search     query     string  false  "Matches name, surname or place of birth"
// @Param        filters    query     string  false  "Range filters as JSON"
// @Success      200        {object}  response.Response{data=models.Page[models.PopulatedActor]}
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Router       /actors [get]
func (h *ActorHandler) List(c *gin.Context) {
	listPage(c, h.service.List)
}

// Get godoc
// @Summary      Get actor by ID
// @Tags         actors
// @Produce      json
// @Param        id   path      string  true  "Actor ID"
// @Success      200  {object}  response.Response{data=models.PopulatedActor}
// @Failure      404  {object}  response.Response
// @Router       /actors/{id} [get]
func (h *ActorHandler) Get(c *gin.Context) {
	getOne(c, h.service.Get)
}

// Create godoc
// @Summary      Create actor
// @Tags         actors
// @Accept       multipart/form-data
// @Produce      json
// @Param        name          formData  string   true   "Name"
// @Param        surname       formData  string   true   "Surname"
// @Param        description   formData  string   false  "Description"
// @Param        birthday      formData  string   true   "Birthday (YYYY-MM-DD)"
// @Param        dateOfDeath   formData  string   false  "Date of death (YYYY-MM-DD)"
// @Param        placeOfBirth  formData  string   true   "Place of birth"
// @Param        height        formData  number   false  "Height in cm"
// @Param        movies        formData  []string  false  "Movie IDs"  collectionFormat(multi)
// @Param        image         formData  file     false  "Photo"
// @Success      201  {object}  response.Response{data=models.Actor}
// @Failure      400  {object}  response.Response
// @Failure      413  {object}  response.Response
// @Router       /actors [post]
func (h *ActorHandler) Create(c *gin.Context) {
	createWithImage(c, h.maxUploadSize, &models.CreateActorRequest{}, h.service.Create)
}
