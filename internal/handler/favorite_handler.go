package handler

import (
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/service"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// FavoriteHandler handles the authenticated user's favorites.
type FavoriteHandler struct {
	service service.UserServicer
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(service service.UserServicer) *FavoriteHandler {
	return &FavoriteHandler{service: service}
}

// Add godoc
// @Summary      Add favorite
// @Tags         favorites
// @Produce      json
// @Param        kind  path      string  true  "Favorite kind"  Enums(movie, actor, director)
// @Param        id    path      string  true  "Target ID"
// @Success      200   {object}  response.Response{data=models.FavoriteResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Security     BearerAuth
// @Router       /users/favorites/{kind}/{id} [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	kind, ok := models.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		response.BadRequest(c, apperrors.ErrInvalidFavoriteKind.Error())
		return
	}

	result, err := h.service.AddFavorite(c.Request.Context(), middleware.GetUserID(c), kind, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// Remove godoc
// @Summary      Remove favorite
// @Tags         favorites
// @Produce      json
// @Param        kind  path      string  true  "Favorite kind"  Enums(movie, actor, director)
// @Param        id    path      string  true  "Target ID"
// @Success      200   {object}  response.Response{data=models.FavoriteResponse}
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Security     BearerAuth
// @Router       /users/favorites/{kind}/{id} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	kind, ok := models.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		response.BadRequest(c, apperrors.ErrInvalidFavoriteKind.Error())
		return
	}

	result, err := h.service.RemoveFavorite(c.Request.Context(), middleware.GetUserID(c), kind, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// List godoc
// @Summary      List favorites
// @Description  Full documents of the user's favorites of one kind, in the order they were added
// @Tags         favorites
// @Produce      json
// @Param        kind  path      string  true  "Favorite kind"  Enums(movies, actors, directors)
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Security     BearerAuth
// @Router       /users/favorites/{kind} [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	kind, ok := models.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		response.BadRequest(c, apperrors.ErrInvalidFavoriteKind.Error())
		return
	}

	ctx := c.Request.Context()
	userID := middleware.GetUserID(c)

	var (
		data any
		err  error
	)
	switch kind {
	case models.FavoriteMovie:
		data, err = h.service.FavoriteMovies(ctx, userID)
	case models.FavoriteActor:
		data, err = h.service.FavoriteActors(ctx, userID)
	case models.FavoriteDirector:
		data, err = h.service.FavoriteDirectors(ctx, userID)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, data)
}
