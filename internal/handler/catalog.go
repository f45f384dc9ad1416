package handler

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// listPage binds the listing query and responds with one page.
func listPage[T any](c *gin.Context, list func(context.Context, models.ListParams) (*models.Page[T], error)) {
	var params models.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, err := list(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, page)
}

// getOne responds with the entity named by the :id path parameter.
func getOne[T any](c *gin.Context, get func(context.Context, string) (*T, error)) {
	entity, err := get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, entity)
}

// createWithImage binds req from the form, opens the optional image and
// responds 201 with the created entity.
func createWithImage[R, T any](c *gin.Context, maxUploadSize int64, req *R, create func(context.Context, *R, *models.Upload) (*T, error)) {
	if err := c.ShouldBind(req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	image, closeImage, err := formImage(c, maxUploadSize)
	if err != nil {
		respondError(c, err)
		return
	}
	defer closeImage()

	entity, err := create(c.Request.Context(), req, image)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, entity)
}
