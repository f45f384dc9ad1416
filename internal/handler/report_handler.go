package handler

import (
	"errors"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/service"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves favorites reports as file downloads.
type ReportHandler struct {
	service service.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service service.ReportServicer) *ReportHandler {
	return &ReportHandler{service: service}
}

// Favorites godoc
// @Summary      Download favorites report
// @Tags         reports
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Param        kind    path      string  true  "Favorite kind"    Enums(movies, actors, directors)
// @Param        format  path      string  true  "Document format"  Enums(pdf, docx)
// @Success      200     {file}    binary
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /reports/favorites/{kind}/{format} [get]
func (h *ReportHandler) Favorites(c *gin.Context) {
	kind, ok := models.ParseFavoriteKind(c.Param("kind"))
	if !ok {
		response.BadRequest(c, apperrors.ErrInvalidFavoriteKind.Error())
		return
	}
	format := models.ReportFormat(c.Param("format"))

	report, err := h.service.FavoritesReport(c.Request.Context(), middleware.GetUserID(c), kind, format)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoFavorites) {
			response.BadRequest(c, "no favorite "+kind.Plural()+" found")
			return
		}
		respondError(c, err)
		return
	}

	response.Attachment(c, report.Filename, report.ContentType, report.Body)
}
