package handler

import (
	"errors"
	"net/http"

	apperrors "movie-catalog/internal/errors"
	"movie-catalog/internal/logging"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

var (
	notFoundErrors = []error{
		apperrors.ErrUserNotFound,
		apperrors.ErrMovieNotFound,
		apperrors.ErrActorNotFound,
		apperrors.ErrDirectorNotFound,
		apperrors.ErrFavoriteTargetNotFound,
		apperrors.ErrFavoriteNotFound,
	}
	badRequestErrors = []error{
		apperrors.ErrInvalidFilters,
		apperrors.ErrInvalidReference,
		apperrors.ErrInvalidDate,
		apperrors.ErrMissingID,
		apperrors.ErrFavoriteAlreadyExists,
		apperrors.ErrInvalidFavoriteKind,
		apperrors.ErrUnsupportedFileFormat,
		apperrors.ErrNoFavorites,
		apperrors.ErrInvalidReportFormat,
	}
	unauthorizedErrors = []error{
		apperrors.ErrInvalidCredentials,
		apperrors.ErrIncorrectPassword,
	}
	conflictErrors = []error{
		apperrors.ErrUserAlreadyExists,
		apperrors.ErrPasswordUnchanged,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps a service error to its HTTP response. Unknown errors are
// logged and answered with a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case isAny(err, notFoundErrors):
		response.NotFound(c, err.Error())
	case isAny(err, badRequestErrors):
		response.BadRequest(c, err.Error())
	case isAny(err, unauthorizedErrors):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, apperrors.ErrForbiddenProfile):
		response.Forbidden(c, err.Error())
	case isAny(err, conflictErrors):
		response.Conflict(c, err.Error())
	case errors.Is(err, apperrors.ErrFileTooLarge):
		response.PayloadTooLarge(c, err.Error())
	case errors.Is(err, apperrors.ErrFileWrite):
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("Upload write failed")
		response.Error(c, http.StatusInternalServerError, apperrors.ErrFileWrite.Error())
	default:
		logging.Ctx(c.Request.Context()).Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
		response.InternalError(c)
	}
}
