package middleware

import (
	apperrors "movie-catalog/internal/errors"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// SelfOnly rejects requests whose path parameter does not match the
// authenticated user. It must run after Auth.
func SelfOnly(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		if c.Param(param) != userID {
			response.Forbidden(c, apperrors.ErrForbiddenProfile.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
