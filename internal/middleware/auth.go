// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"strings"

	"movie-catalog/pkg/auth"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
)

// Context keys for storing user data
const (
	UserIDKey = "userID"
	EmailKey  = "email"
)

// Auth returns a middleware that validates JWT tokens.
func Auth(jwtManager auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// Handlers read these back through GetUserID and GetEmail
		c.Set(UserIDKey, claims.UserID)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// GetUserID retrieves the user ID from the context.
// Returns empty string if not found.
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// GetEmail retrieves the token owner's email from the context.
func GetEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}
