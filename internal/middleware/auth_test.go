package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-catalog/pkg/auth"
	authmocks "movie-catalog/pkg/auth/mocks"
	"movie-catalog/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("testsecret", 15*time.Minute)
	authMiddleware := Auth(jwtManager)

	t.Run("allows request with valid token", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"
		token, _ := jwtManager.GenerateToken(userID, "user@example.com")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		var capturedUserID, capturedEmail string
		handler := func(c *gin.Context) {
			capturedUserID = GetUserID(c)
			capturedEmail = GetEmail(c)
			c.Status(http.StatusOK)
		}

		authMiddleware(c)
		if !c.IsAborted() {
			handler(c)
		}

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, capturedUserID)
		assert.Equal(t, "user@example.com", capturedEmail)
	})

	t.Run("rejects request without authorization header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with invalid header format - no Bearer prefix", func(t *testing.T) {
		token, _ := jwtManager.GenerateToken("user123", "user@example.com")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", token) // Missing "Bearer " prefix

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with invalid header format - wrong prefix", func(t *testing.T) {
		token, _ := jwtManager.GenerateToken("user123", "user@example.com")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Basic "+token)

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer invalid.token.here")

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with expired token", func(t *testing.T) {
		shortManager := auth.NewJWTManager("testsecret", 1*time.Millisecond)
		token, _ := shortManager.GenerateToken("user123", "user@example.com")
		time.Sleep(10 * time.Millisecond)

		shortAuthMiddleware := Auth(shortManager)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		shortAuthMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with token signed by different secret", func(t *testing.T) {
		otherManager := auth.NewJWTManager("differentsecret", 15*time.Minute)
		token, _ := otherManager.GenerateToken("user123", "user@example.com")

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects empty bearer token", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer ")

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})
}

func TestGetUserID(t *testing.T) {
	t.Run("returns user ID when set", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		expectedUserID := "507f1f77bcf86cd799439011"
		c.Set(UserIDKey, expectedUserID)

		userID := GetUserID(c)

		assert.Equal(t, expectedUserID, userID)
	})

	t.Run("returns empty string when not set", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		userID := GetUserID(c)

		assert.Empty(t, userID)
	})
}

func TestAuthMiddleware_Integration(t *testing.T) {
	jwtManager := auth.NewJWTManager("testsecret", 15*time.Minute)

	router := gin.New()
	router.Use(Auth(jwtManager))
	router.GET("/protected", func(c *gin.Context) {
		userID := GetUserID(c)
		response.Success(c, gin.H{"userId": userID})
	})

	t.Run("full request with valid token", func(t *testing.T) {
		userID := "507f1f77bcf86cd799439011"
		token, _ := jwtManager.GenerateToken(userID, "user@example.com")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID)
	})

	t.Run("full request without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestContextKeys(t *testing.T) {
	t.Run("constants have expected values", func(t *testing.T) {
		require.Equal(t, "userID", UserIDKey)
		require.Equal(t, "email", EmailKey)
	})
}

func TestAuth_WithTokenManagerMock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := authmocks.NewMockTokenManager(ctrl)
	manager.EXPECT().
		ValidateToken("opaque").
		Return(&auth.Claims{UserID: "507f1f77bcf86cd799439011", Email: "a@b.c"}, nil)

	router := gin.New()
	router.Use(Auth(manager))
	router.GET("/me", func(c *gin.Context) {
		response.Success(c, gin.H{"id": GetUserID(c), "email": GetEmail(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer opaque")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.c")
}
