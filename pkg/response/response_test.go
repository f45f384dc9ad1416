package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name         string
		send         func(c *gin.Context)
		expectedCode int
		expectedBody Response
	}{
		{"success", func(c *gin.Context) { Success(c, "ok") }, http.StatusOK, Response{Success: true, Data: "ok"}},
		{"created", func(c *gin.Context) { Created(c, "made") }, http.StatusCreated, Response{Success: true, Data: "made"}},
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest, Response{Error: "bad"}},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "who") }, http.StatusUnauthorized, Response{Error: "who"}},
		{"forbidden", func(c *gin.Context) { Forbidden(c, "no") }, http.StatusForbidden, Response{Error: "no"}},
		{"not found", func(c *gin.Context) { NotFound(c, "gone") }, http.StatusNotFound, Response{Error: "gone"}},
		{"conflict", func(c *gin.Context) { Conflict(c, "taken") }, http.StatusConflict, Response{Error: "taken"}},
		{"too large", func(c *gin.Context) { PayloadTooLarge(c, "big") }, http.StatusRequestEntityTooLarge, Response{Error: "big"}},
		{"internal", InternalError, http.StatusInternalServerError, Response{Error: "internal server error"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.send(c)

			assert.Equal(t, tt.expectedCode, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}

func TestAttachment(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Attachment(c, "favorite-movies.pdf", "application/pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=favorite-movies.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3", w.Body.String())
}

func TestStream(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		contentType string
	}{
		{"known extension", "poster.png", "image/png"},
		{"upper case extension", "poster.PNG", "image/png"},
		{"unknown extension", "poster.unknownext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Stream(c, tt.file, strings.NewReader("bytes"))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Equal(t, "bytes", w.Body.String())
		})
	}
}
