// Package testutil provides HTTP helpers shared by handler and API tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// APIResponse is the decoded response envelope with object data.
type APIResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
	Error   string                 `json:"error"`
}

// SetupRouter creates a Gin router in test mode.
func SetupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MakeRequest executes a JSON request without credentials.
func MakeRequest(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return MakeAuthRequest(t, router, method, path, "", body)
}

// MakeAuthRequest executes a JSON request. An empty token sends no Authorization header.
func MakeAuthRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// FormFile is a file part of a multipart request.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

// MakeMultipartRequest executes a multipart/form-data POST. Repeated values
// of a field are sent as separate parts.
func MakeMultipartRequest(t *testing.T, router http.Handler, path string, fields map[string][]string, files ...FormFile) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, writer.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseResponse parses JSON response into target struct.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err, "body: %s", w.Body.String())
}

// ParseAPIResponse decodes an envelope whose data is an object.
func ParseAPIResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	ParseResponse(t, w, &resp)
	return resp
}

// ParseListResponse decodes an envelope whose data is an array.
func ParseListResponse(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var resp struct {
		Success bool          `json:"success"`
		Data    []interface{} `json:"data"`
	}
	ParseResponse(t, w, &resp)
	require.True(t, resp.Success, "body: %s", w.Body.String())
	return resp.Data
}
