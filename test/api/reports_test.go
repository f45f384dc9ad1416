//go:build api

package api

import (
	"bytes"
	"net/http"
	"testing"

	"movie-catalog/test/api/testserver"
	"movie-catalog/test/fixtures"
	"movie-catalog/test/testutil"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFavoritesReport tests GET /api/reports/favorites/:kind/:format.
func TestFavoritesReport(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	catalog := testserver.NewCatalogHelper(testServer)
	director := catalog.SeedDirector(t, fixtures.NewPerson("Greta", "Gerwig"))
	_, token := testserver.NewAuthHelper(testServer).CreateDefaultUser(t)

	t.Run("error - nothing to report", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/reports/favorites/directors/pdf", token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "no favorite directors found", testutil.ParseAPIResponse(t, w).Error)
	})

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/users/favorites/director/"+director.ID.Hex(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("pdf", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/reports/favorites/directors/pdf", token, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=favorite-directors.pdf", w.Header().Get("Content-Disposition"))

		pages, err := api.PageCount(bytes.NewReader(w.Body.Bytes()), model.NewDefaultConfiguration())
		require.NoError(t, err)
		assert.Equal(t, 1, pages)
	})

	t.Run("docx", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/reports/favorites/directors/docx", token, nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "attachment; filename=favorite-directors.docx", w.Header().Get("Content-Disposition"))
		assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "docx is a zip archive")
	})

	t.Run("error - unsupported format", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/reports/favorites/directors/txt", token, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
