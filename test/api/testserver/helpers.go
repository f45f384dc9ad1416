//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"movie-catalog/internal/models"
	"movie-catalog/pkg/auth"
	"movie-catalog/test/fixtures"
	"movie-catalog/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user and returns the auth response data.
func (ah *AuthHelper) RegisterUser(t *testing.T, name, surname, email, password string) map[string]interface{} {
	t.Helper()

	req := models.CreateUserRequest{
		Name:     name,
		Surname:  surname,
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/auth/registration", req)
	require.Equal(t, http.StatusCreated, w.Code, "registration should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "registration response should be successful")
	return resp.Data
}

// Login logs in a user and returns the auth response data.
func (ah *AuthHelper) Login(t *testing.T, email, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Email:    email,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	return resp.Data
}

// CreateDefaultUser registers the default test user and returns its id and token.
func (ah *AuthHelper) CreateDefaultUser(t *testing.T) (userID, token string) {
	t.Helper()
	return ah.CreateUser(t, "test@example.com")
}

// CreateUser registers a user with the given email and the fixture password.
func (ah *AuthHelper) CreateUser(t *testing.T, email string) (userID, token string) {
	t.Helper()

	data := ah.RegisterUser(t, "Test", "User", email, fixtures.Password)
	token, ok := data["token"].(string)
	require.True(t, ok, "token should be a string")

	return GetIDFromResponse(t, data), token
}

// SeedUser inserts a user with the fixture password directly (bypasses API).
func (ah *AuthHelper) SeedUser(t *testing.T, b *fixtures.UserBuilder) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(fixtures.Password)
	require.NoError(t, err)

	user := b.WithPasswordHash(hash).BuildPtr()
	require.NoError(t, ah.server.UserRepo.Create(context.Background(), user), "failed to seed user")
	return user
}

// CatalogHelper seeds catalog documents directly into MongoDB.
type CatalogHelper struct {
	server *TestServer
}

// NewCatalogHelper creates a new catalog helper.
func NewCatalogHelper(server *TestServer) *CatalogHelper {
	return &CatalogHelper{server: server}
}

// SeedMovie inserts a movie and returns it with its id set.
func (ch *CatalogHelper) SeedMovie(t *testing.T, b *fixtures.MovieBuilder) *models.Movie {
	t.Helper()
	movie := b.BuildPtr()
	require.NoError(t, ch.server.MovieRepo.Create(context.Background(), movie), "failed to seed movie")
	return movie
}

// SeedActor inserts an actor and returns it with its id set.
func (ch *CatalogHelper) SeedActor(t *testing.T, b *fixtures.PersonBuilder) *models.Actor {
	t.Helper()
	actor := b.Actor()
	require.NoError(t, ch.server.ActorRepo.Create(context.Background(), actor), "failed to seed actor")
	return actor
}

// SeedDirector inserts a director and returns it with its id set.
func (ch *CatalogHelper) SeedDirector(t *testing.T, b *fixtures.PersonBuilder) *models.Director {
	t.Helper()
	director := b.Director()
	require.NoError(t, ch.server.DirectorRepo.Create(context.Background(), director), "failed to seed director")
	return director
}

// GetIDFromResponse extracts the ID from response data.
// It handles both direct ID fields and nested user objects (for auth responses).
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(GetIDFromResponse(t, data))
	require.NoError(t, err, "failed to parse ObjectID")
	return oid
}
