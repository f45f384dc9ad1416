package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found"},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "email is already taken"},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid email or password"},
		{"ErrIncorrectPassword", ErrIncorrectPassword, "incorrect password"},
		{"ErrPasswordUnchanged", ErrPasswordUnchanged, "new password must be different from the current password"},
		{"ErrForbiddenProfile", ErrForbiddenProfile, "you can update only your own profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCatalogErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMovieNotFound", ErrMovieNotFound, "movie not found"},
		{"ErrActorNotFound", ErrActorNotFound, "actor not found"},
		{"ErrDirectorNotFound", ErrDirectorNotFound, "director not found"},
		{"ErrInvalidFilters", ErrInvalidFilters, "invalid filters"},
		{"ErrInvalidReference", ErrInvalidReference, "invalid reference id"},
		{"ErrInvalidDate", ErrInvalidDate, "dates must use the YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestFavoriteErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrMissingID", ErrMissingID, "userId or targetId not provided"},
		{"ErrFavoriteTargetNotFound", ErrFavoriteTargetNotFound, "favorite target not found"},
		{"ErrFavoriteAlreadyExists", ErrFavoriteAlreadyExists, "already in favorites"},
		{"ErrFavoriteNotFound", ErrFavoriteNotFound, "not found in user's favorites"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestFileAndReportErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"ErrUnsupportedFileFormat", ErrUnsupportedFileFormat, "unsupported file format"},
		{"ErrFileWrite", ErrFileWrite, "an error occurred while writing the file"},
		{"ErrNoFavorites", ErrNoFavorites, "no favorites found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrUnsupportedFileFormat, ErrFileWrite))
	assert.False(t, errors.Is(ErrFavoriteNotFound, ErrFavoriteTargetNotFound))
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("save image: %w", ErrFileWrite)

	assert.True(t, errors.Is(wrapped, ErrFileWrite))
}
