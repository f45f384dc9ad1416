// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("email is already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrPasswordUnchanged  = errors.New("new password must be different from the current password")
	ErrForbiddenProfile   = errors.New("you can update only your own profile")
)

// Catalog errors
var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrActorNotFound    = errors.New("actor not found")
	ErrDirectorNotFound = errors.New("director not found")
	ErrInvalidFilters   = errors.New("invalid filters")
	ErrInvalidReference = errors.New("invalid reference id")
	ErrInvalidDate      = errors.New("dates must use the YYYY-MM-DD format")
)

// Favorites errors
var (
	ErrMissingID              = errors.New("userId or targetId not provided")
	ErrFavoriteTargetNotFound = errors.New("favorite target not found")
	ErrFavoriteAlreadyExists  = errors.New("already in favorites")
	ErrFavoriteNotFound       = errors.New("not found in user's favorites")
	ErrInvalidFavoriteKind    = errors.New("favorite kind must be movie, actor or director")
)

// File errors
var (
	ErrUnsupportedFileFormat = errors.New("unsupported file format")
	ErrFileWrite             = errors.New("an error occurred while writing the file")
	ErrFileTooLarge          = errors.New("file exceeds the maximum upload size")
)

// Report errors
var (
	ErrNoFavorites         = errors.New("no favorites found")
	ErrInvalidReportFormat = errors.New("report format must be pdf or docx")
)
