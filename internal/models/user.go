// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a user in the system.
// Favorite ids are kept in the favorites collection and filled in by the service.
type User struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name      string               `json:"name" bson:"name" example:"John"`
	Surname   string               `json:"surname" bson:"surname" example:"Doe"`
	Email     string               `json:"email" bson:"email" example:"user@example.com"`
	Password  string               `json:"-" bson:"password"` // "-" = never include in JSON response
	Movies    []primitive.ObjectID `json:"movies" bson:"-"`
	Actors    []primitive.ObjectID `json:"actors" bson:"-"`
	Directors []primitive.ObjectID `json:"directors" bson:"-"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// SetFavorites assigns the id list of the given kind.
func (u *User) SetFavorites(kind FavoriteKind, ids []primitive.ObjectID) {
	if ids == nil {
		ids = []primitive.ObjectID{}
	}
	switch kind {
	case FavoriteMovie:
		u.Movies = ids
	case FavoriteActor:
		u.Actors = ids
	case FavoriteDirector:
		u.Directors = ids
	}
}

// Favorites returns the id list of the given kind.
func (u *User) Favorites(kind FavoriteKind) []primitive.ObjectID {
	switch kind {
	case FavoriteMovie:
		return u.Movies
	case FavoriteActor:
		return u.Actors
	case FavoriteDirector:
		return u.Directors
	}
	return nil
}

// CreateUserRequest is the payload for creating a user.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100" example:"John"`
	Surname  string `json:"surname" binding:"required,min=1,max=100" example:"Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
}

// UpdateUserRequest is the payload for updating a user.
// Changing the password requires the current one in OldPassword.
type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100" example:"Jane"`
	Surname     *string `json:"surname" binding:"omitempty,min=1,max=100" example:"Roe"`
	Email       *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
	Password    *string `json:"password" binding:"omitempty,min=6" example:"newsecret123"`
	OldPassword *string `json:"oldPassword" example:"secret123"`
}

// UpdateUserResponse is returned after a profile update.
// User is the profile as it was before the update.
type UpdateUserResponse struct {
	User  User   `json:"user"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is the response after registration, login or token check.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// UserChanges are the profile fields to overwrite. Nil fields are left untouched.
type UserChanges struct {
	Name         *string
	Surname      *string
	Email        *string
	PasswordHash *string
}
