package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoriteKind names the catalog collection a favorite points into.
type FavoriteKind string

const (
	FavoriteMovie    FavoriteKind = "movie"
	FavoriteActor    FavoriteKind = "actor"
	FavoriteDirector FavoriteKind = "director"
)

// FavoriteKinds lists every kind in display order.
var FavoriteKinds = []FavoriteKind{FavoriteMovie, FavoriteActor, FavoriteDirector}

// ParseFavoriteKind accepts the singular or plural form ("movie" or "movies").
func ParseFavoriteKind(s string) (FavoriteKind, bool) {
	for _, k := range FavoriteKinds {
		if s == string(k) || s == k.Plural() {
			return k, true
		}
	}
	return "", false
}

// Plural returns the plural form used in list and report routes.
func (k FavoriteKind) Plural() string {
	return string(k) + "s"
}

// Title returns the capitalised singular, e.g. "Movie".
func (k FavoriteKind) Title() string {
	if k == "" {
		return ""
	}
	return string(k[0]-'a'+'A') + string(k[1:])
}

// Favorite links a user to a movie, actor or director.
type Favorite struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Kind      FavoriteKind       `json:"kind" bson:"kind"`
	TargetID  primitive.ObjectID `json:"targetId" bson:"targetId"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// FavoriteResponse is returned by favorite add and remove.
type FavoriteResponse struct {
	Message string `json:"message" example:"Movie added to favorites"`
	User    User   `json:"user"`
}
