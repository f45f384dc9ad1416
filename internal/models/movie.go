package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MovieFields are the stored movie attributes, without references.
type MovieFields struct {
	Title        string    `json:"title" bson:"title" example:"Inception"`
	Description  *string   `json:"description" bson:"description" example:"A thief who steals corporate secrets through dreams"`
	CreationDate time.Time `json:"creationDate" bson:"creationDate" example:"2010-07-16T00:00:00Z"`
	Genre        string    `json:"genre" bson:"genre" example:"Sci-Fi"`
	Budget       int64     `json:"budget" bson:"budget" example:"160000000"`
	Image        *string   `json:"image" bson:"image" example:"0b8f7a1e-4c2d-4a55-9a3e-2f4d8c6b1a90.jpg"`
}

// Movie is a movie as stored: actors and directors are ids.
type Movie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439013"`
	MovieFields `bson:",inline"`
	Actors      []primitive.ObjectID `json:"actors" bson:"actors"`
	Directors   []primitive.ObjectID `json:"directors" bson:"directors"`
}

// PopulatedMovie is a movie with actors and directors resolved.
type PopulatedMovie struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439013"`
	MovieFields `bson:",inline"`
	Actors      []Actor    `json:"actors" bson:"actors"`
	Directors   []Director `json:"directors" bson:"directors"`
}

// CreateMovieRequest is the payload for creating a movie.
type CreateMovieRequest struct {
	Title        string   `form:"title" json:"title" binding:"required,min=1,max=200" example:"Inception"`
	Description  *string  `form:"description" json:"description" binding:"omitempty,max=2000" example:"Dreams within dreams"`
	CreationDate string   `form:"creationDate" json:"creationDate" binding:"required,datetime=2006-01-02" example:"2010-07-16"`
	Genre        string   `form:"genre" json:"genre" binding:"required" example:"Sci-Fi"`
	Budget       int64    `form:"budget" json:"budget" binding:"gte=0" example:"160000000"`
	Actors       []string `form:"actors" json:"actors" binding:"omitempty,dive,objectid"`
	Directors    []string `form:"directors" json:"directors" binding:"omitempty,dive,objectid"`
}
