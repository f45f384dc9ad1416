package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person holds the fields shared by actors and directors.
type Person struct {
	Name         string     `json:"name" bson:"name" example:"Leonardo"`
	Surname      string     `json:"surname" bson:"surname" example:"DiCaprio"`
	Description  *string    `json:"description" bson:"description" example:"American actor and film producer"`
	Birthday     time.Time  `json:"birthday" bson:"birthday" example:"1974-11-11T00:00:00Z"`
	DateOfDeath  *time.Time `json:"dateOfDeath" bson:"dateOfDeath"`
	PlaceOfBirth string     `json:"placeOfBirth" bson:"placeOfBirth" example:"Los Angeles"`
	Image        *string    `json:"image" bson:"image" example:"0b8f7a1e-4c2d-4a55-9a3e-2f4d8c6b1a90.jpg"`
}

// FullName joins name and surname.
func (p Person) FullName() string {
	if p.Surname == "" {
		return p.Name
	}
	return p.Name + " " + p.Surname
}

// ActorFields are the stored actor attributes, without references.
type ActorFields struct {
	Person `bson:",inline"`
	Height *float64 `json:"height" bson:"height" example:"183"` // centimetres
}

// Actor is an actor as stored: movies are ids.
type Actor struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ActorFields `bson:",inline"`
	Movies      []primitive.ObjectID `json:"movies" bson:"movies"`
}

// PopulatedActor is an actor with its movies resolved.
type PopulatedActor struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	ActorFields `bson:",inline"`
	Movies      []Movie `json:"movies" bson:"movies"`
}

// Director is a director as stored: movies are ids.
type Director struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	Person `bson:",inline"`
	Movies []primitive.ObjectID `json:"movies" bson:"movies"`
}

// PopulatedDirector is a director with its movies resolved.
type PopulatedDirector struct {
	ID     primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	Person `bson:",inline"`
	Movies []Movie `json:"movies" bson:"movies"`
}

// CreatePersonRequest carries the form fields shared by actor and director creation.
// Dates use the YYYY-MM-DD layout.
type CreatePersonRequest struct {
	Name         string   `form:"name" json:"name" binding:"required,min=1,max=100" example:"Leonardo"`
	Surname      string   `form:"surname" json:"surname" binding:"required,min=1,max=100" example:"DiCaprio"`
	Description  *string  `form:"description" json:"description" binding:"omitempty,max=2000" example:"American actor"`
	Birthday     string   `form:"birthday" json:"birthday" binding:"required,datetime=2006-01-02" example:"1974-11-11"`
	DateOfDeath  *string  `form:"dateOfDeath" json:"dateOfDeath" binding:"omitempty,datetime=2006-01-02" example:"2020-01-01"`
	PlaceOfBirth string   `form:"placeOfBirth" json:"placeOfBirth" binding:"required" example:"Los Angeles"`
	Movies       []string `form:"movies" json:"movies" binding:"omitempty,dive,objectid"`
}

// CreateActorRequest is the payload for creating an actor.
type CreateActorRequest struct {
	CreatePersonRequest
	Height *float64 `form:"height" json:"height" binding:"omitempty,gt=0" example:"183"`
}

// CreateDirectorRequest is the payload for creating a director.
type CreateDirectorRequest struct {
	CreatePersonRequest
}
