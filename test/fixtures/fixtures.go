// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"movie-catalog/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Password is the plain password used for users created through the API.
const Password = "password123"

// Date parses a YYYY-MM-DD literal and panics on malformed input.
func Date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: models.User{
			Name:     "Test",
			Surname:  "User",
			Email:    fmt.Sprintf("test-%s@example.com", primitive.NewObjectID().Hex()[16:]),
		},
	}
}

func (b *UserBuilder) WithName(name, surname string) *UserBuilder {
	b.user.Name = name
	b.user.Surname = surname
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPasswordHash sets the stored bcrypt hash.
func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.user.Password = hash
	return b
}

func (b *UserBuilder) BuildPtr() *models.User {
	u := b.user
	return &u
}

// ===== Catalog Fixtures =====

// MovieBuilder provides fluent API for building test movies.
type MovieBuilder struct {
	movie models.Movie
}

// NewMovie creates a movie with a title and no references.
func NewMovie(title string) *MovieBuilder {
	return &MovieBuilder{
		movie: models.Movie{
			MovieFields: models.MovieFields{
				Title:        title,
				CreationDate: Date("2010-07-16"),
				Genre:        "Drama",
				Budget:       1000000,
			},
		},
	}
}

func (b *MovieBuilder) WithGenre(genre string) *MovieBuilder {
	b.movie.Genre = genre
	return b
}

func (b *MovieBuilder) WithBudget(budget int64) *MovieBuilder {
	b.movie.Budget = budget
	return b
}

func (b *MovieBuilder) WithCreationDate(date string) *MovieBuilder {
	b.movie.CreationDate = Date(date)
	return b
}

func (b *MovieBuilder) WithActors(ids ...primitive.ObjectID) *MovieBuilder {
	b.movie.Actors = ids
	return b
}

func (b *MovieBuilder) WithDirectors(ids ...primitive.ObjectID) *MovieBuilder {
	b.movie.Directors = ids
	return b
}

func (b *MovieBuilder) BuildPtr() *models.Movie {
	m := b.movie
	return &m
}

// PersonBuilder builds actors and directors from the same person fields.
type PersonBuilder struct {
	person models.Person
	height *float64
	movies []primitive.ObjectID
}

// NewPerson creates a person born in 1970 in London.
func NewPerson(name, surname string) *PersonBuilder {
	return &PersonBuilder{
		person: models.Person{
			Name:         name,
			Surname:      surname,
			Birthday:     Date("1970-01-01"),
			PlaceOfBirth: "London",
		},
	}
}

func (b *PersonBuilder) WithBirthday(date string) *PersonBuilder {
	b.person.Birthday = Date(date)
	return b
}

func (b *PersonBuilder) WithPlaceOfBirth(place string) *PersonBuilder {
	b.person.PlaceOfBirth = place
	return b
}

func (b *PersonBuilder) WithHeight(cm float64) *PersonBuilder {
	b.height = &cm
	return b
}

func (b *PersonBuilder) WithMovies(ids ...primitive.ObjectID) *PersonBuilder {
	b.movies = ids
	return b
}

func (b *PersonBuilder) Actor() *models.Actor {
	return &models.Actor{
		ActorFields: models.ActorFields{Person: b.person, Height: b.height},
		Movies:      b.movies,
	}
}

func (b *PersonBuilder) Director() *models.Director {
	return &models.Director{
		Person: b.person,
		Movies: b.movies,
	}
}
