package main

import (
	"context"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/logging"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/pkg/auth"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Msg("Starting seed...")

	mongoDB, err := database.NewMongoDB(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	clearCollections(ctx, mongoDB.Database)

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		logging.Fatal().Err(err).Msg("Failed to create indexes")
	}

	movieIDs := seedCatalog(ctx, mongoDB.Database)
	seedUser(ctx, mongoDB.Database, movieIDs)

	logging.Info().Msg("Seed completed successfully!")
}

func clearCollections(ctx context.Context, db *mongo.Database) {
	for _, name := range []string{
		database.UsersCollection,
		database.MoviesCollection,
		database.ActorsCollection,
		database.DirectorsCollection,
		database.FavoritesCollection,
	} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			logging.Fatal().Err(err).Str("collection", name).Msg("Failed to clear collection")
		}
	}
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// seedCatalog inserts movies, actors and directors that reference each other.
func seedCatalog(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	var (
		inception    = primitive.NewObjectID()
		titanic      = primitive.NewObjectID()
		interstellar = primitive.NewObjectID()

		dicaprio    = primitive.NewObjectID()
		winslet     = primitive.NewObjectID()
		mcconaughey = primitive.NewObjectID()

		nolan   = primitive.NewObjectID()
		cameron = primitive.NewObjectID()
	)

	actors := []models.Actor{
		{
			ID: dicaprio,
			ActorFields: models.ActorFields{
				Person: models.Person{
					Name: "Leonardo", Surname: "DiCaprio",
					Description:  ptr("American actor and film producer"),
					Birthday:     date("1974-11-11"),
					PlaceOfBirth: "Los Angeles",
				},
				Height: ptr(183.0),
			},
			Movies: []primitive.ObjectID{inception, titanic},
		},
		{
			ID: winslet,
			ActorFields: models.ActorFields{
				Person: models.Person{
					Name: "Kate", Surname: "Winslet",
					Birthday:     date("1975-10-05"),
					PlaceOfBirth: "Reading",
				},
				Height: ptr(169.0),
			},
			Movies: []primitive.ObjectID{titanic},
		},
		{
			ID: mcconaughey,
			ActorFields: models.ActorFields{
				Person: models.Person{
					Name: "Matthew", Surname: "McConaughey",
					Birthday:     date("1969-11-04"),
					PlaceOfBirth: "Uvalde",
				},
				Height: ptr(182.0),
			},
			Movies: []primitive.ObjectID{interstellar},
		},
	}

	directors := []models.Director{
		{
			ID: nolan,
			Person: models.Person{
				Name: "Christopher", Surname: "Nolan",
				Birthday:     date("1970-07-30"),
				PlaceOfBirth: "London",
			},
			Movies: []primitive.ObjectID{inception, interstellar},
		},
		{
			ID: cameron,
			Person: models.Person{
				Name: "James", Surname: "Cameron",
				Birthday:     date("1954-08-16"),
				PlaceOfBirth: "Kapuskasing",
			},
			Movies: []primitive.ObjectID{titanic},
		},
	}

	movies := []models.Movie{
		{
			ID: inception,
			MovieFields: models.MovieFields{
				Title:        "Inception",
				Description:  ptr("A thief who steals corporate secrets through dreams"),
				CreationDate: date("2010-07-16"),
				Genre:        "Sci-Fi",
				Budget:       160000000,
			},
			Actors:    []primitive.ObjectID{dicaprio},
			Directors: []primitive.ObjectID{nolan},
		},
		{
			ID: titanic,
			MovieFields: models.MovieFields{
				Title:        "Titanic",
				CreationDate: date("1997-12-19"),
				Genre:        "Drama",
				Budget:       200000000,
			},
			Actors:    []primitive.ObjectID{dicaprio, winslet},
			Directors: []primitive.ObjectID{cameron},
		},
		{
			ID: interstellar,
			MovieFields: models.MovieFields{
				Title:        "Interstellar",
				CreationDate: date("2014-11-07"),
				Genre:        "Sci-Fi",
				Budget:       165000000,
			},
			Actors:    []primitive.ObjectID{mcconaughey},
			Directors: []primitive.ObjectID{nolan},
		},
	}

	actorRepo := repository.NewActorRepository(db)
	for i := range actors {
		if err := actorRepo.Create(ctx, &actors[i]); err != nil {
			logging.Fatal().Err(err).Str("actor", actors[i].FullName()).Msg("Failed to seed actor")
		}
	}

	directorRepo := repository.NewDirectorRepository(db)
	for i := range directors {
		if err := directorRepo.Create(ctx, &directors[i]); err != nil {
			logging.Fatal().Err(err).Str("director", directors[i].FullName()).Msg("Failed to seed director")
		}
	}

	movieRepo := repository.NewMovieRepository(db)
	for i := range movies {
		if err := movieRepo.Create(ctx, &movies[i]); err != nil {
			logging.Fatal().Err(err).Str("movie", movies[i].Title).Msg("Failed to seed movie")
		}
	}

	logging.Info().
		Int("movies", len(movies)).
		Int("actors", len(actors)).
		Int("directors", len(directors)).
		Msg("Seeded catalog")

	return []primitive.ObjectID{inception, titanic, interstellar}
}

// seedUser creates the demo account with two favorite movies.
func seedUser(ctx context.Context, db *mongo.Database, movieIDs []primitive.ObjectID) {
	password, err := auth.HashPassword("password123")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to hash password")
	}

	user := &models.User{
		Name:     "Alice",
		Surname:  "Johnson",
		Email:    "alice@example.com",
		Password: password,
	}
	if err := repository.NewUserRepository(db).Create(ctx, user); err != nil {
		logging.Fatal().Err(err).Msg("Failed to seed user")
	}

	favorites := repository.NewFavoriteRepository(db)
	for _, id := range movieIDs[:2] {
		if err := favorites.Add(ctx, user.ID, models.FavoriteMovie, id); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed favorite")
		}
	}

	logging.Info().Str("email", user.Email).Msg("Seeded demo user (password: password123)")
}
