package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"movie-catalog/internal/database"
)

// TestDB is a MongoDB container with the catalog indexes in place.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupTestDB starts MongoDB, connects, and creates the catalog indexes in a fresh database.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	if testing.Short() {
		t.Skip("repository tests need Docker")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7.0")
	require.NoError(t, err, "start MongoDB container")

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err, "MongoDB connection string")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	require.NoError(t, err, "connect to MongoDB")
	require.NoError(t, client.Ping(ctx, nil), "ping MongoDB")

	db := client.Database(fmt.Sprintf("movie_catalog_test_%d", time.Now().UnixNano()))
	require.NoError(t, database.EnsureIndexes(ctx, db), "create indexes")

	return &TestDB{
		Container: container,
		Client:    client,
		Database:  db,
	}
}

// Cleanup drops the database and terminates the container.
func (tdb *TestDB) Cleanup(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if tdb.Database != nil {
		_ = tdb.Database.Drop(ctx)
	}
	if tdb.Client != nil {
		_ = tdb.Client.Disconnect(ctx)
	}
	if tdb.Container != nil {
		_ = tdb.Container.Terminate(ctx)
	}
}

// ClearCollection deletes every document but keeps the indexes.
func (tdb *TestDB) ClearCollection(t *testing.T, collection string) {
	t.Helper()

	_, err := tdb.Database.Collection(collection).DeleteMany(context.Background(), bson.D{})
	require.NoError(t, err, "clear collection %s", collection)
}
