//go:build api

package testdb

import (
	"context"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoContainer holds the catalog database for the suite.
type MongoContainer struct {
	Container *mongodb.MongoDBContainer
	URI       string
	Client    *mongo.Client
	Database  *mongo.Database
}

// SetupMongoDB starts MongoDB and connects to dbName. TestMain owns the lifecycle.
func SetupMongoDB(ctx context.Context, dbName string) (*MongoContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		return nil, err
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err == nil {
		err = client.Ping(ctx, nil)
	}
	if err != nil {
		if client != nil {
			_ = client.Disconnect(ctx)
		}
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &MongoContainer{
		Container: container,
		URI:       uri,
		Client:    client,
		Database:  client.Database(dbName),
	}, nil
}

// CleanupCollections drops every collection, indexes included.
func (mc *MongoContainer) CleanupCollections(ctx context.Context) error {
	names, err := mc.Database.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := mc.Database.Collection(name).Drop(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of documents in a collection.
func (mc *MongoContainer) Count(ctx context.Context, collection string) (int64, error) {
	return mc.Database.Collection(collection).CountDocuments(ctx, bson.D{})
}

// Cleanup disconnects and terminates the container.
func (mc *MongoContainer) Cleanup(ctx context.Context) error {
	if mc.Client != nil {
		_ = mc.Client.Disconnect(ctx)
	}
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}
