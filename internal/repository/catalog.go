package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/query"
)

var movieSchema = query.Schema{
	DefaultSort: "title",
	Sortable:    []string{"title", "genre", "creationDate", "budget"},
	Search:      []string{"title", "genre"},
	Ranges: []query.Range{
		{Field: "creationDate", Min: "creationDateMin", Max: "creationDateMax", Kind: query.Date},
		{Field: "budget", Min: "budgetMin", Max: "budgetMax", Kind: query.Number},
	},
	Lookups: []query.Lookup{
		{From: database.ActorsCollection, Field: "actors"},
		{From: database.DirectorsCollection, Field: "directors"},
	},
}

var actorSchema = query.Schema{
	DefaultSort: "name",
	Sortable:    []string{"name", "surname", "birthday", "placeOfBirth", "height"},
	Search:      []string{"name", "surname", "placeOfBirth"},
	Ranges: []query.Range{
		{Field: "height", Min: "heightMin", Max: "heightMax", Kind: query.Number},
		{Field: "birthday", Min: "birthdayMin", Max: "birthdayMax", Kind: query.Date},
	},
	Lookups: []query.Lookup{{From: database.MoviesCollection, Field: "movies"}},
}

var directorSchema = query.Schema{
	DefaultSort: "name",
	Sortable:    []string{"name", "surname", "birthday", "placeOfBirth"},
	Search:      []string{"name", "surname", "placeOfBirth"},
	Ranges: []query.Range{
		{Field: "birthday", Min: "birthdayMin", Max: "birthdayMax", Kind: query.Date},
	},
	Lookups: []query.Lookup{{From: database.MoviesCollection, Field: "movies"}},
}

// catalog holds the listing logic shared by the movie, actor and director repositories.
// D is the stored document, P its populated view.
type catalog[D any, P any] struct {
	collection *mongo.Collection
	schema     query.Schema
	notFound   error
}

func (c *catalog[D, P]) insert(ctx context.Context, doc *D) (primitive.ObjectID, error) {
	result, err := c.collection.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// list runs the count and the page query concurrently.
func (c *catalog[D, P]) list(ctx context.Context, params models.ListParams) (*models.Page[P], error) {
	params.Normalize()

	builder, err := query.FromParams(c.schema, params)
	if err != nil {
		return nil, err
	}

	var (
		total int64
		items []P
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := c.collection.CountDocuments(gctx, builder.Filter())
		total = n
		return err
	})
	g.Go(func() error {
		cursor, err := c.collection.Aggregate(gctx, builder.BuildPage(params.Offset(), params.Limit))
		if err != nil {
			return err
		}
		defer cursor.Close(gctx)
		return cursor.All(gctx, &items)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := models.NewPage(items, total, params.Page, params.Limit)
	return &page, nil
}

func (c *catalog[D, P]) findByID(ctx context.Context, id primitive.ObjectID) (*P, error) {
	cursor, err := c.collection.Aggregate(ctx, query.NewBuilder(c.schema).BuildSingle(id))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return nil, c.notFound
	}

	var doc P
	if err := cursor.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *catalog[D, P]) exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := c.collection.FindOne(ctx, bson.M{"_id": id},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
