package query

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"movie-catalog/internal/models"
)

// Builder constructs a match filter and aggregation pipelines using a fluent API.
type Builder struct {
	schema     Schema
	filter     bson.M
	sortField  string
	descending bool
}

// NewBuilder creates a Builder for the given schema, sorted by its default field.
func NewBuilder(schema Schema) *Builder {
	return &Builder{
		schema:    schema,
		filter:    bson.M{},
		sortField: schema.DefaultSort,
	}
}

// FromParams applies search, filters and ordering from list parameters.
func FromParams(schema Schema, params models.ListParams) (*Builder, error) {
	bounds, err := schema.ParseFilters(params.Filters)
	if err != nil {
		return nil, err
	}

	b := NewBuilder(schema).
		WhereSearch(params.Search).
		OrderBy(params.SortBy, params.Descending())
	for _, bound := range bounds {
		b.WhereRange(bound.Field, bound.Min, bound.Max)
	}
	return b, nil
}

// WhereID restricts the match to a single document.
func (b *Builder) WhereID(id primitive.ObjectID) *Builder {
	b.filter["_id"] = id
	return b
}

// WhereSearch adds a case-insensitive substring match across the schema's search fields.
// Regex metacharacters in text are matched literally. Empty text is ignored.
func (b *Builder) WhereSearch(text string) *Builder {
	if text == "" || len(b.schema.Search) == 0 {
		return b
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
	or := make(bson.A, 0, len(b.schema.Search))
	for _, field := range b.schema.Search {
		or = append(or, bson.M{field: pattern})
	}
	b.filter["$or"] = or
	return b
}

// WhereRange adds an inclusive range over field. Nil ends are ignored.
func (b *Builder) WhereRange(field string, gte, lte any) *Builder {
	cond := bson.M{}
	if gte != nil {
		cond["$gte"] = gte
	}
	if lte != nil {
		cond["$lte"] = lte
	}
	if len(cond) > 0 {
		b.filter[field] = cond
	}
	return b
}

// OrderBy sets the sort field and direction. Fields outside the schema fall back to the default.
func (b *Builder) OrderBy(field string, descending bool) *Builder {
	b.sortField = b.schema.SortField(field)
	b.descending = descending
	return b
}

// Filter returns the match filter, suitable for CountDocuments.
func (b *Builder) Filter() bson.M {
	return b.filter
}

// Sort returns the sort document with _id as a tiebreaker.
func (b *Builder) Sort() bson.D {
	dir := 1
	if b.descending {
		dir = -1
	}
	return bson.D{{Key: b.sortField, Value: dir}, {Key: "_id", Value: dir}}
}

// BuildPage returns the pipeline for one page: match, sort, skip, limit, then lookups.
func (b *Builder) BuildPage(offset int64, limit int) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: b.filter}},
		{{Key: "$sort", Value: b.Sort()}},
		{{Key: "$skip", Value: offset}},
		{{Key: "$limit", Value: int64(limit)}},
	}
	return append(pipeline, b.lookups()...)
}

// BuildSingle returns the pipeline for one document by id, populated.
func (b *Builder) BuildSingle(id primitive.ObjectID) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"_id": id}}},
		{{Key: "$limit", Value: int64(1)}},
	}
	return append(pipeline, b.lookups()...)
}

// lookups populates every reference array, keeping the order of the stored ids.
// Ids without a matching document are dropped.
func (b *Builder) lookups() []bson.D {
	if len(b.schema.Lookups) == 0 {
		return nil
	}

	stages := make([]bson.D, 0, 2*len(b.schema.Lookups)+1)
	scratch := make(bson.A, 0, len(b.schema.Lookups))
	for _, l := range b.schema.Lookups {
		docs := lookupScratchField(l.Field)
		stages = append(stages,
			LookupStage(l.From, l.Field, "_id", docs),
			bson.D{{Key: "$addFields", Value: bson.D{{Key: l.Field, Value: orderedByIDs("$"+l.Field, "$"+docs)}}}},
		)
		scratch = append(scratch, docs)
	}
	return append(stages, bson.D{{Key: "$unset", Value: scratch}})
}

func lookupScratchField(field string) string {
	return "_" + field + "Docs"
}

// orderedByIDs maps each id in ids to its document in docs.
func orderedByIDs(ids, docs string) bson.D {
	matchID := bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: docs},
		{Key: "as", Value: "doc"},
		{Key: "cond", Value: bson.D{{Key: "$eq", Value: bson.A{"$$doc._id", "$$id"}}}},
	}}}
	mapped := bson.D{{Key: "$map", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{ids, bson.A{}}}}},
		{Key: "as", Value: "id"},
		{Key: "in", Value: bson.D{{Key: "$arrayElemAt", Value: bson.A{matchID, 0}}}},
	}}}
	return bson.D{{Key: "$filter", Value: bson.D{
		{Key: "input", Value: mapped},
		{Key: "as", Value: "found"},
		{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{bson.D{{Key: "$type", Value: "$$found"}}, "missing"}}}},
	}}}
}

// LookupStage builds a $lookup stage.
func LookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}
