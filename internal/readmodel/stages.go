package readmodel

import (
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Builder accumulates aggregation stages. Planners call it in the fixed order
// filter, sort, joins, derived fields, shape and, for lists, the page facet.
type Builder struct {
	stages mongo.Pipeline
}

func NewBuilder() *Builder {
	return &Builder{stages: mongo.Pipeline{}}
}

func (b *Builder) Stage(s bson.D) *Builder {
	b.stages = append(b.stages, s)
	return b
}

func (b *Builder) Match(filter bson.D) *Builder {
	return b.Stage(bson.D{{Key: "$match", Value: filter}})
}

func (b *Builder) Sort(sort bson.D) *Builder {
	return b.Stage(bson.D{{Key: "$sort", Value: sort}})
}

// Lookup joins `from` where from.foreignField == localField into array `as`.
func (b *Builder) Lookup(from, localField, foreignField, as string) *Builder {
	return b.Stage(bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}})
}

// LookupWith is Lookup plus a sub-pipeline run on every joined document.
func (b *Builder) LookupWith(from, localField, foreignField, as string, sub mongo.Pipeline) *Builder {
	return b.Stage(bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "pipeline", Value: sub},
		{Key: "as", Value: as},
	}}})
}

func (b *Builder) AddFields(fields bson.D) *Builder {
	return b.Stage(bson.D{{Key: "$addFields", Value: fields}})
}

func (b *Builder) Unwind(path string, preserveEmpty bool) *Builder {
	return b.Stage(bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: path},
		{Key: "preserveNullAndEmptyArrays", Value: preserveEmpty},
	}}})
}

func (b *Builder) Group(spec bson.D) *Builder {
	return b.Stage(bson.D{{Key: "$group", Value: spec}})
}

// Project keeps only the listed fields. _id is dropped unless listed.
func (b *Builder) Project(fields ...string) *Builder {
	return b.ProjectSpec(Allow(fields...))
}

func (b *Builder) ProjectSpec(spec bson.D) *Builder {
	return b.Stage(bson.D{{Key: "$project", Value: spec}})
}

// Paginate appends the $facet that runs the page window and the total count
// over the same input. Must be the last stage.
func (b *Builder) Paginate(p Page) *Builder {
	return b.Stage(bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: bson.A{
			bson.D{{Key: "$count", Value: "totalCount"}},
		}},
		{Key: "data", Value: bson.A{
			bson.D{{Key: "$skip", Value: p.Skip()}},
			bson.D{{Key: "$limit", Value: p.Limit}},
		}},
	}}})
}

func (b *Builder) Pipeline() mongo.Pipeline {
	out := make(mongo.Pipeline, len(b.stages))
	copy(out, b.stages)
	return out
}

// Allow builds an inclusion projection. Computed fields can be appended to
// the returned document.
func Allow(fields ...string) bson.D {
	spec := bson.D{}
	hasID := false
	for _, f := range fields {
		if f == "_id" {
			hasID = true
		}
		spec = append(spec, bson.E{Key: f, Value: 1})
	}
	if !hasID {
		spec = append(bson.D{{Key: "_id", Value: 0}}, spec...)
	}
	return spec
}

// Count is the size of a joined array; a missing array counts as 0.
func Count(array string) bson.D {
	return bson.D{{Key: "$size", Value: bson.D{
		{Key: "$ifNull", Value: bson.A{"$" + array, bson.A{}}},
	}}}
}

// First is the first element of a joined array, or null when it is empty.
func First(array string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$first", Value: "$" + array}},
		nil,
	}}}
}

// FirstField is First(array).field, null when there is no element.
func FirstField(array, field string) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{
		bson.D{{Key: "$first", Value: "$" + array + "." + field}},
		nil,
	}}}
}

// Contains reports whether viewer is among the values at path (an array
// field of a joined array, e.g. "subscribers.subscriber"). An anonymous
// viewer is never contained.
func Contains(viewer *bson.ObjectID, path string) bson.D {
	if viewer == nil {
		return bson.D{{Key: "$literal", Value: false}}
	}
	return bson.D{{Key: "$in", Value: bson.A{
		*viewer,
		bson.D{{Key: "$ifNull", Value: bson.A{"$" + path, bson.A{}}}},
	}}}
}

// Sub selects fields of a flattened one-to-one object and yields null when
// the object itself is null.
func Sub(object string, fields ...string) bson.D {
	inner := bson.D{}
	for _, f := range fields {
		inner = append(inner, bson.E{Key: f, Value: "$" + object + "." + f})
	}
	return bson.D{{Key: "$cond", Value: bson.D{
		{Key: "if", Value: bson.D{{Key: "$eq", Value: bson.A{
			bson.D{{Key: "$ifNull", Value: bson.A{"$" + object, nil}}},
			nil,
		}}}},
		{Key: "then", Value: nil},
		{Key: "else", Value: inner},
	}}}
}
