package readmodel

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Paged is the list contract: the window plus the count of every document
// that matched the filter.
type Paged[T any] struct {
	Items      []T
	TotalCount int64
	Page       int64
	Limit      int64
}

type facetResult[T any] struct {
	Metadata []struct {
		TotalCount int64 `bson:"totalCount"`
	} `bson:"metadata"`
	Data []T `bson:"data"`
}

// FetchPage runs a pipeline ending in Paginate and decodes its single facet
// document. An empty match yields zero items and a zero count.
func FetchPage[T any](ctx context.Context, col *mongo.Collection, pipe mongo.Pipeline, p Page) (Paged[T], error) {
	out := Paged[T]{Items: []T{}, Page: p.Number, Limit: p.Limit}

	cur, err := col.Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return out, errors.Wrapf(err, "aggregate %s", col.Name())
	}
	defer cur.Close(ctx)

	var faceted []facetResult[T]
	if err := cur.All(ctx, &faceted); err != nil {
		return out, errors.Wrapf(err, "decode %s page", col.Name())
	}
	if len(faceted) == 0 {
		return out, nil
	}
	if len(faceted[0].Metadata) > 0 {
		out.TotalCount = faceted[0].Metadata[0].TotalCount
	}
	if faceted[0].Data != nil {
		out.Items = faceted[0].Data
	}
	return out, nil
}

func FetchAll[T any](ctx context.Context, col *mongo.Collection, pipe mongo.Pipeline) ([]T, error) {
	cur, err := col.Aggregate(ctx, pipe, options.Aggregate())
	if err != nil {
		return nil, errors.Wrapf(err, "aggregate %s", col.Name())
	}
	defer cur.Close(ctx)

	items := []T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", col.Name())
	}
	return items, nil
}

// FetchOne returns the first result, or nil when the pipeline matched nothing.
func FetchOne[T any](ctx context.Context, col *mongo.Collection, pipe mongo.Pipeline) (*T, error) {
	items, err := FetchAll[T](ctx, col, pipe)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}
