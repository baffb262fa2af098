package database

import (
	"context"

	"murmur/pkg/pagination"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type facetResult[T any] struct {
	Data       []T `bson:"data"`
	TotalCount []struct {
		Count int64 `bson:"count"`
	} `bson:"totalCount"`
}

// FacetStage splits a pipeline into the requested page and the total match count.
func FacetStage(p pagination.Params) bson.D {
	return bson.D{{Key: "$facet", Value: bson.M{
		"data":       bson.A{bson.M{"$skip": p.Offset()}, bson.M{"$limit": p.Limit()}},
		"totalCount": bson.A{bson.M{"$count": "count"}},
	}}}
}

// AggregatePage runs pipeline followed by FacetStage and decodes the envelope.
func AggregatePage[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline, p pagination.Params) (pagination.Page[T], error) {
	pipeline = append(pipeline, FacetStage(p))

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return pagination.Page[T]{}, errors.Wrap(err, "database.AggregatePage.Aggregate")
	}
	defer cursor.Close(ctx)

	var results []facetResult[T]
	if err := cursor.All(ctx, &results); err != nil {
		return pagination.Page[T]{}, errors.Wrap(err, "database.AggregatePage.All")
	}

	var (
		data  []T
		total int64
	)
	if len(results) > 0 {
		data = results[0].Data
		if len(results[0].TotalCount) > 0 {
			total = results[0].TotalCount[0].Count
		}
	}
	return pagination.NewPage(data, total, p), nil
}
