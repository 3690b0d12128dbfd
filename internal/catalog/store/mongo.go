package store

import (
	"context"
	"fmt"

	"github.com/osshare/platform-api/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the MongoDB-backed store adapter.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// CompileFilter translates a filter expression into a Mongo query document.
// Contains compiles to $regex with the "i" option. The substring is passed
// through unescaped, so regex metacharacters in a search term act as a
// pattern rather than a literal. Do not "fix" this silently: whether it is
// a power-user feature or a bug is an unresolved question.
func CompileFilter(e catalog.Expr) (bson.M, error) {
	if e == nil {
		return bson.M{}, nil
	}
	switch v := e.(type) {
	case catalog.Equals:
		return bson.M{v.Field: v.Value}, nil
	case catalog.Contains:
		return bson.M{v.Field: bson.M{"$regex": v.Substring, "$options": "i"}}, nil
	case catalog.Or:
		parts := make([]bson.M, 0, len(v.Exprs))
		for _, sub := range v.Exprs {
			m, err := CompileFilter(sub)
			if err != nil {
				return nil, err
			}
			parts = append(parts, m)
		}
		return bson.M{"$or": parts}, nil
	case catalog.And:
		// merge children into one top-level document when keys are
		// disjoint; fall back to $and on collision
		merged := bson.M{}
		for _, sub := range v.Exprs {
			m, err := CompileFilter(sub)
			if err != nil {
				return nil, err
			}
			for k, val := range m {
				if _, exists := merged[k]; exists {
					return compileAnd(v)
				}
				merged[k] = val
			}
		}
		return merged, nil
	default:
		return nil, fmt.Errorf("unsupported filter expression %T", e)
	}
}

func compileAnd(v catalog.And) (bson.M, error) {
	parts := make([]bson.M, 0, len(v.Exprs))
	for _, sub := range v.Exprs {
		m, err := CompileFilter(sub)
		if err != nil {
			return nil, err
		}
		parts = append(parts, m)
	}
	return bson.M{"$and": parts}, nil
}

func (s *Mongo) List(ctx context.Context, collection string, f catalog.Expr, limit int64) ([]bson.M, error) {
	filter, err := CompileFilter(f)
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	defer cur.Close(ctx)
	out := []bson.M{}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, &QueryError{Err: err}
		}
		out = append(out, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, &QueryError{Err: err}
	}
	return out, nil
}

func (s *Mongo) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &WriteError{Err: err}
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}

func (s *Mongo) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &QueryError{Err: err}
	}
	return names, nil
}

func (s *Mongo) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}
