package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/osshare/platform-api/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory store adapter used for unit tests and store-less
// development mode. Documents round-trip through bson so field names and
// value types match what the Mongo adapter would read back. Contains is
// evaluated as a literal case-insensitive substring (no regex semantics).
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.M)}
}

func (s *Memory) List(ctx context.Context, collection string, f catalog.Expr, limit int64) ([]bson.M, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []bson.M{}
	for _, doc := range s.collections[collection] {
		ok, err := matches(f, doc)
		if err != nil {
			return nil, &QueryError{Err: err}
		}
		if !ok {
			continue
		}
		out = append(out, doc)
		if int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (s *Memory) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", &WriteError{Err: err}
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return "", &WriteError{Err: err}
	}
	id := primitive.NewObjectID()
	m["_id"] = id
	s.mu.Lock()
	s.collections[collection] = append(s.collections[collection], m)
	s.mu.Unlock()
	return id.Hex(), nil
}

func (s *Memory) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

func (s *Memory) Ping(ctx context.Context) error { return nil }

func matches(e catalog.Expr, doc bson.M) (bool, error) {
	if e == nil {
		return true, nil
	}
	switch v := e.(type) {
	case catalog.Equals:
		val, ok := doc[v.Field]
		if !ok {
			return false, nil
		}
		// array fields match on membership, like Mongo
		if arr, isArr := val.(bson.A); isArr {
			for _, el := range arr {
				if el == v.Value {
					return true, nil
				}
			}
			return false, nil
		}
		return val == v.Value, nil
	case catalog.Contains:
		val, ok := doc[v.Field].(string)
		if !ok {
			return false, nil
		}
		return strings.Contains(strings.ToLower(val), strings.ToLower(v.Substring)), nil
	case catalog.And:
		for _, sub := range v.Exprs {
			ok, err := matches(sub, doc)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case catalog.Or:
		for _, sub := range v.Exprs {
			ok, err := matches(sub, doc)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	default:
		return false, fmt.Errorf("unsupported filter expression %T", e)
	}
}
