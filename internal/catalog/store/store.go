package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/osshare/platform-api/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
)

// DefaultLimit caps listing results when the caller does not supply a limit.
const DefaultLimit = 50

var (
	// ErrUnavailable is returned when no store connection exists.
	ErrUnavailable = errors.New("document store unavailable")
)

// QueryError wraps a store failure caused by a malformed or rejected filter.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query failed: %v", e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// WriteError wraps a store failure on insert.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write failed: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// Store is the document store adapter used by the handler layer. Documents
// are read back as raw bson maps; callers serialize them for transport.
type Store interface {
	// List returns up to limit documents matching the filter, in
	// store-default order. A nil filter matches everything. limit <= 0
	// means DefaultLimit.
	List(ctx context.Context, collection string, f catalog.Expr, limit int64) ([]bson.M, error)
	// Insert persists one document and returns its assigned identifier as
	// a string.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	// Collections lists collection names, for the diagnostic endpoint.
	Collections(ctx context.Context) ([]string, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
