package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSerializeConvertsObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{"_id": oid, "name": "jq", "tags": bson.A{"cli"}}

	out := Serialize(doc)

	require.Equal(t, oid.Hex(), out["_id"])
	require.Len(t, out["_id"], 24)
	require.Equal(t, "jq", out["name"])
	require.Equal(t, bson.A{"cli"}, out["tags"])
}

func TestSerializePassesThroughUnknownShapes(t *testing.T) {
	// no schema validation on read: arbitrary records serialize fine
	doc := bson.M{"weird": map[string]int{"x": 1}, "n": 3.5, "nested_id": primitive.NewObjectID()}
	out := Serialize(doc)
	require.Equal(t, doc["weird"], out["weird"])
	require.Equal(t, 3.5, out["n"])
	require.IsType(t, "", out["nested_id"])
}

func TestSerializeEmpty(t *testing.T) {
	require.Empty(t, Serialize(bson.M{}))
}
