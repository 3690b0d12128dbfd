package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Serialize converts a stored document into a transmittable map: ObjectID
// values become their hex string form, everything else passes through
// unchanged. It never fails and performs no schema validation — documents
// written by other processes are returned as they are stored.
func Serialize(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if oid, ok := v.(primitive.ObjectID); ok {
			out[k] = oid.Hex()
			continue
		}
		out[k] = v
	}
	return out
}
