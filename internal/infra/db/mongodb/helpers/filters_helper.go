package helpers

import (
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EntityId makes a primary-key filter value out of a caller-supplied id.
// Records written through the entity layer carry ObjectID keys; anything
// that does not parse is matched verbatim.
func EntityId(id string) interface{} {
	if objectId, err := primitive.ObjectIDFromHex(id); err == nil {
		return objectId
	}
	return id
}

// BuildOwnerFilter scopes a query to the resolved owner unless the
// collection opts out of ownership filtering.
func BuildOwnerFilter(col models.Collection, owner string, extra bson.M) bson.M {
	filter := bson.M{}
	for key, value := range extra {
		filter[key] = value
	}
	if col.OwnerScoped {
		filter[col.OwnerField] = owner
	}
	return filter
}

// BuildSortOptions parses a "-field" / "field" sort expression.
func BuildSortOptions(sort string, limit int64) *options.FindOptions {
	field := sort
	order := 1
	if strings.HasPrefix(sort, "-") {
		field = strings.TrimPrefix(sort, "-")
		order = -1
	}

	opts := options.Find().SetLimit(limit)
	if field != "" {
		opts = opts.SetSort(bson.D{{Key: field, Value: order}})
	}
	return opts
}

// NormalizeEntityId rewrites the native _id into a uniform string id field
// on a record returned to API consumers.
func NormalizeEntityId(doc map[string]interface{}) map[string]interface{} {
	if doc == nil {
		return nil
	}
	if rawId, ok := doc["_id"]; ok {
		switch v := rawId.(type) {
		case primitive.ObjectID:
			doc["id"] = v.Hex()
		case string:
			doc["id"] = v
		default:
			doc["id"] = ""
		}
		delete(doc, "_id")
	}
	return doc
}
