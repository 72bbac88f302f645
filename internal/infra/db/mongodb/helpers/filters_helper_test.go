package helpers

import (
	"testing"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEntityId(t *testing.T) {
	objectId := primitive.NewObjectID()
	assert.Equal(t, objectId, EntityId(objectId.Hex()))

	// Non-hex ids match verbatim; imported records may carry string keys.
	assert.Equal(t, "custom-key", EntityId("custom-key"))
}

func TestBuildOwnerFilter(t *testing.T) {
	col, ok := models.FindCollection("transactions")
	require.True(t, ok)

	filter := BuildOwnerFilter(col, "alice@example.com", bson.M{"category": "rent"})

	assert.Equal(t, "alice@example.com", filter["created_by"])
	assert.Equal(t, "rent", filter["category"])
}

func TestBuildOwnerFilterDoesNotMutateExtra(t *testing.T) {
	col, ok := models.FindCollection("transactions")
	require.True(t, ok)

	extra := bson.M{"category": "rent"}
	BuildOwnerFilter(col, "alice@example.com", extra)

	assert.NotContains(t, extra, "created_by")
}

func TestBuildSortOptions(t *testing.T) {
	opts := BuildSortOptions("-created_date", 50)
	require.NotNil(t, opts.Sort)
	sort, ok := opts.Sort.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "created_date", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)
	assert.Equal(t, int64(50), *opts.Limit)

	opts = BuildSortOptions("amount", 10)
	sort, ok = opts.Sort.(bson.D)
	require.True(t, ok)
	assert.Equal(t, "amount", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)
}

func TestNormalizeEntityId(t *testing.T) {
	objectId := primitive.NewObjectID()

	doc := NormalizeEntityId(map[string]interface{}{"_id": objectId, "amount": 5})
	assert.Equal(t, objectId.Hex(), doc["id"])
	assert.NotContains(t, doc, "_id")

	doc = NormalizeEntityId(map[string]interface{}{"_id": "string-key"})
	assert.Equal(t, "string-key", doc["id"])

	assert.Nil(t, NormalizeEntityId(nil))
}
