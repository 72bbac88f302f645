package entity_repository

import (
	"context"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindEntitiesRepository struct {
	Db *mongo.Database
}

func NewFindEntitiesRepository(db *mongo.Database) *FindEntitiesRepository {
	return &FindEntitiesRepository{
		Db: db,
	}
}

func (r *FindEntitiesRepository) Find(col models.Collection, owner string, filters map[string]interface{}, sort string, limit int64) ([]map[string]interface{}, error) {
	collection := r.Db.Collection(col.Store)

	extra := bson.M{}
	for key, value := range filters {
		if key == "id" || key == "_id" {
			extra["_id"] = helpers.EntityId(toString(value))
			continue
		}
		extra[key] = value
	}
	filter := helpers.BuildOwnerFilter(col, owner, extra)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter, helpers.BuildSortOptions(sort, limit))
	if err != nil {
		return nil, err
	}

	var docs []map[string]interface{}
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	// Always an array, never nil, so zero matches encode as [].
	results := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		results = append(results, helpers.NormalizeEntityId(doc))
	}

	return results, nil
}

func toString(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}
