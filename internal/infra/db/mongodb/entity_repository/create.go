package entity_repository

import (
	"context"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateEntitiesRepository struct {
	Db *mongo.Database
}

func NewCreateEntitiesRepository(db *mongo.Database) *CreateEntitiesRepository {
	return &CreateEntitiesRepository{
		Db: db,
	}
}

// Create inserts the documents as given; ownership stamping happens in the
// controller, which knows the resolved effective owner.
func (r *CreateEntitiesRepository) Create(col models.Collection, docs []map[string]interface{}) ([]map[string]interface{}, error) {
	collection := r.Db.Collection(col.Store)

	inserts := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		doc["_id"] = primitive.NewObjectID()
		inserts = append(inserts, doc)
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertMany(ctx, inserts); err != nil {
		return nil, err
	}

	results := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		results = append(results, helpers.NormalizeEntityId(doc))
	}

	return results, nil
}
