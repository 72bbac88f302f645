package entity_repository

import (
	"context"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindEntityByIdRepository struct {
	Db *mongo.Database
}

func NewFindEntityByIdRepository(db *mongo.Database) *FindEntityByIdRepository {
	return &FindEntityByIdRepository{
		Db: db,
	}
}

// FindById returns the record matching both the id and the ownership
// scope, or nil when there is none.
func (r *FindEntityByIdRepository) FindById(col models.Collection, owner string, id string) (map[string]interface{}, error) {
	collection := r.Db.Collection(col.Store)

	filter := helpers.BuildOwnerFilter(col, owner, bson.M{"_id": helpers.EntityId(id)})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var doc map[string]interface{}
	err := collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return helpers.NormalizeEntityId(doc), nil
}
