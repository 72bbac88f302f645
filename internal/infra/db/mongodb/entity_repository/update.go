package entity_repository

import (
	"context"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateEntityRepository struct {
	Db *mongo.Database
}

func NewUpdateEntityRepository(db *mongo.Database) *UpdateEntityRepository {
	return &UpdateEntityRepository{
		Db: db,
	}
}

func (r *UpdateEntityRepository) Update(col models.Collection, owner string, id string, fields map[string]interface{}) (map[string]interface{}, error) {
	collection := r.Db.Collection(col.Store)

	filter := helpers.BuildOwnerFilter(col, owner, bson.M{"_id": helpers.EntityId(id)})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": bson.M(fields)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, r.classifyMiss(ctx, collection, id)
		}
		return nil, result.Err()
	}

	var updated map[string]interface{}
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return helpers.NormalizeEntityId(updated), nil
}

// classifyMiss distinguishes a record that exists outside the caller's
// ownership scope (forbidden) from one that does not exist at all. The
// existence probe deliberately ignores ownership.
func (r *UpdateEntityRepository) classifyMiss(ctx context.Context, collection *mongo.Collection, id string) error {
	err := collection.FindOne(ctx, bson.M{"_id": helpers.EntityId(id)}).Err()
	if err == nil {
		return usecase.ErrEntityForbidden
	}
	if err == mongo.ErrNoDocuments {
		return usecase.ErrEntityNotFound
	}
	return err
}
