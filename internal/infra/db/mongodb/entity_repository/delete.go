package entity_repository

import (
	"context"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteEntityRepository struct {
	Db *mongo.Database
}

func NewDeleteEntityRepository(db *mongo.Database) *DeleteEntityRepository {
	return &DeleteEntityRepository{
		Db: db,
	}
}

func (r *DeleteEntityRepository) Delete(col models.Collection, owner string, id string) error {
	collection := r.Db.Collection(col.Store)

	filter := helpers.BuildOwnerFilter(col, owner, bson.M{"_id": helpers.EntityId(id)})

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		err := collection.FindOne(ctx, bson.M{"_id": helpers.EntityId(id)}).Err()
		if err == nil {
			return usecase.ErrEntityForbidden
		}
		if err == mongo.ErrNoDocuments {
			return usecase.ErrEntityNotFound
		}
		return err
	}

	return nil
}
