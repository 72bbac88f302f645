package workspace_repository

import (
	"context"

	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteWorkspaceRepository struct {
	Db *mongo.Database
}

func NewDeleteWorkspaceRepository(db *mongo.Database) *DeleteWorkspaceRepository {
	return &DeleteWorkspaceRepository{
		Db: db,
	}
}

func (r *DeleteWorkspaceRepository) Delete(id primitive.ObjectID) error {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
