package workspace_repository

import (
	"context"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UpdateWorkspaceRepository struct {
	Db *mongo.Database
}

func NewUpdateWorkspaceRepository(db *mongo.Database) *UpdateWorkspaceRepository {
	return &UpdateWorkspaceRepository{
		Db: db,
	}
}

func (r *UpdateWorkspaceRepository) UpdateName(id primitive.ObjectID, name string) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, result.Err()
	}

	var updated models.Workspace
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
