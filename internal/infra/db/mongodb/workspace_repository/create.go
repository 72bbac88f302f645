package workspace_repository

import (
	"context"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateWorkspaceRepository struct {
	Db *mongo.Database
}

func NewCreateWorkspaceRepository(db *mongo.Database) *CreateWorkspaceRepository {
	return &CreateWorkspaceRepository{
		Db: db,
	}
}

func (r *CreateWorkspaceRepository) Create(workspace *models.Workspace) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	now := time.Now()
	workspace.Id = primitive.NewObjectID()
	workspace.CreatedAt = now
	workspace.UpdatedAt = now
	for i := range workspace.Members {
		if workspace.Members[i].Id.IsZero() {
			workspace.Members[i].Id = primitive.NewObjectID()
		}
		if workspace.Members[i].InvitedAt.IsZero() {
			workspace.Members[i].InvitedAt = now
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, workspace); err != nil {
		return nil, err
	}

	return workspace, nil
}
