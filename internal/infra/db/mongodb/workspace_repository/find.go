package workspace_repository

import (
	"context"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindWorkspaceRepository struct {
	Db *mongo.Database
}

func NewFindWorkspaceRepository(db *mongo.Database) *FindWorkspaceRepository {
	return &FindWorkspaceRepository{
		Db: db,
	}
}

func (r *FindWorkspaceRepository) FindById(id primitive.ObjectID) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var workspace models.Workspace
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&workspace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &workspace, nil
}

// FindByUser lists the workspaces visible to a user: owned ones, accepted
// memberships, and pending invitations addressed to their email.
func (r *FindWorkspaceRepository) FindByUser(userId primitive.ObjectID, email string) ([]models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	filter := bson.M{
		"$or": []bson.M{
			{"owner_id": userId},
			{"members": bson.M{"$elemMatch": bson.M{
				"user_id": userId,
				"status":  models.MemberStatusAccepted,
			}}},
			{"members": bson.M{"$elemMatch": bson.M{
				"email":  strings.ToLower(email),
				"status": models.MemberStatusPending,
			}}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var workspaces []models.Workspace
	if err = cursor.All(ctx, &workspaces); err != nil {
		return nil, err
	}

	return workspaces, nil
}

// FindByMembership loads a workspace only when the user is its owner or an
// accepted member; used for the soft workspace-context attach.
func (r *FindWorkspaceRepository) FindByMembership(id primitive.ObjectID, userId primitive.ObjectID) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	filter := bson.M{
		"_id": id,
		"$or": []bson.M{
			{"owner_id": userId},
			{"members": bson.M{"$elemMatch": bson.M{
				"user_id": userId,
				"status":  models.MemberStatusAccepted,
			}}},
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var workspace models.Workspace
	err := collection.FindOne(ctx, filter).Decode(&workspace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &workspace, nil
}

func (r *FindWorkspaceRepository) FindByMemberToken(token primitive.ObjectID) (*models.Workspace, error) {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var workspace models.Workspace
	err := collection.FindOne(ctx, bson.M{"members._id": token}).Decode(&workspace)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &workspace, nil
}
