package user_repository

import (
	"context"
	"strings"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateUserRepository struct {
	Db *mongo.Database
}

func NewCreateUserRepository(db *mongo.Database) *CreateUserRepository {
	return &CreateUserRepository{
		Db: db,
	}
}

func (r *CreateUserRepository) Create(user *models.User) (*models.User, error) {
	collection := r.Db.Collection("users")

	now := time.Now()
	user.Id = primitive.NewObjectID()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	if _, err := collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
