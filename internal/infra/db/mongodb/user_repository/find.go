package user_repository

import (
	"context"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindUserRepository struct {
	Db *mongo.Database
}

func NewFindUserRepository(db *mongo.Database) *FindUserRepository {
	return &FindUserRepository{
		Db: db,
	}
}

func (r *FindUserRepository) FindById(id primitive.ObjectID) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

// FindWeeklyReportSubscribers lists users who opted into the weekly
// activity summary email.
func (r *FindUserRepository) FindWeeklyReportSubscribers() ([]models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{
		"weekly_reports":      true,
		"email_notifications": true,
	})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *FindUserRepository) FindByEmail(email string) (*models.User, error) {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}
