package user_repository

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

type UpdateUserRepository struct {
	Db *mongo.Database
}

func NewUpdateUserRepository(db *mongo.Database) *UpdateUserRepository {
	return &UpdateUserRepository{
		Db: db,
	}
}

func (r *UpdateUserRepository) UpdateProfile(id primitive.ObjectID, input *models.UserProfileInput) (*models.User, error) {
	collection := r.Db.Collection("users")

	set := bson.M{"updated_at": time.Now()}
	if input.FullName != nil {
		set["full_name"] = *input.FullName
	}
	if input.Language != nil {
		set["language"] = *input.Language
	}
	if input.Currency != nil {
		set["currency"] = *input.Currency
	}
	if input.Theme != nil {
		set["theme"] = *input.Theme
	}
	if input.BlurValues != nil {
		set["blur_values"] = *input.BlurValues
	}
	if input.PriceAlerts != nil {
		set["price_alerts"] = *input.PriceAlerts
	}
	if input.WeeklyReports != nil {
		set["weekly_reports"] = *input.WeeklyReports
	}
	if input.EmailNotifications != nil {
		set["email_notifications"] = *input.EmailNotifications
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result := collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if result.Err() == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, result.Err()
	}

	var updated models.User
	if err := result.Decode(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *UpdateUserRepository) StampLastLogin(id primitive.ObjectID) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"last_login": time.Now(), "updated_at": time.Now()},
	})
	return err
}

func (r *UpdateUserRepository) UpdateGoogleId(id primitive.ObjectID, googleId string) error {
	collection := r.Db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"google_id": googleId, "updated_at": time.Now()},
	})
	return err
}
