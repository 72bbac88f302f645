package report_repository

import (
	"context"
	"time"

	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// WeeklyActivityRepository aggregates the per-owner counts that feed the
// weekly summary email.
type WeeklyActivityRepository struct {
	Db *mongo.Database
}

func NewWeeklyActivityRepository(db *mongo.Database) *WeeklyActivityRepository {
	return &WeeklyActivityRepository{
		Db: db,
	}
}

func (r *WeeklyActivityRepository) CountRecentTransactions(owner string, since time.Time) (int64, error) {
	collection := r.Db.Collection("transactions")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	return collection.CountDocuments(ctx, bson.M{
		"created_by":   owner,
		"created_date": bson.M{"$gte": since},
	})
}

func (r *WeeklyActivityRepository) CountGoals(owner string) (int64, error) {
	collection := r.Db.Collection("goals")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	return collection.CountDocuments(ctx, bson.M{"created_by": owner})
}
