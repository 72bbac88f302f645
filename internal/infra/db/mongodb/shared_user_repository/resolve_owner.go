package shared_user_repository

import (
	"context"
	"regexp"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ResolveEffectiveOwnerRepository struct {
	Db *mongo.Database
}

func NewResolveEffectiveOwnerRepository(db *mongo.Database) *ResolveEffectiveOwnerRepository {
	return &ResolveEffectiveOwnerRepository{
		Db: db,
	}
}

// Resolve returns the owner key whose data the caller should see. A caller
// with an accepted sharing mapping sees the inviter's data; everyone else
// sees their own. Lookup failures fall open to the caller's own email so a
// broken sharing record never locks an owner out of their own data.
func (r *ResolveEffectiveOwnerRepository) Resolve(email string, collection string) string {
	ownEmail := strings.ToLower(email)

	// Resolving through the mapping collection itself would recurse.
	if collection == models.SharedUsersCollection {
		return ownEmail
	}

	mapping, err := r.FindAcceptedByInvitedEmail(ownEmail)
	if err != nil || mapping == nil || mapping.CreatedBy == "" {
		return ownEmail
	}

	return strings.ToLower(mapping.CreatedBy)
}

// FindAcceptedByInvitedEmail matches the invited email both exactly (stored
// lowercased) and through an anchored case-insensitive pattern, because
// historical records are not uniformly lowercased.
func (r *ResolveEffectiveOwnerRepository) FindAcceptedByInvitedEmail(email string) (*models.SharedUser, error) {
	collection := r.Db.Collection("shared_users")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	pattern := "^" + regexp.QuoteMeta(email) + "$"
	filter := bson.M{
		"status": models.SharedUserStatusAccepted,
		"$or": []bson.M{
			{"invitedEmail": strings.ToLower(email)},
			{"invitedEmail": primitive.Regex{Pattern: pattern, Options: "i"}},
		},
	}

	var sharedUser models.SharedUser
	err := collection.FindOne(ctx, filter).Decode(&sharedUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return &sharedUser, nil
}
