package workspace_repository

import (
	"context"
	"strings"
	"time"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MemberRepository struct {
	Db *mongo.Database
}

func NewMemberRepository(db *mongo.Database) *MemberRepository {
	return &MemberRepository{
		Db: db,
	}
}

// AddMember pushes the member in one conditional update instead of a
// read-modify-write of the whole document, so concurrent invites to the
// same workspace cannot lose each other. The email guard makes the push a
// no-op when a member with that email already exists; false means exactly
// that.
func (r *MemberRepository) AddMember(workspaceId primitive.ObjectID, member *models.Member) (bool, error) {
	collection := r.Db.Collection("workspaces")

	if member.Id.IsZero() {
		member.Id = primitive.NewObjectID()
	}
	member.Email = strings.ToLower(member.Email)
	if member.InvitedAt.IsZero() {
		member.InvitedAt = time.Now()
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx,
		addMemberFilter(workspaceId, member.Email),
		addMemberUpdate(member),
	)
	if err != nil {
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

// addMemberFilter matches the workspace only while no member carries the
// email, so the push below cannot duplicate a member no matter how invites
// interleave. Invites for distinct emails never exclude each other.
func addMemberFilter(workspaceId primitive.ObjectID, email string) bson.M {
	return bson.M{
		"_id":           workspaceId,
		"members.email": bson.M{"$ne": email},
	}
}

func addMemberUpdate(member *models.Member) bson.M {
	return bson.M{
		"$push": bson.M{"members": member},
		"$set":  bson.M{"updated_at": time.Now()},
	}
}

func (r *MemberRepository) UpdateMember(workspaceId, memberId primitive.ObjectID, role *string, permissions *models.Permissions) error {
	collection := r.Db.Collection("workspaces")

	set := bson.M{"updated_at": time.Now()}
	if role != nil {
		set["members.$.role"] = *role
	}
	if permissions != nil {
		set["members.$.permissions"] = *permissions
	}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": workspaceId, "members._id": memberId},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

func (r *MemberRepository) RemoveMember(workspaceId, memberId primitive.ObjectID) error {
	collection := r.Db.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	result, err := collection.UpdateOne(ctx,
		bson.M{"_id": workspaceId},
		bson.M{
			"$pull": bson.M{"members": bson.M{"_id": memberId}},
			"$set":  bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return err
	}
	if result.ModifiedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}

// BindPendingMemberships runs after a successful login: every pending
// membership invited under the email gets the user id attached and flips to
// accepted. This is the only acceptance path.
func (r *MemberRepository) BindPendingMemberships(userId primitive.ObjectID, email string) error {
	collection := r.Db.Collection("workspaces")

	lowered := strings.ToLower(email)

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateMany(ctx,
		bson.M{"members": bson.M{"$elemMatch": bson.M{
			"email":  lowered,
			"status": models.MemberStatusPending,
		}}},
		bson.M{"$set": bson.M{
			"members.$[m].user_id": userId,
			"members.$[m].status":  models.MemberStatusAccepted,
			"updated_at":           time.Now(),
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{bson.M{
				"m.email":  lowered,
				"m.status": models.MemberStatusPending,
			}},
		}),
	)
	return err
}
