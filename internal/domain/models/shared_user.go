package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SharedUser is the legacy sharing mapping: an invited email delegated into
// the inviter's data. The records live in the shared_users collection and
// are written through the generic entity layer, so only the fields the
// ownership resolver reads are modeled here.
type SharedUser struct {
	Id           primitive.ObjectID `bson:"_id" json:"id"`
	InvitedEmail string             `bson:"invitedEmail" json:"invitedEmail"`
	CreatedBy    string             `bson:"created_by" json:"created_by"`
	Status       string             `bson:"status" json:"status"`
}

const SharedUserStatusAccepted = "accepted"
