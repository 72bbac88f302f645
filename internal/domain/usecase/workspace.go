package usecase

import (
	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateWorkspaceRepository interface {
	Create(workspace *models.Workspace) (*models.Workspace, error)
}

type FindWorkspaceByIdRepository interface {
	FindById(id primitive.ObjectID) (*models.Workspace, error)
}

type FindWorkspacesByUserRepository interface {
	FindByUser(userId primitive.ObjectID, email string) ([]models.Workspace, error)
}

type UpdateWorkspaceNameRepository interface {
	UpdateName(id primitive.ObjectID, name string) (*models.Workspace, error)
}

type DeleteWorkspaceRepository interface {
	Delete(id primitive.ObjectID) error
}

// AddMember appends atomically, guarded on the member email, so two
// concurrent invites can never lose a write. Returns false when a member
// with the same email already exists.
type AddMemberRepository interface {
	AddMember(workspaceId primitive.ObjectID, member *models.Member) (bool, error)
}

type UpdateMemberRepository interface {
	UpdateMember(workspaceId, memberId primitive.ObjectID, role *string, permissions *models.Permissions) error
}

type RemoveMemberRepository interface {
	RemoveMember(workspaceId, memberId primitive.ObjectID) error
}

// FindByMemberToken resolves an invitation token (a member sub-document id)
// to its workspace; nil,nil when no workspace holds the token.
type FindWorkspaceByMemberTokenRepository interface {
	FindByMemberToken(token primitive.ObjectID) (*models.Workspace, error)
}

// BindPendingMemberships attaches the user id to every pending membership
// invited under the email and marks them accepted. Runs on login.
type BindPendingMembershipsRepository interface {
	BindPendingMemberships(userId primitive.ObjectID, email string) error
}
