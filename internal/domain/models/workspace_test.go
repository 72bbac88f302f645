package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPermissionsAllows(t *testing.T) {
	perms := Permissions{ViewPortfolio: true, ManageUsers: true}

	assert.True(t, perms.Allows(PermissionViewPortfolio))
	assert.True(t, perms.Allows(PermissionManageUsers))
	assert.False(t, perms.Allows(PermissionEditPortfolio))
	assert.False(t, perms.Allows("no-such-permission"))
}

func TestFullPermissionsAllowsEverything(t *testing.T) {
	perms := FullPermissions()
	for _, key := range []string{
		PermissionViewPortfolio, PermissionEditPortfolio,
		PermissionViewExpenses, PermissionEditExpenses,
		PermissionViewNotes, PermissionEditNotes,
		PermissionViewGoals, PermissionEditGoals,
		PermissionViewBudgets, PermissionEditBudgets,
		PermissionViewSettings, PermissionManageUsers,
	} {
		assert.True(t, perms.Allows(key), key)
	}
}

func TestEffectivePermissionsRequireAcceptedStatus(t *testing.T) {
	member := Member{
		Status:      MemberStatusPending,
		Permissions: FullPermissions(),
	}
	assert.Equal(t, Permissions{}, member.EffectivePermissions())

	member.Status = MemberStatusRejected
	assert.Equal(t, Permissions{}, member.EffectivePermissions())

	member.Status = MemberStatusAccepted
	assert.Equal(t, FullPermissions(), member.EffectivePermissions())
}

func TestCanManage(t *testing.T) {
	ownerId := primitive.NewObjectID()
	adminId := primitive.NewObjectID()
	editorId := primitive.NewObjectID()
	managerId := primitive.NewObjectID()
	pendingId := primitive.NewObjectID()

	workspace := Workspace{
		OwnerId: ownerId,
		Members: []Member{
			{Id: primitive.NewObjectID(), UserId: &adminId, Role: RoleAdmin, Status: MemberStatusAccepted},
			{Id: primitive.NewObjectID(), UserId: &editorId, Role: RoleEditor, Status: MemberStatusAccepted},
			{Id: primitive.NewObjectID(), UserId: &managerId, Role: RoleViewer, Status: MemberStatusAccepted,
				Permissions: Permissions{ManageUsers: true}},
			{Id: primitive.NewObjectID(), UserId: &pendingId, Role: RoleAdmin, Status: MemberStatusPending},
		},
	}

	assert.True(t, workspace.CanManage(ownerId))
	assert.True(t, workspace.CanManage(adminId))
	assert.False(t, workspace.CanManage(editorId))
	assert.True(t, workspace.CanManage(managerId))
	assert.False(t, workspace.CanManage(pendingId), "pending admin cannot manage")
	assert.False(t, workspace.CanManage(primitive.NewObjectID()))
}

func TestMemberLookups(t *testing.T) {
	userId := primitive.NewObjectID()
	memberId := primitive.NewObjectID()
	workspace := Workspace{
		Members: []Member{
			{Id: memberId, UserId: &userId, Email: "bob@example.com"},
		},
	}

	assert.NotNil(t, workspace.MemberByUserId(userId))
	assert.Nil(t, workspace.MemberByUserId(primitive.NewObjectID()))
	assert.NotNil(t, workspace.MemberByEmail("bob@example.com"))
	assert.Nil(t, workspace.MemberByEmail("nobody@example.com"))
	assert.NotNil(t, workspace.MemberById(memberId))
	assert.Nil(t, workspace.MemberById(primitive.NewObjectID()))
}
