package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

const (
	MemberStatusPending  = "pending"
	MemberStatusAccepted = "accepted"
	MemberStatusRejected = "rejected"
)

type Permissions struct {
	ViewPortfolio bool `bson:"view_portfolio" json:"viewPortfolio"`
	EditPortfolio bool `bson:"edit_portfolio" json:"editPortfolio"`
	ViewExpenses  bool `bson:"view_expenses" json:"viewExpenses"`
	EditExpenses  bool `bson:"edit_expenses" json:"editExpenses"`
	ViewNotes     bool `bson:"view_notes" json:"viewNotes"`
	EditNotes     bool `bson:"edit_notes" json:"editNotes"`
	ViewGoals     bool `bson:"view_goals" json:"viewGoals"`
	EditGoals     bool `bson:"edit_goals" json:"editGoals"`
	ViewBudgets   bool `bson:"view_budgets" json:"viewBudgets"`
	EditBudgets   bool `bson:"edit_budgets" json:"editBudgets"`
	ViewSettings  bool `bson:"view_settings" json:"viewSettings"`
	ManageUsers   bool `bson:"manage_users" json:"manageUsers"`
}

const (
	PermissionViewPortfolio = "viewPortfolio"
	PermissionEditPortfolio = "editPortfolio"
	PermissionViewExpenses  = "viewExpenses"
	PermissionEditExpenses  = "editExpenses"
	PermissionViewNotes     = "viewNotes"
	PermissionEditNotes     = "editNotes"
	PermissionViewGoals     = "viewGoals"
	PermissionEditGoals     = "editGoals"
	PermissionViewBudgets   = "viewBudgets"
	PermissionEditBudgets   = "editBudgets"
	PermissionViewSettings  = "viewSettings"
	PermissionManageUsers   = "manageUsers"
)

func (p Permissions) Allows(key string) bool {
	switch key {
	case PermissionViewPortfolio:
		return p.ViewPortfolio
	case PermissionEditPortfolio:
		return p.EditPortfolio
	case PermissionViewExpenses:
		return p.ViewExpenses
	case PermissionEditExpenses:
		return p.EditExpenses
	case PermissionViewNotes:
		return p.ViewNotes
	case PermissionEditNotes:
		return p.EditNotes
	case PermissionViewGoals:
		return p.ViewGoals
	case PermissionEditGoals:
		return p.EditGoals
	case PermissionViewBudgets:
		return p.ViewBudgets
	case PermissionEditBudgets:
		return p.EditBudgets
	case PermissionViewSettings:
		return p.ViewSettings
	case PermissionManageUsers:
		return p.ManageUsers
	}
	return false
}

func FullPermissions() Permissions {
	return Permissions{
		ViewPortfolio: true,
		EditPortfolio: true,
		ViewExpenses:  true,
		EditExpenses:  true,
		ViewNotes:     true,
		EditNotes:     true,
		ViewGoals:     true,
		EditGoals:     true,
		ViewBudgets:   true,
		EditBudgets:   true,
		ViewSettings:  true,
		ManageUsers:   true,
	}
}

// Member is embedded in a workspace document. Its own _id doubles as the
// invitation token handed out in the invite email.
type Member struct {
	Id          primitive.ObjectID  `bson:"_id" json:"id"`
	UserId      *primitive.ObjectID `bson:"user_id,omitempty" json:"userId,omitempty"`
	Email       string              `bson:"email" json:"email"`
	Role        string              `bson:"role" json:"role"`
	Status      string              `bson:"status" json:"status"`
	Permissions Permissions         `bson:"permissions" json:"permissions"`
	InvitedAt   time.Time           `bson:"invited_at" json:"invited_at"`
}

// EffectivePermissions returns the zero set unless the membership has been
// accepted, regardless of the stored flags.
func (m *Member) EffectivePermissions() Permissions {
	if m.Status != MemberStatusAccepted {
		return Permissions{}
	}
	return m.Permissions
}

type Workspace struct {
	Id        primitive.ObjectID `bson:"_id" json:"id"`
	Name      string             `bson:"name" json:"name"`
	OwnerId   primitive.ObjectID `bson:"owner_id" json:"ownerId"`
	Members   []Member           `bson:"members" json:"members"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

func (w *Workspace) MemberByUserId(userId primitive.ObjectID) *Member {
	for i := range w.Members {
		if w.Members[i].UserId != nil && *w.Members[i].UserId == userId {
			return &w.Members[i]
		}
	}
	return nil
}

func (w *Workspace) MemberByEmail(email string) *Member {
	for i := range w.Members {
		if w.Members[i].Email == email {
			return &w.Members[i]
		}
	}
	return nil
}

func (w *Workspace) MemberById(id primitive.ObjectID) *Member {
	for i := range w.Members {
		if w.Members[i].Id == id {
			return &w.Members[i]
		}
	}
	return nil
}

// CanManage reports whether the user may administer the workspace's
// membership: the owner, or an accepted admin, or an accepted member whose
// permission set grants manageUsers.
func (w *Workspace) CanManage(userId primitive.ObjectID) bool {
	if w.OwnerId == userId {
		return true
	}
	member := w.MemberByUserId(userId)
	if member == nil || member.Status != MemberStatusAccepted {
		return false
	}
	return member.Role == RoleAdmin || member.Permissions.ManageUsers
}
