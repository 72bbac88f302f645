package factory

import (
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/workspace_repository"
	controllers "github.com/moneta-app/moneta-backend/internal/presentation/controllers/workspace"
	invitationControllers "github.com/moneta-app/moneta-backend/internal/presentation/controllers/invitation"

	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateWorkspaceController(db *mongo.Database) *controllers.CreateWorkspaceController {
	return controllers.NewCreateWorkspaceController(workspace_repository.NewCreateWorkspaceRepository(db))
}

func MakeGetWorkspacesController(db *mongo.Database) *controllers.GetWorkspacesController {
	findWorkspace := workspace_repository.NewFindWorkspaceRepository(db)
	return controllers.NewGetWorkspacesController(findWorkspace, findWorkspace)
}

func MakeUpdateWorkspaceController(db *mongo.Database) *controllers.UpdateWorkspaceController {
	return controllers.NewUpdateWorkspaceController(
		workspace_repository.NewFindWorkspaceRepository(db),
		workspace_repository.NewUpdateWorkspaceRepository(db),
	)
}

func MakeDeleteWorkspaceController(db *mongo.Database) *controllers.DeleteWorkspaceController {
	return controllers.NewDeleteWorkspaceController(
		workspace_repository.NewFindWorkspaceRepository(db),
		workspace_repository.NewDeleteWorkspaceRepository(db),
	)
}

func MakeInviteMemberController(db *mongo.Database) *controllers.InviteMemberController {
	return controllers.NewInviteMemberController(
		workspace_repository.NewFindWorkspaceRepository(db),
		workspace_repository.NewMemberRepository(db),
		MakeMailer(),
	)
}

func MakeUpdateMemberController(db *mongo.Database) *controllers.UpdateMemberController {
	return controllers.NewUpdateMemberController(
		workspace_repository.NewFindWorkspaceRepository(db),
		workspace_repository.NewMemberRepository(db),
	)
}

func MakeRemoveMemberController(db *mongo.Database) *controllers.RemoveMemberController {
	return controllers.NewRemoveMemberController(
		workspace_repository.NewFindWorkspaceRepository(db),
		workspace_repository.NewMemberRepository(db),
	)
}

func MakeAcceptMemberController() *controllers.AcceptMemberController {
	return controllers.NewAcceptMemberController()
}

func MakeGetInvitationController(db *mongo.Database) *invitationControllers.GetInvitationController {
	return invitationControllers.NewGetInvitationController(
		workspace_repository.NewFindWorkspaceRepository(db),
	)
}
