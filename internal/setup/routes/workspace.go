package routes

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/setup/adapters"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func WorkspaceRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /workspaces", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateWorkspaceController(db)),
		db,
	))

	server.Handle("GET /workspaces", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetWorkspacesController(db)),
		db,
	))

	server.Handle("PUT /workspaces", middlewares.VerifyAccessToken(
		middlewares.RequirePermission(
			adapters.AdaptRoute(factory.MakeUpdateWorkspaceController(db)),
			db,
			models.PermissionViewSettings,
		),
		db,
	))

	server.Handle("DELETE /workspaces", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteWorkspaceController(db)),
		db,
	))

	// Membership management. The controllers re-check CanManage against the
	// loaded workspace; the middleware covers the workspace-context case.
	server.Handle("POST /workspaces/members", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeInviteMemberController(db)),
		db,
	))

	server.Handle("PUT /workspaces/members", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateMemberController(db)),
		db,
	))

	server.Handle("DELETE /workspaces/members", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRemoveMemberController(db)),
		db,
	))

	server.Handle("POST /workspaces/members/accept", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeAcceptMemberController()),
		db,
	))
}
