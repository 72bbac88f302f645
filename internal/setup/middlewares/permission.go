package middlewares

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/workspace_repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RequirePermission gates a route behind a single workspace permission key.
// Requests without a workspace context pass: a user working on their own
// data has every permission.
func RequirePermission(next http.Handler, db *mongo.Database, key string) http.Handler {
	findWorkspace := workspace_repository.NewFindWorkspaceRepository(db)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key == "" || allowedInWorkspace(r, findWorkspace, key) {
			next.ServeHTTP(w, r)
			return
		}
		writeError(w, "you do not have permission to perform this action", http.StatusForbidden)
	})
}

// RequireEntityPermission resolves the permission key from the collection in
// the path and the request method: reads need the collection's view key,
// writes its edit key. Unknown collections fall through so the controller
// can answer 404.
func RequireEntityPermission(next http.Handler, db *mongo.Database) http.Handler {
	findWorkspace := workspace_repository.NewFindWorkspaceRepository(db)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		collection, ok := models.FindCollection(r.PathValue("collection"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		key := collection.ViewPermission
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			key = collection.EditPermission
		}

		if key == "" || allowedInWorkspace(r, findWorkspace, key) {
			next.ServeHTTP(w, r)
			return
		}
		writeError(w, "you do not have permission to perform this action", http.StatusForbidden)
	})
}

func allowedInWorkspace(r *http.Request, findWorkspace *workspace_repository.FindWorkspaceRepository, key string) bool {
	workspaceHeader := r.Header.Get("WorkspaceId")
	if workspaceHeader == "" {
		return true
	}

	workspaceId, err := primitive.ObjectIDFromHex(workspaceHeader)
	if err != nil {
		return false
	}

	workspace, err := findWorkspace.FindById(workspaceId)
	if err != nil || workspace == nil {
		return false
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return false
	}
	if workspace.OwnerId == userId {
		return true
	}

	member := workspace.MemberByUserId(userId)
	if member == nil {
		return false
	}
	return member.EffectivePermissions().Allows(key)
}
