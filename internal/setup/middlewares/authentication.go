package middlewares

import (
	"net/http"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/user_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/workspace_repository"
	"github.com/moneta-app/moneta-backend/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userFinder interface {
	FindById(id primitive.ObjectID) (*models.User, error)
}

type workspaceMembershipFinder interface {
	FindByMembership(id, userId primitive.ObjectID) (*models.Workspace, error)
}

// VerifyAccessToken authenticates the request and stamps the identity
// headers consumed by the controllers. Client-supplied copies of those
// headers are always discarded first.
func VerifyAccessToken(next http.Handler, db *mongo.Database) http.Handler {
	return verifyAccessToken(next,
		user_repository.NewFindUserRepository(db),
		workspace_repository.NewFindWorkspaceRepository(db),
	)
}

func verifyAccessToken(next http.Handler, findUser userFinder, findWorkspace workspaceMembershipFinder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedWorkspace := r.Header.Get("X-Workspace-Id")
		r.Header.Del("UserId")
		r.Header.Del("UserEmail")
		r.Header.Del("WorkspaceId")

		authorization := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(authorization, "Bearer ")
		if !found || token == "" {
			writeError(w, "missing or malformed authorization header", http.StatusUnauthorized)
			return
		}

		claims, err := utils.NewAccessTokenUtil().DecodeToken(token)
		if err != nil {
			writeError(w, "invalid or expired access token", http.StatusUnauthorized)
			return
		}

		subject, _ := claims["sub"].(string)
		userId, err := primitive.ObjectIDFromHex(subject)
		if err != nil {
			writeError(w, "invalid or expired access token", http.StatusUnauthorized)
			return
		}

		user, err := findUser.FindById(userId)
		if err != nil || user == nil {
			writeError(w, "invalid or expired access token", http.StatusUnauthorized)
			return
		}

		// The email is the ownership key for every entity operation; a
		// record without one must not pass the gate, or its writes would
		// scope to the empty owner.
		if strings.TrimSpace(user.Email) == "" {
			writeError(w, "invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", user.Id.Hex())
		r.Header.Set("UserEmail", strings.ToLower(user.Email))

		// Workspace context is soft: an invalid or foreign workspace id
		// simply leaves the request without one.
		if requestedWorkspace != "" {
			if workspaceId, err := primitive.ObjectIDFromHex(requestedWorkspace); err == nil {
				workspace, err := findWorkspace.FindByMembership(workspaceId, user.Id)
				if err == nil && workspace != nil {
					r.Header.Set("WorkspaceId", workspace.Id.Hex())
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
