package routes

import (
	"net/http"
	"time"

	"github.com/moneta-app/moneta-backend/internal/setup/adapters"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// InvitationRoutes is the one public lookup: the invite email links here
// before the invitee has an account.
func InvitationRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("GET /invitations/{token}", middlewares.CacheControl(time.Minute,
		adapters.AdaptRoute(factory.MakeGetInvitationController(db)),
	))
}
