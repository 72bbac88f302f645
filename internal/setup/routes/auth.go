package routes

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/setup/adapters"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func AuthRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /auth/register", adapters.AdaptRoute(factory.MakeRegisterController(db)))
	server.Handle("POST /auth/login", adapters.AdaptRoute(factory.MakeLoginController(db)))
	server.Handle("POST /auth/google", adapters.AdaptRoute(factory.MakeGoogleLoginController(db)))

	server.Handle("GET /auth/me", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetMeController(db)),
		db,
	))

	server.Handle("PUT /auth/me", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateMeController(db)),
		db,
	))
}
