package routes

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/setup/adapters"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

// EntityRoutes serves every registered collection through one generic CRUD
// surface. The collection name is a path segment; record ids travel as the
// id query parameter.
func EntityRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("GET /entities/{collection}", middlewares.VerifyAccessToken(
		middlewares.RequireEntityPermission(
			adapters.AdaptRoute(factory.MakeGetEntitiesController(db)),
			db,
		),
		db,
	))

	server.Handle("POST /entities/{collection}", middlewares.VerifyAccessToken(
		middlewares.RequireEntityPermission(
			adapters.AdaptRoute(factory.MakeCreateEntitiesController(db)),
			db,
		),
		db,
	))

	server.Handle("PUT /entities/{collection}", middlewares.VerifyAccessToken(
		middlewares.RequireEntityPermission(
			adapters.AdaptRoute(factory.MakeUpdateEntityController(db)),
			db,
		),
		db,
	))

	server.Handle("DELETE /entities/{collection}", middlewares.VerifyAccessToken(
		middlewares.RequireEntityPermission(
			adapters.AdaptRoute(factory.MakeDeleteEntityController(db)),
			db,
		),
		db,
	))
}
