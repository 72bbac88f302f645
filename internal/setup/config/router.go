package config

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database) {
	apiServer := http.NewServeMux()
	routes.AuthRoutes(apiServer, db)
	routes.EntityRoutes(apiServer, db)
	routes.WorkspaceRoutes(apiServer, db)
	routes.InvitationRoutes(apiServer, db)
	routes.IntegrationsRoutes(apiServer, db)
	routes.TransactionRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
