package routes

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/setup/adapters"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func TransactionRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /transactions/export", middlewares.VerifyAccessToken(
		middlewares.RequirePermission(
			adapters.AdaptRoute(factory.MakeExportTransactionsController(db)),
			db,
			models.PermissionViewExpenses,
		),
		db,
	))

	server.Handle("GET /transactions/export/{key}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDownloadExportController()),
		db,
	))

	server.Handle("POST /transactions/import", middlewares.VerifyAccessToken(
		middlewares.RequirePermission(
			adapters.AdaptRoute(factory.MakeImportTransactionsController(db)),
			db,
			models.PermissionEditExpenses,
		),
		db,
	))
}
