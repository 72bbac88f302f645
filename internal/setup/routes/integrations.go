package routes

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/setup/adapters"
	"github.com/moneta-app/moneta-backend/internal/setup/factory"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func IntegrationsRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /integrations/stock-quote", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeStockQuoteController()),
		db,
	))

	server.Handle("POST /integrations/send-email", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeSendEmailController()),
		db,
	))

	// The calendar proxy forwards the caller's method to Google, so every
	// verb lands on the same controller.
	calendar := middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGoogleCalendarController()),
		db,
	)
	for _, method := range []string{"GET", "POST", "PUT", "DELETE"} {
		server.Handle(method+" /integrations/google-calendar", calendar)
	}

	server.Handle("POST /integrations/upload-file", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUploadFileController()),
		db,
	))
}
