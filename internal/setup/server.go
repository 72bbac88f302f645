package setup

import (
	"net/http"
	"os"

	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/helpers"
	"github.com/moneta-app/moneta-backend/internal/setup/config"
	"github.com/moneta-app/moneta-backend/internal/setup/middlewares"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Server builds the full HTTP handler: routes wrapped in the outer
// middleware chain (recovery, CORS, rate limiting, request logging).
func Server(logger *zap.Logger) (http.Handler, *mongo.Database) {
	mux := http.NewServeMux()

	db := helpers.MongoHelper(os.Getenv("MONGODB_URI"), os.Getenv("MONGODB_DATABASE"))

	config.SetupRoutes(mux, db)

	var handler http.Handler = mux
	handler = middlewares.RequestLog(handler, logger)
	handler = middlewares.NewRateLimiterFromEnv().Middleware(handler)
	handler = middlewares.CorsMiddleware(handler)
	handler = middlewares.RecoveryMiddleware(handler, logger)

	return handler, db
}
