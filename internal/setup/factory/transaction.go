package factory

import (
	"os"

	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/entity_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/export_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/shared_user_repository"
	controllers "github.com/moneta-app/moneta-backend/internal/presentation/controllers/transaction"

	"go.mongodb.org/mongo-driver/mongo"
)

func MakeExportTransactionsController(db *mongo.Database) *controllers.ExportTransactionsController {
	return controllers.NewExportTransactionsController(
		entity_repository.NewFindEntitiesRepository(db),
		shared_user_repository.NewResolveEffectiveOwnerRepository(db),
		export_repository.NewExportStore(os.Getenv("REDIS_URL")),
	)
}

func MakeDownloadExportController() *controllers.DownloadExportController {
	return controllers.NewDownloadExportController(
		export_repository.NewExportStore(os.Getenv("REDIS_URL")),
	)
}

func MakeImportTransactionsController(db *mongo.Database) *controllers.ImportTransactionsController {
	return controllers.NewImportTransactionsController(
		entity_repository.NewCreateEntitiesRepository(db),
		shared_user_repository.NewResolveEffectiveOwnerRepository(db),
	)
}
