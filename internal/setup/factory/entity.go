package factory

import (
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/entity_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/shared_user_repository"
	controllers "github.com/moneta-app/moneta-backend/internal/presentation/controllers/entity"

	"go.mongodb.org/mongo-driver/mongo"
)

func MakeGetEntitiesController(db *mongo.Database) *controllers.GetEntitiesController {
	return controllers.NewGetEntitiesController(
		entity_repository.NewFindEntitiesRepository(db),
		entity_repository.NewFindEntityByIdRepository(db),
		shared_user_repository.NewResolveEffectiveOwnerRepository(db),
	)
}

func MakeCreateEntitiesController(db *mongo.Database) *controllers.CreateEntitiesController {
	resolveOwner := shared_user_repository.NewResolveEffectiveOwnerRepository(db)

	return controllers.NewCreateEntitiesController(
		entity_repository.NewCreateEntitiesRepository(db),
		resolveOwner,
		resolveOwner,
	)
}

func MakeUpdateEntityController(db *mongo.Database) *controllers.UpdateEntityController {
	return controllers.NewUpdateEntityController(
		entity_repository.NewUpdateEntityRepository(db),
		shared_user_repository.NewResolveEffectiveOwnerRepository(db),
	)
}

func MakeDeleteEntityController(db *mongo.Database) *controllers.DeleteEntityController {
	return controllers.NewDeleteEntityController(
		entity_repository.NewDeleteEntityRepository(db),
		shared_user_repository.NewResolveEffectiveOwnerRepository(db),
	)
}
