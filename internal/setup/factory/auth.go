package factory

import (
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/user_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/db/mongodb/workspace_repository"
	"github.com/moneta-app/moneta-backend/internal/infra/googleapi"
	controllers "github.com/moneta-app/moneta-backend/internal/presentation/controllers/auth"

	"go.mongodb.org/mongo-driver/mongo"
)

func MakeRegisterController(db *mongo.Database) *controllers.RegisterController {
	return controllers.NewRegisterController(
		user_repository.NewFindUserRepository(db),
		user_repository.NewCreateUserRepository(db),
	)
}

func MakeLoginController(db *mongo.Database) *controllers.LoginController {
	return controllers.NewLoginController(
		user_repository.NewFindUserRepository(db),
		user_repository.NewUpdateUserRepository(db),
		workspace_repository.NewMemberRepository(db),
	)
}

func MakeGoogleLoginController(db *mongo.Database) *controllers.GoogleLoginController {
	updateUser := user_repository.NewUpdateUserRepository(db)

	return controllers.NewGoogleLoginController(
		googleapi.NewVerifier(),
		user_repository.NewFindUserRepository(db),
		user_repository.NewCreateUserRepository(db),
		updateUser,
		updateUser,
		workspace_repository.NewMemberRepository(db),
	)
}

func MakeGetMeController(db *mongo.Database) *controllers.GetMeController {
	return controllers.NewGetMeController(user_repository.NewFindUserRepository(db))
}

func MakeUpdateMeController(db *mongo.Database) *controllers.UpdateMeController {
	return controllers.NewUpdateMeController(user_repository.NewUpdateUserRepository(db))
}
