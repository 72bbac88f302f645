package usecase

import (
	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindUserByIdRepository interface {
	FindById(id primitive.ObjectID) (*models.User, error)
}

type FindUserByEmailRepository interface {
	FindByEmail(email string) (*models.User, error)
}

type CreateUserRepository interface {
	Create(user *models.User) (*models.User, error)
}

type UpdateUserProfileRepository interface {
	UpdateProfile(id primitive.ObjectID, input *models.UserProfileInput) (*models.User, error)
}

type StampLastLoginRepository interface {
	StampLastLogin(id primitive.ObjectID) error
}

type UpdateGoogleIdRepository interface {
	UpdateGoogleId(id primitive.ObjectID, googleId string) error
}
