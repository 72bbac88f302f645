package auth

import (
	"encoding/json"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetMeController struct {
	FindUserByIdRepository usecase.FindUserByIdRepository
}

func NewGetMeController(findUserById usecase.FindUserByIdRepository) *GetMeController {
	return &GetMeController{
		FindUserByIdRepository: findUserById,
	}
}

func (c *GetMeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID",
		}, http.StatusUnauthorized)
	}

	user, err := c.FindUserByIdRepository.FindById(userId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when loading the profile",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}

type UpdateMeController struct {
	UpdateUserProfileRepository usecase.UpdateUserProfileRepository
}

func NewUpdateMeController(updateUserProfile usecase.UpdateUserProfileRepository) *UpdateMeController {
	return &UpdateMeController{
		UpdateUserProfileRepository: updateUserProfile,
	}
}

// Handle accepts only the whitelisted profile fields; anything else in the
// body is ignored by the input struct.
func (c *UpdateMeController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID",
		}, http.StatusUnauthorized)
	}

	var input models.UserProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	user, err := c.UpdateUserProfileRepository.UpdateProfile(userId, &input)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating the profile",
		}, http.StatusInternalServerError)
	}
	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "user not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(user, http.StatusOK)
}
