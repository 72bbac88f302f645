package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/moneta-app/moneta-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type RegisterController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	CreateUserRepository      usecase.CreateUserRepository
	AccessToken               *utils.AccessTokenUtil
	Validate                  *validator.Validate
}

func NewRegisterController(
	findUserByEmail usecase.FindUserByEmailRepository,
	createUser usecase.CreateUserRepository,
) *RegisterController {
	return &RegisterController{
		FindUserByEmailRepository: findUserByEmail,
		CreateUserRepository:      createUser,
		AccessToken:               utils.NewAccessTokenUtil(),
		Validate:                  validator.New(validator.WithRequiredStructEnabled()),
	}
}

type RegisterControllerBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

func (c *RegisterController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body RegisterControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	email := strings.ToLower(body.Email)

	existing, err := c.FindUserByEmailRepository.FindByEmail(email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when checking for an existing account",
		}, http.StatusInternalServerError)
	}
	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an account with this email already exists",
		}, http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating the account",
		}, http.StatusInternalServerError)
	}
	hashString := string(hash)

	user, err := c.CreateUserRepository.Create(&models.User{
		Email:        email,
		PasswordHash: &hashString,
		FullName:     body.FullName,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating the account",
		}, http.StatusInternalServerError)
	}

	token, err := c.AccessToken.EncodeToken(user.Id.Hex(), user.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when issuing the access token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&AuthResponse{
		User:  user,
		Token: token,
	}, http.StatusCreated)
}
