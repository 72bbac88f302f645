package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/moneta-app/moneta-backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentialsMessage never reveals whether the email exists.
const invalidCredentialsMessage = "Invalid email or password"

type LoginController struct {
	FindUserByEmailRepository        usecase.FindUserByEmailRepository
	StampLastLoginRepository         usecase.StampLastLoginRepository
	BindPendingMembershipsRepository usecase.BindPendingMembershipsRepository
	AccessToken                      *utils.AccessTokenUtil
	Validate                         *validator.Validate
}

func NewLoginController(
	findUserByEmail usecase.FindUserByEmailRepository,
	stampLastLogin usecase.StampLastLoginRepository,
	bindPendingMemberships usecase.BindPendingMembershipsRepository,
) *LoginController {
	return &LoginController{
		FindUserByEmailRepository:        findUserByEmail,
		StampLastLoginRepository:         stampLastLogin,
		BindPendingMembershipsRepository: bindPendingMemberships,
		AccessToken:                      utils.NewAccessTokenUtil(),
		Validate:                         validator.New(validator.WithRequiredStructEnabled()),
	}
}

type LoginControllerBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginControllerBody
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

	user, err := c.FindUserByEmailRepository.FindByEmail(strings.ToLower(body.Email))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when signing in",
		}, http.StatusInternalServerError)
	}

	if user == nil || user.PasswordHash == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: invalidCredentialsMessage,
		}, http.StatusUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(body.Password)); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: invalidCredentialsMessage,
		}, http.StatusUnauthorized)
	}

	// Best effort; a failed stamp must not block the sign-in.
	c.StampLastLoginRepository.StampLastLogin(user.Id)

	// Pending invitations addressed to this email become accepted
	// memberships; signing in is the acceptance path.
	c.BindPendingMembershipsRepository.BindPendingMemberships(user.Id, user.Email)

	token, err := c.AccessToken.EncodeToken(user.Id.Hex(), user.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when issuing the access token",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&AuthResponse{
		User:  user,
		Token: token,
	}, http.StatusOK)
}
