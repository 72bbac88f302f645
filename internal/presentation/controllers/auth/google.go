package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/infra/googleapi"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/moneta-app/moneta-backend/internal/utils"
)

type GoogleVerifier interface {
	VerifyCredential(ctx context.Context, credential, clientId string) (*googleapi.UserInfo, error)
	VerifyAccessToken(ctx context.Context, accessToken string) (*googleapi.UserInfo, error)
}

type GoogleLoginController struct {
	Verifier                         GoogleVerifier
	FindUserByEmailRepository        usecase.FindUserByEmailRepository
	CreateUserRepository             usecase.CreateUserRepository
	UpdateGoogleIdRepository         usecase.UpdateGoogleIdRepository
	StampLastLoginRepository         usecase.StampLastLoginRepository
	BindPendingMembershipsRepository usecase.BindPendingMembershipsRepository
	AccessToken                      *utils.AccessTokenUtil
}

func NewGoogleLoginController(
	verifier GoogleVerifier,
	findUserByEmail usecase.FindUserByEmailRepository,
	createUser usecase.CreateUserRepository,
	updateGoogleId usecase.UpdateGoogleIdRepository,
	stampLastLogin usecase.StampLastLoginRepository,
	bindPendingMemberships usecase.BindPendingMembershipsRepository,
) *GoogleLoginController {
	return &GoogleLoginController{
		Verifier:                         verifier,
		FindUserByEmailRepository:        findUserByEmail,
		CreateUserRepository:             createUser,
		UpdateGoogleIdRepository:         updateGoogleId,
		StampLastLoginRepository:         stampLastLogin,
		BindPendingMembershipsRepository: bindPendingMemberships,
		AccessToken:                      utils.NewAccessTokenUtil(),
	}
}

type GoogleLoginControllerBody struct {
	Credential  string `json:"credential"`
	AccessToken string `json:"accessToken"`
	ClientId    string `json:"clientId"`
	UserInfo    *struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"userInfo"`
}

func (c *GoogleLoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body GoogleLoginControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	var info *googleapi.UserInfo
	var err error

	switch {
	case body.Credential != "":
		info, err = c.Verifier.VerifyCredential(r.Req.Context(), body.Credential, body.ClientId)
	case body.AccessToken != "":
		info, err = c.Verifier.VerifyAccessToken(r.Req.Context(), body.AccessToken)
		// A caller-supplied profile must agree with the token's profile.
		if err == nil && body.UserInfo != nil && !strings.EqualFold(body.UserInfo.Email, info.Email) {
			err = googleapi.ErrInvalidToken
		}
	default:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "either credential or accessToken is required",
		}, http.StatusBadRequest)
	}

	if err != nil {
		if errors.Is(err, googleapi.ErrInvalidToken) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "Google credential is invalid or expired",
			}, http.StatusUnauthorized)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when verifying the Google credential",
		}, http.StatusServiceUnavailable)
	}

	email := strings.ToLower(info.Email)

	user, err := c.FindUserByEmailRepository.FindByEmail(email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when signing in",
		}, http.StatusInternalServerError)
	}

	if user == nil {
		fullName := info.Name
		if fullName == "" {
			fullName = email
		}
		user, err = c.CreateUserRepository.Create(&models.User{
			Email:    email,
			FullName: fullName,
			GoogleId: info.Subject,
		})
		if err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "an error occurred when creating the account",
			}, http.StatusInternalServerError)
		}
	} else if user.GoogleId == "" && info.Subject != "" {
		c.UpdateGoogleIdRepository.UpdateGoogleId(user.Id, info.Subject)
	}

	c.StampLastLoginRepository.StampLastLogin(user.Id)
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
