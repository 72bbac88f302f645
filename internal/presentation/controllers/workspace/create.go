package workspace

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateWorkspaceController struct {
	CreateWorkspaceRepository usecase.CreateWorkspaceRepository
	Validate                  *validator.Validate
}

func NewCreateWorkspaceController(createWorkspace usecase.CreateWorkspaceRepository) *CreateWorkspaceController {
	return &CreateWorkspaceController{
		CreateWorkspaceRepository: createWorkspace,
		Validate:                  validator.New(validator.WithRequiredStructEnabled()),
	}
}

type CreateWorkspaceControllerBody struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// Handle creates a workspace with exactly one member: the creator, role
// owner, accepted, with every permission flag set.
func (c *CreateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateWorkspaceControllerBody
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

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID",
		}, http.StatusUnauthorized)
	}

	ownerMember := models.Member{
		UserId:      &userId,
		Email:       strings.ToLower(r.Header.Get("UserEmail")),
		Role:        models.RoleOwner,
		Status:      models.MemberStatusAccepted,
		Permissions: models.FullPermissions(),
	}

	workspace, err := c.CreateWorkspaceRepository.Create(&models.Workspace{
		Name:    body.Name,
		OwnerId: userId,
		Members: []models.Member{ownerMember},
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating the workspace",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(workspace, http.StatusCreated)
}
