package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateWorkspaceController struct {
	FindWorkspaceByIdRepository   usecase.FindWorkspaceByIdRepository
	UpdateWorkspaceNameRepository usecase.UpdateWorkspaceNameRepository
	Validate                      *validator.Validate
}

func NewUpdateWorkspaceController(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	updateWorkspaceName usecase.UpdateWorkspaceNameRepository,
) *UpdateWorkspaceController {
	return &UpdateWorkspaceController{
		FindWorkspaceByIdRepository:   findWorkspaceById,
		UpdateWorkspaceNameRepository: updateWorkspaceName,
		Validate:                      validator.New(validator.WithRequiredStructEnabled()),
	}
}

type UpdateWorkspaceControllerBody struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

func (c *UpdateWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.UrlParams.Get("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid workspace ID format",
		}, http.StatusBadRequest)
	}

	var body UpdateWorkspaceControllerBody
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

	workspace, err := c.FindWorkspaceByIdRepository.FindById(workspaceId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving the workspace",
		}, http.StatusInternalServerError)
	}
	if workspace == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "workspace not found",
		}, http.StatusNotFound)
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil || !workspace.CanManage(userId) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "you do not have permission to modify this workspace",
		}, http.StatusForbidden)
	}

	updated, err := c.UpdateWorkspaceNameRepository.UpdateName(workspaceId, body.Name)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating the workspace",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(updated, http.StatusOK)
}
