package workspace

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteWorkspaceController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	DeleteWorkspaceRepository   usecase.DeleteWorkspaceRepository
}

func NewDeleteWorkspaceController(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	deleteWorkspace usecase.DeleteWorkspaceRepository,
) *DeleteWorkspaceController {
	return &DeleteWorkspaceController{
		FindWorkspaceByIdRepository: findWorkspaceById,
		DeleteWorkspaceRepository:   deleteWorkspace,
	}
}

// Handle deletes a workspace; only its owner may.
func (c *DeleteWorkspaceController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.UrlParams.Get("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid workspace ID format",
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
	if err != nil || workspace.OwnerId != userId {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "only the workspace owner can delete it",
		}, http.StatusForbidden)
	}

	if err := c.DeleteWorkspaceRepository.Delete(workspaceId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when deleting the workspace",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]interface{}{"deleted": true}, http.StatusOK)
}
