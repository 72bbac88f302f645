package workspace

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GetWorkspacesController struct {
	FindWorkspacesByUserRepository usecase.FindWorkspacesByUserRepository
	FindWorkspaceByIdRepository    usecase.FindWorkspaceByIdRepository
}

func NewGetWorkspacesController(
	findWorkspacesByUser usecase.FindWorkspacesByUserRepository,
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
) *GetWorkspacesController {
	return &GetWorkspacesController{
		FindWorkspacesByUserRepository: findWorkspacesByUser,
		FindWorkspaceByIdRepository:    findWorkspaceById,
	}
}

func (c *GetWorkspacesController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID",
		}, http.StatusUnauthorized)
	}

	if id := r.UrlParams.Get("id"); id != "" {
		workspaceId, err := primitive.ObjectIDFromHex(id)
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
		if workspace.OwnerId != userId && workspace.MemberByUserId(userId) == nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "you are not a member of this workspace",
			}, http.StatusForbidden)
		}

		return helpers.CreateResponse(workspace, http.StatusOK)
	}

	workspaces, err := c.FindWorkspacesByUserRepository.FindByUser(userId, r.Header.Get("UserEmail"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving workspaces",
		}, http.StatusInternalServerError)
	}
	if workspaces == nil {
		workspaces = []models.Workspace{}
	}

	return helpers.CreateResponse(workspaces, http.StatusOK)
}
