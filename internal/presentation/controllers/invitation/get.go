package invitation

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetInvitationController serves the public invitation-lookup endpoint. No
// authentication: the token itself is the capability. Only sanitized
// metadata leaves the server.
type GetInvitationController struct {
	FindWorkspaceByMemberTokenRepository usecase.FindWorkspaceByMemberTokenRepository
}

func NewGetInvitationController(
	findWorkspaceByMemberToken usecase.FindWorkspaceByMemberTokenRepository,
) *GetInvitationController {
	return &GetInvitationController{
		FindWorkspaceByMemberTokenRepository: findWorkspaceByMemberToken,
	}
}

type GetInvitationControllerResponse struct {
	WorkspaceName string             `json:"workspaceName"`
	InvitedEmail  string             `json:"invitedEmail"`
	Role          string             `json:"role"`
	Permissions   models.Permissions `json:"permissions"`
}

func (c *GetInvitationController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	token, err := primitive.ObjectIDFromHex(r.Req.PathValue("token"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invitation not found",
		}, http.StatusNotFound)
	}

	workspace, err := c.FindWorkspaceByMemberTokenRepository.FindByMemberToken(token)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving the invitation",
		}, http.StatusInternalServerError)
	}
	if workspace == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invitation not found",
		}, http.StatusNotFound)
	}

	member := workspace.MemberById(token)
	if member == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invitation not found",
		}, http.StatusNotFound)
	}

	if member.Status != models.MemberStatusPending {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "this invitation has already been responded to",
		}, http.StatusBadRequest)
	}

	return helpers.CreateResponse(&GetInvitationControllerResponse{
		WorkspaceName: workspace.Name,
		InvitedEmail:  member.Email,
		Role:          member.Role,
		Permissions:   member.Permissions,
	}, http.StatusOK)
}
