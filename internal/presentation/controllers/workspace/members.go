package workspace

import (
	"encoding/json"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UpdateMemberController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	UpdateMemberRepository      usecase.UpdateMemberRepository
	Validate                    *validator.Validate
}

func NewUpdateMemberController(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	updateMember usecase.UpdateMemberRepository,
) *UpdateMemberController {
	return &UpdateMemberController{
		FindWorkspaceByIdRepository: findWorkspaceById,
		UpdateMemberRepository:      updateMember,
		Validate:                    validator.New(validator.WithRequiredStructEnabled()),
	}
}

type UpdateMemberControllerBody struct {
	MemberId    string              `json:"memberId" validate:"required"`
	Role        *string             `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	Permissions *models.Permissions `json:"permissions"`
}

func (c *UpdateMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdateMemberControllerBody
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

	workspace, member, errResponse := loadWorkspaceMember(c.FindWorkspaceByIdRepository, r, body.MemberId)
	if errResponse != nil {
		return errResponse
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil || !workspace.CanManage(userId) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "you do not have permission to manage members of this workspace",
		}, http.StatusForbidden)
	}

	if member.Role == models.RoleOwner {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the owner membership cannot be modified",
		}, http.StatusBadRequest)
	}

	if err := c.UpdateMemberRepository.UpdateMember(workspace.Id, member.Id, body.Role, body.Permissions); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when updating the member",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]interface{}{"updated": true}, http.StatusOK)
}

type RemoveMemberController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	RemoveMemberRepository      usecase.RemoveMemberRepository
}

func NewRemoveMemberController(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	removeMember usecase.RemoveMemberRepository,
) *RemoveMemberController {
	return &RemoveMemberController{
		FindWorkspaceByIdRepository: findWorkspaceById,
		RemoveMemberRepository:      removeMember,
	}
}

func (c *RemoveMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	memberId := r.UrlParams.Get("memberId")
	if memberId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "memberId is required",
		}, http.StatusBadRequest)
	}

	workspace, member, errResponse := loadWorkspaceMember(c.FindWorkspaceByIdRepository, r, memberId)
	if errResponse != nil {
		return errResponse
	}

	userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid user ID",
		}, http.StatusUnauthorized)
	}

	// Managers may remove anyone but the owner; anyone may remove
	// themselves.
	selfRemoval := member.UserId != nil && *member.UserId == userId
	if !selfRemoval && !workspace.CanManage(userId) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "you do not have permission to manage members of this workspace",
		}, http.StatusForbidden)
	}

	if member.Role == models.RoleOwner {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the owner cannot be removed from the workspace",
		}, http.StatusBadRequest)
	}

	if err := c.RemoveMemberRepository.RemoveMember(workspace.Id, member.Id); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when removing the member",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(map[string]interface{}{"removed": true}, http.StatusOK)
}

func loadWorkspaceMember(
	repository usecase.FindWorkspaceByIdRepository,
	r presentationProtocols.HttpRequest,
	memberId string,
) (*models.Workspace, *models.Member, *presentationProtocols.HttpResponse) {
	workspaceId, err := primitive.ObjectIDFromHex(r.UrlParams.Get("id"))
	if err != nil {
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid workspace ID format",
		}, http.StatusBadRequest)
	}

	memberObjectId, err := primitive.ObjectIDFromHex(memberId)
	if err != nil {
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid member ID format",
		}, http.StatusBadRequest)
	}

	workspace, err := repository.FindById(workspaceId)
	if err != nil {
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when retrieving the workspace",
		}, http.StatusInternalServerError)
	}
	if workspace == nil {
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "workspace not found",
		}, http.StatusNotFound)
	}

	member := workspace.MemberById(memberObjectId)
	if member == nil {
		return nil, nil, helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "member not found in this workspace",
		}, http.StatusNotFound)
	}

	return workspace, member, nil
}
