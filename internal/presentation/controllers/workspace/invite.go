package workspace

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InviteMemberController struct {
	FindWorkspaceByIdRepository usecase.FindWorkspaceByIdRepository
	AddMemberRepository         usecase.AddMemberRepository
	Mailer                      usecase.Mailer
	Validate                    *validator.Validate
}

func NewInviteMemberController(
	findWorkspaceById usecase.FindWorkspaceByIdRepository,
	addMember usecase.AddMemberRepository,
	mailer usecase.Mailer,
) *InviteMemberController {
	return &InviteMemberController{
		FindWorkspaceByIdRepository: findWorkspaceById,
		AddMemberRepository:         addMember,
		Mailer:                      mailer,
		Validate:                    validator.New(validator.WithRequiredStructEnabled()),
	}
}

type InviteMemberControllerBody struct {
	Email       string              `json:"email" validate:"required,email"`
	Role        string              `json:"role" validate:"required,oneof=admin editor viewer"`
	Permissions *models.Permissions `json:"permissions"`
}

func (c *InviteMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	workspaceId, err := primitive.ObjectIDFromHex(r.UrlParams.Get("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Invalid workspace ID format",
		}, http.StatusBadRequest)
	}

	var body InviteMemberControllerBody
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
			Error: "you do not have permission to manage members of this workspace",
		}, http.StatusForbidden)
	}

	permissions := models.Permissions{}
	if body.Permissions != nil {
		permissions = *body.Permissions
	}

	member := &models.Member{
		Email:       strings.ToLower(body.Email),
		Role:        body.Role,
		Status:      models.MemberStatusPending,
		Permissions: permissions,
	}

	added, err := c.AddMemberRepository.AddMember(workspace.Id, member)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when inviting the member",
		}, http.StatusInternalServerError)
	}
	if !added {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a member with this email already exists in this workspace",
		}, http.StatusBadRequest)
	}

	// The member's own id is the invitation token.
	c.sendInvitationEmail(workspace.Name, member)

	return helpers.CreateResponse(member, http.StatusCreated)
}

func (c *InviteMemberController) sendInvitationEmail(workspaceName string, member *models.Member) {
	if c.Mailer == nil {
		return
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:3000"
	}

	link := fmt.Sprintf("%s/invitations/%s", appURL, member.Id.Hex())
	body := fmt.Sprintf(
		"You have been invited to the workspace %q. Open %s and sign in with %s to accept.",
		workspaceName, link, member.Email,
	)

	// Delivery is best effort; the invitation exists either way.
	c.Mailer.Send(member.Email, "You have been invited to "+workspaceName, body, false)
}
