package workspace

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

// AcceptMemberController exists so the route answers deliberately: the only
// acceptance path is signing in with the invited email through the
// invitation link.
type AcceptMemberController struct{}

func NewAcceptMemberController() *AcceptMemberController {
	return &AcceptMemberController{}
}

func (c *AcceptMemberController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "invitations are accepted by signing in through the invitation link, not by this endpoint",
	}, http.StatusBadRequest)
}
