package integrations

import (
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

// UploadFileController reserves the route; file storage has no backend yet.
type UploadFileController struct{}

func NewUploadFileController() *UploadFileController {
	return &UploadFileController{}
}

func (c *UploadFileController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "file upload is not implemented",
	}, http.StatusNotImplemented)
}
