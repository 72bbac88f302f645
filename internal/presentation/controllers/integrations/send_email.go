package integrations

import (
	"encoding/json"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type SendEmailController struct {
	Mailer   usecase.Mailer
	Validate *validator.Validate
}

func NewSendEmailController(mailer usecase.Mailer) *SendEmailController {
	return &SendEmailController{
		Mailer:   mailer,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

type SendEmailControllerBody struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1,max=255"`
	Body    string `json:"body"`
	Html    string `json:"html"`
}

func (c *SendEmailController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SendEmailControllerBody
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

	content := body.Body
	html := false
	if body.Html != "" {
		content = body.Html
		html = true
	}
	if content == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "either body or html is required",
		}, http.StatusBadRequest)
	}

	if err := c.Mailer.Send(body.To, body.Subject, content, html); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the email service is currently unavailable",
		}, http.StatusServiceUnavailable)
	}

	return helpers.CreateResponse(map[string]interface{}{"sent": true}, http.StatusOK)
}
