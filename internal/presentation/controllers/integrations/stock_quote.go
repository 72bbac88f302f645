package integrations

import (
	"encoding/json"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/domain/usecase"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type StockQuoteController struct {
	QuoteProvider usecase.QuoteProvider
	Validate      *validator.Validate
}

func NewStockQuoteController(quoteProvider usecase.QuoteProvider) *StockQuoteController {
	return &StockQuoteController{
		QuoteProvider: quoteProvider,
		Validate:      validator.New(validator.WithRequiredStructEnabled()),
	}
}

type StockQuoteControllerBody struct {
	Symbol string `json:"symbol" validate:"required,min=1,max=20"`
}

func (c *StockQuoteController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body StockQuoteControllerBody
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

	quote, err := c.QuoteProvider.GetQuote(r.Req.Context(), body.Symbol)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the quote provider is currently unavailable",
		}, http.StatusServiceUnavailable)
	}

	return helpers.CreateResponse(quote, http.StatusOK)
}
