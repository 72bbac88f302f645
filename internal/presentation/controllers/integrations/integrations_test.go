package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/moneta-app/moneta-backend/internal/domain/models"
	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeQuoteProvider struct {
	quote *models.Quote
	err   error
}

func (f *fakeQuoteProvider) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	return f.quote, f.err
}

type fakeMailer struct {
	to   string
	html bool
	err  error
}

func (f *fakeMailer) Send(to, subject, body string, html bool) error {
	f.to = to
	f.html = html
	return f.err
}

func makeRequest(body string) presentationProtocols.HttpRequest {
	req := httptest.NewRequest(http.MethodPost, "/integrations", strings.NewReader(body))
	return presentationProtocols.HttpRequest{
		Body:      io.NopCloser(strings.NewReader(body)),
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func decodeEnvelope(t *testing.T, response *presentationProtocols.HttpResponse) helpers.Envelope {
	t.Helper()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var envelope helpers.Envelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return envelope
}

func TestStockQuote(t *testing.T) {
	controller := NewStockQuoteController(&fakeQuoteProvider{
		quote: &models.Quote{Symbol: "AAPL", Price: 187.5},
	})

	response := controller.Handle(makeRequest(`{"symbol": "AAPL"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	envelope := decodeEnvelope(t, response)
	data, ok := envelope.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "AAPL", data["symbol"])
	assert.Equal(t, 187.5, data["price"])
}

func TestStockQuoteProviderDown(t *testing.T) {
	controller := NewStockQuoteController(&fakeQuoteProvider{err: errors.New("timeout")})

	response := controller.Handle(makeRequest(`{"symbol": "AAPL"}`))

	assert.Equal(t, http.StatusServiceUnavailable, response.StatusCode)
}

func TestStockQuoteRequiresSymbol(t *testing.T) {
	controller := NewStockQuoteController(&fakeQuoteProvider{})

	response := controller.Handle(makeRequest(`{}`))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestSendEmailPlainText(t *testing.T) {
	mailer := &fakeMailer{}
	controller := NewSendEmailController(mailer)

	response := controller.Handle(makeRequest(
		`{"to": "bob@example.com", "subject": "Hi", "body": "plain text"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, "bob@example.com", mailer.to)
	assert.False(t, mailer.html)
}

func TestSendEmailHtmlWins(t *testing.T) {
	mailer := &fakeMailer{}
	controller := NewSendEmailController(mailer)

	response := controller.Handle(makeRequest(
		`{"to": "bob@example.com", "subject": "Hi", "body": "text", "html": "<b>rich</b>"}`))

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.True(t, mailer.html)
}

func TestSendEmailRequiresContent(t *testing.T) {
	controller := NewSendEmailController(&fakeMailer{})

	response := controller.Handle(makeRequest(
		`{"to": "bob@example.com", "subject": "Hi"}`))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestSendEmailServiceDown(t *testing.T) {
	controller := NewSendEmailController(&fakeMailer{err: errors.New("smtp down")})

	response := controller.Handle(makeRequest(
		`{"to": "bob@example.com", "subject": "Hi", "body": "text"}`))

	assert.Equal(t, http.StatusServiceUnavailable, response.StatusCode)
}

func TestUploadFileNotImplemented(t *testing.T) {
	controller := NewUploadFileController()

	response := controller.Handle(makeRequest(""))

	assert.Equal(t, http.StatusNotImplemented, response.StatusCode)
}
