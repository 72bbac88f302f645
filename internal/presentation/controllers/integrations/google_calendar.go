package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"golang.org/x/oauth2"
)

const (
	calendarEventsEndpoint = "https://www.googleapis.com/calendar/v3/calendars"
	tasksEndpoint          = "https://tasks.googleapis.com/tasks/v1/lists"
)

// GoogleCalendarController proxies event and task CRUD to the Google APIs
// with the caller's own Google access token. Google's verdicts on the token
// (401) and its scopes (403) pass through instead of collapsing into 500s.
type GoogleCalendarController struct {
	HttpClientFactory func(token string) *http.Client
}

func NewGoogleCalendarController() *GoogleCalendarController {
	return &GoogleCalendarController{
		HttpClientFactory: func(token string) *http.Client {
			client := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(&oauth2.Token{
				AccessToken: token,
			}))
			client.Timeout = 15 * time.Second
			return client
		},
	}
}

func (c *GoogleCalendarController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	token := r.Header.Get("X-Google-Token")
	if token == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "a Google access token is required in the X-Google-Token header",
		}, http.StatusUnauthorized)
	}

	endpoint, errResponse := c.buildEndpoint(r)
	if errResponse != nil {
		return errResponse
	}

	req, err := http.NewRequestWithContext(r.Req.Context(), r.Req.Method, endpoint, r.Body)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building the Google request",
		}, http.StatusInternalServerError)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HttpClientFactory(token).Do(req)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Google is currently unreachable",
		}, http.StatusServiceUnavailable)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the Google access token is invalid or expired",
		}, http.StatusUnauthorized)
	case http.StatusForbidden:
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "the Google access token does not grant the required scope",
		}, http.StatusForbidden)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || resp.StatusCode >= 400 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Google rejected the request",
		}, http.StatusBadGateway)
	}

	var data interface{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &data); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Error: "Google sent an unreadable response",
			}, http.StatusBadGateway)
		}
	}

	return helpers.CreateResponse(data, http.StatusOK)
}

func (c *GoogleCalendarController) buildEndpoint(r presentationProtocols.HttpRequest) (string, *presentationProtocols.HttpResponse) {
	kind := r.UrlParams.Get("kind")
	id := r.UrlParams.Get("id")

	switch kind {
	case "", "events":
		calendarId := r.UrlParams.Get("calendarId")
		if calendarId == "" {
			calendarId = "primary"
		}
		endpoint := calendarEventsEndpoint + "/" + url.PathEscape(calendarId) + "/events"
		if id != "" {
			endpoint += "/" + url.PathEscape(id)
		}
		return endpoint, nil
	case "tasks":
		listId := r.UrlParams.Get("listId")
		if listId == "" {
			listId = "@default"
		}
		endpoint := tasksEndpoint + "/" + url.PathEscape(listId) + "/tasks"
		if id != "" {
			endpoint += "/" + url.PathEscape(id)
		}
		return endpoint, nil
	}

	return "", helpers.CreateResponse(&presentationProtocols.ErrorResponse{
		Error: "kind must be events or tasks",
	}, http.StatusBadRequest)
}
