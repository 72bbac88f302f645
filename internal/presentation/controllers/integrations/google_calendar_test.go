package integrations

import (
	"net/http"
	"net/http/httptest"
	"testing"

	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
)

func makeCalendarRequest(query, token string) presentationProtocols.HttpRequest {
	target := "/integrations/google-calendar"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("X-Google-Token", token)
	}
	return presentationProtocols.HttpRequest{
		Header:    req.Header,
		UrlParams: req.URL.Query(),
		Req:       req,
	}
}

func TestGoogleCalendarRequiresToken(t *testing.T) {
	controller := NewGoogleCalendarController()

	response := controller.Handle(makeCalendarRequest("", ""))

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

func TestGoogleCalendarRejectsUnknownKind(t *testing.T) {
	controller := NewGoogleCalendarController()

	response := controller.Handle(makeCalendarRequest("kind=contacts", "tok"))

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
}

func TestGoogleCalendarEndpointShapes(t *testing.T) {
	controller := NewGoogleCalendarController()

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "default events endpoint",
			query: "",
			want:  "https://www.googleapis.com/calendar/v3/calendars/primary/events",
		},
		{
			name:  "named calendar with id",
			query: "kind=events&calendarId=work&id=ev1",
			want:  "https://www.googleapis.com/calendar/v3/calendars/work/events/ev1",
		},
		{
			name:  "default task list",
			query: "kind=tasks",
			want:  "https://tasks.googleapis.com/tasks/v1/lists/@default/tasks",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint, errResponse := controller.buildEndpoint(makeCalendarRequest(tt.query, "tok"))
			assert.Nil(t, errResponse)
			assert.Equal(t, tt.want, endpoint)
		})
	}
}
