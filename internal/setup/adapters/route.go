package adapters

import (
	"io"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

// AdaptRoute bridges a presentation controller to net/http. Responses are
// JSON unless the controller sets its own content type.
func AdaptRoute(controller protocols.Controller) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := controller.Handle(protocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		})

		contentType := response.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(response.StatusCode)

		if response.Body != nil {
			defer response.Body.Close()
			io.Copy(w, response.Body)
		}
	})
}
