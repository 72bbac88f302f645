package helpers

import (
	"bytes"
	"encoding/json"
	"io"

	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
)

// Envelope is the uniform response body: every endpoint answers JSON with a
// success flag, never an HTML error page.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func CreateResponse(body interface{}, statusCode int) *presentationProtocols.HttpResponse {
	envelope := Envelope{Success: statusCode < 400}

	switch v := body.(type) {
	case nil:
	case *presentationProtocols.ErrorResponse:
		envelope.Error = v.Error
	default:
		envelope.Data = v
	}

	encoded, err := json.Marshal(envelope)
	if err != nil {
		encoded = []byte(`{"success":false,"error":"an error occurred when encoding the response"}`)
		statusCode = 500
	}

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(bytes.NewReader(encoded)),
		StatusCode: statusCode,
	}
}
