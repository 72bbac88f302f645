package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	presentationProtocols "github.com/moneta-app/moneta-backend/internal/presentation/protocols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readBody(t *testing.T, response *presentationProtocols.HttpResponse) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestCreateResponseData(t *testing.T) {
	response := CreateResponse(map[string]interface{}{"name": "Alice"}, http.StatusOK)

	assert.Equal(t, http.StatusOK, response.StatusCode)
	body := readBody(t, response)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "error")
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Alice", data["name"])
}

func TestCreateResponseError(t *testing.T) {
	response := CreateResponse(&presentationProtocols.ErrorResponse{Error: "nope"}, http.StatusBadRequest)

	assert.Equal(t, http.StatusBadRequest, response.StatusCode)
	body := readBody(t, response)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "nope", body["error"])
	assert.NotContains(t, body, "data")
}

func TestCreateResponseNilBody(t *testing.T) {
	response := CreateResponse(nil, http.StatusOK)

	body := readBody(t, response)
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
	assert.NotContains(t, body, "error")
}

func TestCreateResponseArrayDataSurvives(t *testing.T) {
	response := CreateResponse([]map[string]interface{}{}, http.StatusOK)

	body := readBody(t, response)
	// An empty list still serializes as [], never null.
	raw, _ := json.Marshal(body["data"])
	assert.Equal(t, "[]", string(raw))
}
