package middlewares

import (
	"encoding/json"
	"net/http"

	"github.com/moneta-app/moneta-backend/internal/presentation/helpers"
)

// writeError keeps middleware rejections on the same JSON envelope the
// controllers use.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(helpers.Envelope{
		Success: false,
		Error:   message,
	})
}
