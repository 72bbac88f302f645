package middlewares

import (
	"fmt"
	"net/http"
	"time"
)

// CacheControl marks responses as publicly cacheable for maxAge. Only
// safe on endpoints whose output does not depend on the caller.
func CacheControl(maxAge time.Duration, next http.Handler) http.Handler {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", value)
		next.ServeHTTP(w, r)
	})
}
