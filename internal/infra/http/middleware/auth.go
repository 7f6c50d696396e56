package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskfuse/site-api/internal/usecase"
)

// Auth guards admin routes. The token comes from the Authorization header
// and is checked against the in-memory session gate; there is nothing to
// decode because tokens are opaque.
func Auth(gate *usecase.SessionGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

			if !gate.Authenticated(token) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "authentication required",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
