package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taskfuse/site-api/internal/infra/http/middleware"
	"github.com/taskfuse/site-api/internal/usecase"
)

func authRouter(gate *usecase.SessionGate) *chi.Mux {
	h := NewAuthHandler(gate)
	r := chi.NewRouter()
	r.Post("/api/admin/login", h.HandleLogin)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(gate))
		r.Post("/api/admin/logout", h.HandleLogout)
		r.Get("/api/admin/settings", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	return r
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	gate := usecase.NewSessionGate()
	r := authRouter(gate)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"password120"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.True(t, gate.Authenticated(resp.Token))
}

func TestLoginFailureIs401(t *testing.T) {
	r := authRouter(usecase.NewSessionGate())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/api/admin/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid username or password")
}

func TestGuardedRouteRequiresToken(t *testing.T) {
	r := authRouter(usecase.NewSessionGate())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/settings", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/admin/settings", nil)
	req.Header.Set("Authorization", "Bearer made-up-token")
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	gate := usecase.NewSessionGate()
	r := authRouter(gate)

	token, err := gate.Login("admin", "password120")
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/admin/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, gate.Authenticated(token))

	// The revoked token no longer opens guarded routes.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/admin/settings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
