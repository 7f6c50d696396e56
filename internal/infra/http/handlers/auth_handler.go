package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/taskfuse/site-api/internal/infra/http/middleware"
	"github.com/taskfuse/site-api/internal/usecase"
)

type AuthHandler struct {
	Gate *usecase.SessionGate
}

func NewAuthHandler(gate *usecase.SessionGate) *AuthHandler {
	return &AuthHandler{Gate: gate}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	token, err := h.Gate.Login(req.Username, req.Password)
	if err != nil {
		middleware.RecordLoginAttempt("failure")
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	middleware.RecordLoginAttempt("success")
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// HandleLogout revokes the presented token. Always succeeds, even with a
// token that was never valid.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	h.Gate.Logout(token)
	w.WriteHeader(http.StatusNoContent)
}
