package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/taskfuse/site-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeUsecaseError maps the usecase error taxonomy onto status codes.
func writeUsecaseError(w http.ResponseWriter, err error) {
	if usecase.IsDomainError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
