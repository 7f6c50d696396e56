package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskfuse/site-api/internal/usecase"
)

// ContentHandler serves the public read surface of the site content.
type ContentHandler struct {
	Store *usecase.ContentStore
}

func NewContentHandler(store *usecase.ContentStore) *ContentHandler {
	return &ContentHandler{Store: store}
}

func (h *ContentHandler) HandleListIndustries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Industries())
}

func (h *ContentHandler) HandleGetIndustry(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	industry, found := h.Store.IndustryBySlug(slug)
	if !found {
		writeError(w, http.StatusNotFound, "industry not found")
		return
	}

	writeJSON(w, http.StatusOK, industry)
}

func (h *ContentHandler) HandleListFAQs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.FAQs())
}

// HandleGetSettings exposes only the public scalars; the webhook URL stays
// behind the admin surface.
func (h *ContentHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Settings().Public())
}
