package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/taskfuse/site-api/internal/entity"
	"github.com/taskfuse/site-api/internal/infra/database"
	"github.com/taskfuse/site-api/internal/usecase"
)

func newTestStore(t *testing.T) *usecase.ContentStore {
	t.Helper()
	store := usecase.NewContentStore(database.NewMemorySlotStore())
	store.Load(context.Background())
	return store
}

func publicRouter(store *usecase.ContentStore) *chi.Mux {
	h := NewContentHandler(store)
	r := chi.NewRouter()
	r.Get("/api/industries", h.HandleListIndustries)
	r.Get("/api/industries/{slug}", h.HandleGetIndustry)
	r.Get("/api/faqs", h.HandleListFAQs)
	r.Get("/api/settings", h.HandleGetSettings)
	return r
}

func TestListIndustries(t *testing.T) {
	r := publicRouter(newTestStore(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/industries", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var industries []entity.Industry
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &industries))
	assert.Len(t, industries, 2)
	assert.Equal(t, "pharma-distributors", industries[0].Slug)
}

func TestGetIndustryBySlug(t *testing.T) {
	r := publicRouter(newTestStore(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/industries/manufacturing", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var industry entity.Industry
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &industry))
	assert.Equal(t, "Manufacturing", industry.Name)
	assert.Len(t, industry.PricingTiers, 3)
}

func TestGetIndustryUnknownSlugIs404(t *testing.T) {
	r := publicRouter(newTestStore(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/industries/no-such-industry", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestPublicSettingsOmitWebhookURL(t *testing.T) {
	r := publicRouter(newTestStore(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/settings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, entity.DefaultContactEmail, body["contactEmail"])
	assert.NotContains(t, body, "webhookUrl")
}
