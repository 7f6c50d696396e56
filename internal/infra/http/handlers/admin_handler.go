package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskfuse/site-api/internal/infra/http/middleware"
	"github.com/taskfuse/site-api/internal/usecase"
)

// AdminHandler is the content-editing surface. Text-list fields arrive as
// newline-delimited strings, matching the admin panel's textareas; they
// are split and blank-filtered before they reach the store.
type AdminHandler struct {
	Store *usecase.ContentStore
}

func NewAdminHandler(store *usecase.ContentStore) *AdminHandler {
	return &AdminHandler{Store: store}
}

type TierRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Features string `json:"features"` // newline-delimited
}

type IndustryCreateRequest struct {
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	HeroHeadline       string        `json:"heroHeadline"`
	DemoVideoURL       string        `json:"demoVideoUrl"`
	Image              string        `json:"image"`
	PainPoints         string        `json:"painPoints"`         // newline-delimited
	AutomatedWorkflows string        `json:"automatedWorkflows"` // newline-delimited
	PricingTiers       []TierRequest `json:"pricingTiers"`
}

type IndustryUpdateRequest struct {
	Name               *string        `json:"name"`
	Slug               *string        `json:"slug"`
	HeroHeadline       *string        `json:"heroHeadline"`
	DemoVideoURL       *string        `json:"demoVideoUrl"`
	Image              *string        `json:"image"`
	PainPoints         *string        `json:"painPoints"`
	AutomatedWorkflows *string        `json:"automatedWorkflows"`
	PricingTiers       *[]TierRequest `json:"pricingTiers"`
}

func tierInputs(reqs []TierRequest) []usecase.PricingTierInput {
	tiers := make([]usecase.PricingTierInput, 0, len(reqs))
	for _, t := range reqs {
		tiers = append(tiers, usecase.PricingTierInput{
			ID:       t.ID,
			Name:     t.Name,
			Price:    t.Price,
			Features: usecase.SplitTextList(t.Features),
		})
	}
	return tiers
}

func (h *AdminHandler) HandleCreateIndustry(w http.ResponseWriter, r *http.Request) {
	var req IndustryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	industry, err := h.Store.AddIndustry(r.Context(), usecase.IndustryInput{
		Name:               req.Name,
		Slug:               req.Slug,
		HeroHeadline:       req.HeroHeadline,
		DemoVideoURL:       req.DemoVideoURL,
		Image:              req.Image,
		PainPoints:         usecase.SplitTextList(req.PainPoints),
		AutomatedWorkflows: usecase.SplitTextList(req.AutomatedWorkflows),
		PricingTiers:       tierInputs(req.PricingTiers),
	})
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordContentEdit("industries", "add")
	writeJSON(w, http.StatusCreated, industry)
}

func (h *AdminHandler) HandleUpdateIndustry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req IndustryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	patch := usecase.IndustryPatch{
		Name:         req.Name,
		Slug:         req.Slug,
		HeroHeadline: req.HeroHeadline,
		DemoVideoURL: req.DemoVideoURL,
		Image:        req.Image,
	}
	if req.PainPoints != nil {
		points := usecase.SplitTextList(*req.PainPoints)
		patch.PainPoints = &points
	}
	if req.AutomatedWorkflows != nil {
		flows := usecase.SplitTextList(*req.AutomatedWorkflows)
		patch.AutomatedWorkflows = &flows
	}
	if req.PricingTiers != nil {
		tiers := tierInputs(*req.PricingTiers)
		patch.PricingTiers = &tiers
	}

	industry, found, err := h.Store.UpdateIndustry(r.Context(), id, patch)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "industry not found")
		return
	}

	middleware.RecordContentEdit("industries", "update")
	writeJSON(w, http.StatusOK, industry)
}

func (h *AdminHandler) HandleDeleteIndustry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.Store.DeleteIndustry(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "industry not found")
		return
	}

	middleware.RecordContentEdit("industries", "delete")
	w.WriteHeader(http.StatusNoContent)
}

type FAQCreateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (h *AdminHandler) HandleCreateFAQ(w http.ResponseWriter, r *http.Request) {
	var req FAQCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	faq, err := h.Store.AddFAQ(r.Context(), req.Question, req.Answer)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordContentEdit("faqs", "add")
	writeJSON(w, http.StatusCreated, faq)
}

func (h *AdminHandler) HandleUpdateFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch usecase.FAQPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	faq, found, err := h.Store.UpdateFAQ(r.Context(), id, patch)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "faq not found")
		return
	}

	middleware.RecordContentEdit("faqs", "update")
	writeJSON(w, http.StatusOK, faq)
}

func (h *AdminHandler) HandleDeleteFAQ(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.Store.DeleteFAQ(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "faq not found")
		return
	}

	middleware.RecordContentEdit("faqs", "delete")
	w.WriteHeader(http.StatusNoContent)
}

// HandleUpdateSettings accepts any subset of the four scalar slots and
// returns the full admin view, webhook URL included.
func (h *AdminHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch usecase.SettingsPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	settings, err := h.Store.UpdateSettings(r.Context(), patch)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordContentEdit("settings", "update")
	writeJSON(w, http.StatusOK, settings)
}

func (h *AdminHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Settings())
}
