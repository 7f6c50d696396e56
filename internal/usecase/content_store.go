package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/taskfuse/site-api/internal/entity"
	"github.com/taskfuse/site-api/pkg/logger"
)

// Slot names double as the storage keys. Each slot is loaded and saved
// independently; changing one never rewrites another.
const (
	SlotIndustries   = "industries"
	SlotFAQs         = "faqs"
	SlotWebhookURL   = "webhookUrl"
	SlotContactPhone = "contactPhone"
	SlotContactEmail = "contactEmail"
	SlotHeroImage    = "heroImage"
)

// ContentStore owns the canonical site content. It is constructed once at
// startup, loads every slot with defensive defaulting, and persists the
// whole slot on every mutation. The only mutation primitive is a
// whole-collection replace; last write wins and that is accepted.
type ContentStore struct {
	mu      sync.Mutex
	storage SlotStorage

	industries []entity.Industry
	faqs       []entity.FAQ
	settings   entity.SiteSettings

	lastID int64
}

func NewContentStore(storage SlotStorage) *ContentStore {
	return &ContentStore{storage: storage}
}

// Load reads every slot from storage. Absent or undecodable values fall
// back to the compiled-in defaults; nothing here is fatal, so admins can
// always reach a working panel even over a corrupt slot.
func (s *ContentStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var industries []entity.Industry
	if !s.loadSlot(ctx, SlotIndustries, &industries) || industries == nil {
		industries = entity.DefaultIndustries()
	}
	for i := range industries {
		industries[i].Normalize()
	}
	s.industries = industries

	var faqs []entity.FAQ
	if !s.loadSlot(ctx, SlotFAQs, &faqs) || faqs == nil {
		faqs = entity.DefaultFAQs()
	}
	s.faqs = faqs

	s.settings = entity.SiteSettings{
		WebhookURL:   s.loadString(ctx, SlotWebhookURL, entity.DefaultWebhookURL),
		ContactPhone: s.loadString(ctx, SlotContactPhone, entity.DefaultContactPhone),
		ContactEmail: s.loadString(ctx, SlotContactEmail, entity.DefaultContactEmail),
		HeroImage:    s.loadString(ctx, SlotHeroImage, entity.DefaultHeroImage),
	}
}

// loadSlot reports whether v now holds a decoded stored value. Storage
// errors and corrupt payloads are diagnostics only.
func (s *ContentStore) loadSlot(ctx context.Context, name string, v any) bool {
	raw, found, err := s.storage.Load(ctx, name)
	if err != nil {
		logger.Sugar.Warnw("could not read slot, using defaults", "slot", name, "error", err)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		logger.Sugar.Warnw("stored slot is corrupt, using defaults", "slot", name, "error", err)
		return false
	}
	return true
}

func (s *ContentStore) loadString(ctx context.Context, name, fallback string) string {
	var v string
	if !s.loadSlot(ctx, name, &v) {
		return fallback
	}
	return v
}

func (s *ContentStore) saveSlot(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &TechnicalError{Code: "SLOT_ENCODE", Message: fmt.Sprintf("failed to encode %s: %v", name, err)}
	}
	if err := s.storage.Save(ctx, name, raw); err != nil {
		return &TechnicalError{Code: "SLOT_WRITE", Message: fmt.Sprintf("failed to persist %s: %v", name, err)}
	}
	return nil
}

// nextID mirrors the Date.now() ids of the original records, bumped when
// two creations land on the same millisecond. Callers hold s.mu.
func (s *ContentStore) nextID() string {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return strconv.FormatInt(id, 10)
}

// ---- Reads -----------------------------------------------------------

func (s *ContentStore) Industries() []entity.Industry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Industry, len(s.industries))
	for i, ind := range s.industries {
		out[i] = ind.Clone()
	}
	return out
}

// IndustryBySlug returns the first industry with a matching slug. Slug
// uniqueness is not enforced, so first match wins.
func (s *ContentStore) IndustryBySlug(slug string) (entity.Industry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ind := range s.industries {
		if ind.Slug == slug {
			return ind.Clone(), true
		}
	}
	return entity.Industry{}, false
}

func (s *ContentStore) FAQs() []entity.FAQ {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.FAQ{}, s.faqs...)
}

func (s *ContentStore) Settings() entity.SiteSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *ContentStore) WebhookURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.WebhookURL
}

func (s *ContentStore) ContactEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings.ContactEmail
}

// ---- Whole-collection replace ----------------------------------------

func (s *ContentStore) ReplaceIndustries(ctx context.Context, industries []entity.Industry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceIndustries(ctx, industries)
}

func (s *ContentStore) replaceIndustries(ctx context.Context, industries []entity.Industry) error {
	// Copy before normalizing. The store owns its state outright; the
	// caller keeps no alias into it and its records are left untouched.
	next := make([]entity.Industry, len(industries))
	for i, ind := range industries {
		next[i] = ind.Clone()
		next[i].Normalize()
	}
	s.industries = next
	return s.saveSlot(ctx, SlotIndustries, next)
}

func (s *ContentStore) ReplaceFAQs(ctx context.Context, faqs []entity.FAQ) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replaceFAQs(ctx, faqs)
}

func (s *ContentStore) replaceFAQs(ctx context.Context, faqs []entity.FAQ) error {
	next := append([]entity.FAQ{}, faqs...)
	s.faqs = next
	return s.saveSlot(ctx, SlotFAQs, next)
}

// ---- Industry CRUD ----------------------------------------------------

type PricingTierInput struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Features []string `json:"features"`
}

type IndustryInput struct {
	Name               string             `json:"name"`
	Slug               string             `json:"slug"`
	HeroHeadline       string             `json:"heroHeadline"`
	DemoVideoURL       string             `json:"demoVideoUrl"`
	Image              string             `json:"image"`
	PainPoints         []string           `json:"painPoints"`
	AutomatedWorkflows []string           `json:"automatedWorkflows"`
	PricingTiers       []PricingTierInput `json:"pricingTiers"`
}

type IndustryPatch struct {
	Name               *string             `json:"name"`
	Slug               *string             `json:"slug"`
	HeroHeadline       *string             `json:"heroHeadline"`
	DemoVideoURL       *string             `json:"demoVideoUrl"`
	Image              *string             `json:"image"`
	PainPoints         *[]string           `json:"painPoints"`
	AutomatedWorkflows *[]string           `json:"automatedWorkflows"`
	PricingTiers       *[]PricingTierInput `json:"pricingTiers"`
}

// AddIndustry appends a new record with a fresh id and persists the
// collection. Insertion order is display order.
func (s *ContentStore) AddIndustry(ctx context.Context, input IndustryInput) (entity.Industry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ind := entity.Industry{
		ID:                 s.nextID(),
		Name:               strings.TrimSpace(input.Name),
		Slug:               strings.TrimSpace(input.Slug),
		HeroHeadline:       input.HeroHeadline,
		DemoVideoURL:       input.DemoVideoURL,
		Image:              input.Image,
		PainPoints:         CleanList(input.PainPoints),
		AutomatedWorkflows: CleanList(input.AutomatedWorkflows),
		PricingTiers:       s.buildTiers(input.PricingTiers),
	}
	if err := ind.Validate(); err != nil {
		return entity.Industry{}, &DomainError{Code: "INVALID_INDUSTRY", Message: err.Error()}
	}

	next := append(append([]entity.Industry{}, s.industries...), ind)
	if err := s.replaceIndustries(ctx, next); err != nil {
		return entity.Industry{}, err
	}
	return ind.Clone(), nil
}

// UpdateIndustry merges the supplied changes into the record with the
// given id, keeping its position. An unknown id is a no-op (found=false).
func (s *ContentStore) UpdateIndustry(ctx context.Context, id string, patch IndustryPatch) (entity.Industry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := -1
	for i, ind := range s.industries {
		if ind.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return entity.Industry{}, false, nil
	}

	ind := s.industries[pos].Clone()
	if patch.Name != nil {
		ind.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Slug != nil {
		ind.Slug = strings.TrimSpace(*patch.Slug)
	}
	if patch.HeroHeadline != nil {
		ind.HeroHeadline = *patch.HeroHeadline
	}
	if patch.DemoVideoURL != nil {
		ind.DemoVideoURL = *patch.DemoVideoURL
	}
	if patch.Image != nil {
		ind.Image = *patch.Image
	}
	if patch.PainPoints != nil {
		ind.PainPoints = CleanList(*patch.PainPoints)
	}
	if patch.AutomatedWorkflows != nil {
		ind.AutomatedWorkflows = CleanList(*patch.AutomatedWorkflows)
	}
	if patch.PricingTiers != nil {
		ind.PricingTiers = s.buildTiers(*patch.PricingTiers)
	}
	if err := ind.Validate(); err != nil {
		return entity.Industry{}, true, &DomainError{Code: "INVALID_INDUSTRY", Message: err.Error()}
	}

	next := append([]entity.Industry{}, s.industries...)
	next[pos] = ind
	if err := s.replaceIndustries(ctx, next); err != nil {
		return entity.Industry{}, true, err
	}
	return ind.Clone(), true, nil
}

// DeleteIndustry removes the record with the given id. An unknown id is a
// no-op and does not touch storage.
func (s *ContentStore) DeleteIndustry(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.Industry, 0, len(s.industries))
	for _, ind := range s.industries {
		if ind.ID != id {
			next = append(next, ind)
		}
	}
	if len(next) == len(s.industries) {
		return false, nil
	}
	return true, s.replaceIndustries(ctx, next)
}

// buildTiers assigns fresh ids to tiers created in this request and drops
// blank feature lines. Callers hold s.mu.
func (s *ContentStore) buildTiers(inputs []PricingTierInput) []entity.PricingTier {
	tiers := make([]entity.PricingTier, 0, len(inputs))
	for _, in := range inputs {
		id := in.ID
		if id == "" {
			id = s.nextID()
		}
		tiers = append(tiers, entity.PricingTier{
			ID:       id,
			Name:     in.Name,
			Price:    in.Price,
			Features: CleanList(in.Features),
		})
	}
	return tiers
}

// ---- FAQ CRUD ---------------------------------------------------------

type FAQPatch struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

func (s *ContentStore) AddFAQ(ctx context.Context, question, answer string) (entity.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faq := entity.FAQ{
		ID:       s.nextID(),
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}
	if err := faq.Validate(); err != nil {
		return entity.FAQ{}, &DomainError{Code: "INVALID_FAQ", Message: err.Error()}
	}

	next := append(append([]entity.FAQ{}, s.faqs...), faq)
	if err := s.replaceFAQs(ctx, next); err != nil {
		return entity.FAQ{}, err
	}
	return faq, nil
}

func (s *ContentStore) UpdateFAQ(ctx context.Context, id string, patch FAQPatch) (entity.FAQ, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := -1
	for i, f := range s.faqs {
		if f.ID == id {
			pos = i
			break
		}
	}
	if pos == -1 {
		return entity.FAQ{}, false, nil
	}

	faq := s.faqs[pos]
	if patch.Question != nil {
		faq.Question = strings.TrimSpace(*patch.Question)
	}
	if patch.Answer != nil {
		faq.Answer = strings.TrimSpace(*patch.Answer)
	}
	if err := faq.Validate(); err != nil {
		return entity.FAQ{}, true, &DomainError{Code: "INVALID_FAQ", Message: err.Error()}
	}

	next := append([]entity.FAQ{}, s.faqs...)
	next[pos] = faq
	if err := s.replaceFAQs(ctx, next); err != nil {
		return entity.FAQ{}, true, err
	}
	return faq, true, nil
}

func (s *ContentStore) DeleteFAQ(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]entity.FAQ, 0, len(s.faqs))
	for _, f := range s.faqs {
		if f.ID != id {
			next = append(next, f)
		}
	}
	if len(next) == len(s.faqs) {
		return false, nil
	}
	return true, s.replaceFAQs(ctx, next)
}

// ---- Settings ---------------------------------------------------------

type SettingsPatch struct {
	WebhookURL   *string `json:"webhookUrl"`
	ContactPhone *string `json:"contactPhone"`
	ContactEmail *string `json:"contactEmail"`
	HeroImage    *string `json:"heroImage"`
}

// UpdateSettings writes each supplied scalar to its own slot. A failed
// write stops the pass and reports which slot failed; earlier slots stay
// written.
func (s *ContentStore) UpdateSettings(ctx context.Context, patch SettingsPatch) (entity.SiteSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.WebhookURL != nil {
		s.settings.WebhookURL = strings.TrimSpace(*patch.WebhookURL)
		if err := s.saveSlot(ctx, SlotWebhookURL, s.settings.WebhookURL); err != nil {
			return s.settings, err
		}
	}
	if patch.ContactPhone != nil {
		s.settings.ContactPhone = strings.TrimSpace(*patch.ContactPhone)
		if err := s.saveSlot(ctx, SlotContactPhone, s.settings.ContactPhone); err != nil {
			return s.settings, err
		}
	}
	if patch.ContactEmail != nil {
		s.settings.ContactEmail = strings.TrimSpace(*patch.ContactEmail)
		if err := s.saveSlot(ctx, SlotContactEmail, s.settings.ContactEmail); err != nil {
			return s.settings, err
		}
	}
	if patch.HeroImage != nil {
		s.settings.HeroImage = *patch.HeroImage
		if err := s.saveSlot(ctx, SlotHeroImage, s.settings.HeroImage); err != nil {
			return s.settings, err
		}
	}
	return s.settings, nil
}
