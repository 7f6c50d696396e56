package entity

import (
	"errors"
	"strings"
)

// PricingTier is owned by exactly one Industry; tiers are never shared.
type PricingTier struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"` // free-form display text ("Contact Us" is valid)
	Features []string `json:"features"`
}

type Industry struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Slug               string        `json:"slug"`
	HeroHeadline       string        `json:"heroHeadline"`
	DemoVideoURL       string        `json:"demoVideoUrl"`
	PainPoints         []string      `json:"painPoints"`
	AutomatedWorkflows []string      `json:"automatedWorkflows"`
	Image              string        `json:"image"` // URL or base64 data URI, treated as opaque
	PricingTiers       []PricingTier `json:"pricingTiers"`
}

// Normalize backfills fields that older persisted records may be missing.
// Records written before pricing tiers existed carry no pricingTiers key at
// all; decoding those leaves the slice nil. Running Normalize on an already
// normalized record changes nothing.
func (i *Industry) Normalize() {
	if i.PricingTiers == nil {
		i.PricingTiers = []PricingTier{}
	}
	if i.PainPoints == nil {
		i.PainPoints = []string{}
	}
	if i.AutomatedWorkflows == nil {
		i.AutomatedWorkflows = []string{}
	}
	for t := range i.PricingTiers {
		if i.PricingTiers[t].Features == nil {
			i.PricingTiers[t].Features = []string{}
		}
	}
}

func (i *Industry) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(i.Slug) == "" {
		return errors.New("slug is required")
	}
	return nil
}

// Clone returns a deep copy so callers can hand records out for rendering
// without exposing the canonical slices to mutation. Empty slices stay
// non-nil so normalized records keep encoding lists as [] rather than null.
func (i Industry) Clone() Industry {
	out := i
	out.PainPoints = cloneStrings(i.PainPoints)
	out.AutomatedWorkflows = cloneStrings(i.AutomatedWorkflows)
	if i.PricingTiers != nil {
		out.PricingTiers = make([]PricingTier, len(i.PricingTiers))
		for t, tier := range i.PricingTiers {
			tier.Features = cloneStrings(tier.Features)
			out.PricingTiers[t] = tier
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
