package entity

// SiteSettings groups the scalar content slots. Each field is persisted
// independently; the struct exists so consumers get them in one read.
type SiteSettings struct {
	WebhookURL   string `json:"webhookUrl"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	HeroImage    string `json:"heroImage"`
}

// PublicSettings is the subset safe to expose on the public API. The
// webhook URL stays admin-only.
type PublicSettings struct {
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	HeroImage    string `json:"heroImage"`
}

func (s SiteSettings) Public() PublicSettings {
	return PublicSettings{
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		HeroImage:    s.HeroImage,
	}
}
