package entity

// Compiled-in content set used when a slot is absent from storage or its
// stored value cannot be decoded.

const (
	DefaultWebhookURL   = "https://pi.n8x.online/webhook/TaskFuse"
	DefaultContactPhone = "+91 12345 67890"
	DefaultContactEmail = "contact@taskfuse.com"
	DefaultHeroImage    = "https://picsum.photos/seed/hero/1920/1080"
)

func DefaultSettings() SiteSettings {
	return SiteSettings{
		WebhookURL:   DefaultWebhookURL,
		ContactPhone: DefaultContactPhone,
		ContactEmail: DefaultContactEmail,
		HeroImage:    DefaultHeroImage,
	}
}

// DefaultPricingTiers returns a fresh copy every call so one industry's
// edits never bleed into another's.
func DefaultPricingTiers() []PricingTier {
	return []PricingTier{
		{
			ID:    "starter",
			Name:  "Starter",
			Price: "₹25,000",
			Features: []string{
				"1 Core Workflow Automation",
				"WhatsApp or Email Integration",
				"Basic Setup & Training",
				"Monthly Health Check",
			},
		},
		{
			ID:    "pro",
			Name:  "Pro",
			Price: "₹60,000",
			Features: []string{
				"Up to 3 Workflow Automations",
				"WhatsApp, SMS & Email",
				"Custom Integration Support",
				"Bi-weekly Strategy Calls",
			},
		},
		{
			ID:    "enterprise",
			Name:  "Enterprise",
			Price: "Contact Us",
			Features: []string{
				"Unlimited Workflows",
				"Full System Integration",
				"Dedicated Account Manager",
				"24/7 Priority Support",
			},
		},
	}
}

func DefaultIndustries() []Industry {
	return []Industry{
		{
			ID:           "pharma",
			Name:         "Pharmaceutical Distributors",
			Slug:         "pharma-distributors",
			HeroHeadline: "Custom Automation for Pharmaceutical Distributors",
			DemoVideoURL: "https://www.youtube.com/embed/przg3cE55-E",
			PainPoints: []string{
				"Manual order taking from 100s of chemists via WhatsApp.",
				"Errors in data entry leading to wrong dispatches.",
				"Delayed payment reminders and follow-ups.",
				"Lack of real-time stock visibility for sales reps.",
			},
			AutomatedWorkflows: []string{
				"Automated Order Intake via WhatsApp",
				"Real-time Inventory Sync",
				"Automated Payment Reminders",
				"Daily Sales Report Generation",
			},
			Image:        "https://picsum.photos/seed/pharma/600/400",
			PricingTiers: DefaultPricingTiers(),
		},
		{
			ID:           "manufacturing",
			Name:         "Manufacturing",
			Slug:         "manufacturing",
			HeroHeadline: "Custom Automation for Manufacturing Units",
			DemoVideoURL: "https://www.youtube.com/embed/przg3cE55-E",
			PainPoints: []string{
				"Inefficient lead tracking from multiple sources.",
				"Manual follow-up with potential clients.",
				"Complex quotation generation process.",
				"Difficulty in tracking production stages.",
			},
			AutomatedWorkflows: []string{
				"Centralized Lead Management System",
				"Automated Follow-up Sequences",
				"Instant Quotation Generation",
				"Production Status Alerts",
			},
			Image:        "https://picsum.photos/seed/factory/600/400",
			PricingTiers: DefaultPricingTiers(),
		},
	}
}

func DefaultFAQs() []FAQ {
	return []FAQ{
		{
			ID:       "1",
			Question: "What is n8n and why do you use it?",
			Answer:   "n8n is a powerful, open-source workflow automation tool. We use it because it allows for incredible flexibility to build custom solutions that perfectly fit your business needs, unlike off-the-shelf software.",
		},
		{
			ID:       "2",
			Question: "How long does it take to build and deploy an automation?",
			Answer:   "A typical project, from our initial discovery call to full deployment, takes between 2 to 4 weeks. This can vary depending on the complexity of the workflows you need.",
		},
		{
			ID:       "3",
			Question: "Is this a one-time cost or a subscription?",
			Answer:   "We offer both. You can opt for a one-time project fee for the initial build or a monthly support and maintenance plan to ensure your automations are always running smoothly and are updated as your business evolves.",
		},
		{
			ID:       "4",
			Question: "What if I need changes in the future?",
			Answer:   "We are your dedicated partners for the long run. We offer support packages for ongoing tweaks, changes, and building new automations as your business grows and your needs change.",
		},
	}
}
