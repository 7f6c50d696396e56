package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is one contact-form request accepted for delivery.
type ContactSubmission struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	BusinessName string    `json:"businessName"`
	Industry     string    `json:"industry"`
	Phone        string    `json:"phone"`
	Help         string    `json:"help"`
	ReceivedAt   time.Time `json:"received_at"`
}

func NewContactSubmission(fullName, businessName, industry, phone, help string) *ContactSubmission {
	return &ContactSubmission{
		ID:           uuid.New().String(),
		FullName:     fullName,
		BusinessName: businessName,
		Industry:     industry,
		Phone:        phone,
		Help:         help,
		ReceivedAt:   time.Now(),
	}
}
