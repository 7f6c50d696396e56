package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ContactInput struct {
	FullName     string `json:"fullName"`
	BusinessName string `json:"businessName"`
	Industry     string `json:"industry"`
	Phone        string `json:"phone"`
	Help         string `json:"help"`
}

func ValidateContactInput(input ContactInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.FullName) == "" {
		errors = append(errors, ValidationError{"fullName", "is required"})
	} else if len(input.FullName) > 200 {
		errors = append(errors, ValidationError{"fullName", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.BusinessName) == "" {
		errors = append(errors, ValidationError{"businessName", "is required"})
	}

	if strings.TrimSpace(input.Industry) == "" {
		errors = append(errors, ValidationError{"industry", "is required"})
	}

	if strings.TrimSpace(input.Phone) == "" {
		errors = append(errors, ValidationError{"phone", "is required"})
	} else if !isValidPhoneNumber(input.Phone) {
		errors = append(errors, ValidationError{"phone", "must be a valid phone number"})
	}

	if strings.TrimSpace(input.Help) == "" {
		errors = append(errors, ValidationError{"help", "is required"})
	}

	return errors
}

func isValidPhoneNumber(phone string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(phone, "")
	return len(cleaned) >= 8 && len(cleaned) <= 15
}
