package entity

import (
	"errors"
	"strings"
)

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (f *FAQ) Validate() error {
	if strings.TrimSpace(f.Question) == "" {
		return errors.New("question is required")
	}
	if strings.TrimSpace(f.Answer) == "" {
		return errors.New("answer is required")
	}
	return nil
}
