package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Interview is the persisted record of one generated session. UserID always
// comes from the verified token subject, never from the request body.
type Interview struct {
	InterviewID string    `json:"interview_id" db:"interview_id"`
	Role        string    `json:"role" db:"role"`
	Type        string    `json:"type" db:"type"`
	Level       string    `json:"level" db:"level"`
	Techstack   []string  `json:"techstack" db:"techstack"`
	Questions   []string  `json:"questions" db:"questions"`
	UserID      string    `json:"user_id" db:"user_id"`
	Finalized   bool      `json:"finalized" db:"finalized"`
	CoverImage  string    `json:"cover_image" db:"cover_image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Amount accepts either a JSON number or a numeric string; clients send both.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Amount(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n.String())
		return nil
	}
	return fmt.Errorf("amount must be a number or numeric string")
}

func (a Amount) String() string { return string(a) }

// GenerateInterviewReq is the body of the generation endpoint. A userId
// field, if a client sends one, is deliberately not bound here.
type GenerateInterviewReq struct {
	Type      string `json:"type"`
	Role      string `json:"role"`
	Level     string `json:"level"`
	Techstack string `json:"techstack"`
	Amount    Amount `json:"amount"`
}

// MissingFieldError names the first required field absent from a request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Validate checks required fields in body order and reports the first one
// that is missing or falsy. An amount of 0 counts as missing.
func (r *GenerateInterviewReq) Validate() error {
	checks := []struct {
		name  string
		empty bool
	}{
		{"type", r.Type == ""},
		{"role", r.Role == ""},
		{"level", r.Level == ""},
		{"techstack", r.Techstack == ""},
		{"amount", r.Amount == "" || r.Amount == "0"},
	}
	for _, c := range checks {
		if c.empty {
			return &MissingFieldError{Field: c.name}
		}
	}
	return nil
}

// SplitTechstack turns a comma-separated stack string into an ordered slice,
// trimming each element and dropping empties.
func SplitTechstack(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
