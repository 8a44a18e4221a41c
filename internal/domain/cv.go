package domain

import (
	"context"
	"encoding/json"
	"time"
)

// CV template selectors accepted by the PDF renderer
const (
	TemplateModern     = "modern"
	TemplateMinimalist = "minimalist"
	TemplateExecutive  = "executive"
)

// ValidTemplate reports whether t is a known template selector
func ValidTemplate(t string) bool {
	switch t {
	case TemplateModern, TemplateMinimalist, TemplateExecutive:
		return true
	}
	return false
}

// GeneratedCV is one tailored CV derived from the master profile
type GeneratedCV struct {
	ID          int64           `json:"id"`
	UserID      string          `json:"user_id"`
	Title       string          `json:"title"`
	Template    string          `json:"template"`
	JobURL      string          `json:"job_url,omitempty"`
	JobText     string          `json:"job_text,omitempty"`
	ATSScore    float64         `json:"ats_score"`
	ATSFeedback []string        `json:"ats_feedback,omitempty"`
	Content     json.RawMessage `json:"content"`
	PDFURL      string          `json:"pdf_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TailorRequest describes one CV tailoring run. Exactly one of JobURL or
// JobText should be set; when both are present the pasted text wins.
type TailorRequest struct {
	UserID   string `json:"-"`
	Title    string `json:"title" validate:"required,min=1,max=150"`
	Template string `json:"template" validate:"required"`
	JobURL   string `json:"job_url" validate:"omitempty,url"`
	JobText  string `json:"job_text"`
}

type CVRepository interface {
	Create(ctx context.Context, cv *GeneratedCV) error
	ListByUser(ctx context.Context, userID string) ([]GeneratedCV, error)
	GetByID(ctx context.Context, userID string, id int64) (*GeneratedCV, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type CVUsecase interface {
	Tailor(ctx context.Context, req TailorRequest) (*GeneratedCV, error)
	List(ctx context.Context, userID string) ([]GeneratedCV, error)
	Get(ctx context.Context, userID string, id int64) (*GeneratedCV, error)
	Delete(ctx context.Context, userID string, id int64) error
	// Import saves pasted master CV text and returns the parsed profile
	Import(ctx context.Context, userID, rawText string) (json.RawMessage, error)
	// Revamp returns AI improvement suggestions for the master profile
	Revamp(ctx context.Context, userID string) (json.RawMessage, error)
}
