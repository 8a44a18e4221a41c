package domain

import (
	"context"
	"time"
)

// Profile holds the basic-info section of a master profile
type Profile struct {
	UserID    string    `json:"user_id" validate:"required"`
	FullName  string    `json:"full_name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"omitempty,email"`
	Phone     string    `json:"phone" validate:"max=30"`
	Location  string    `json:"location" validate:"max=100"`
	Headline  string    `json:"headline" validate:"max=150"`
	Summary   string    `json:"summary" validate:"max=2000"`
	PhotoURL  string    `json:"photo_url" validate:"omitempty,url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WorkExperience struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	CompanyName string  `json:"company_name"`
	JobTitle    string  `json:"job_title"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     *string `json:"end_date"`   // nil = current position
	Description string  `json:"description"`
}

type Project struct {
	ID          int64  `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type Reference struct {
	ID           int64  `json:"id"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Company      string `json:"company"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// MatricSubject is one subject/mark pair on a matric certificate
type MatricSubject struct {
	Subject string `json:"subject"`
	Mark    string `json:"mark"`
}

// MatricRecord holds the school-leaving (matric) results section
type MatricRecord struct {
	UserID         string          `json:"user_id"`
	School         string          `json:"school"`
	CompletionYear int             `json:"completion_year"`
	Subjects       []MatricSubject `json:"subjects"`
}

// MasterProfile is the full, authoritative profile aggregate: everything
// the CV tailoring flow and the public profile page read. Skills,
// languages and credentials are already canonicalized here.
type MasterProfile struct {
	Profile        Profile          `json:"profile"`
	Experiences    []WorkExperience `json:"experiences"`
	Projects       []Project        `json:"projects"`
	Skills         []Skill          `json:"skills"`
	Languages      []Language       `json:"languages"`
	References     []Reference      `json:"references"`
	Matric         *MatricRecord    `json:"matric,omitempty"`
	Education      []Credential     `json:"education"`
	Certifications []Credential     `json:"certifications"`
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	Upsert(ctx context.Context, profile *Profile) error

	ListExperiences(ctx context.Context, userID string) ([]WorkExperience, error)
	AddExperience(ctx context.Context, exp *WorkExperience) error
	UpdateExperience(ctx context.Context, exp *WorkExperience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error

	ListProjects(ctx context.Context, userID string) ([]Project, error)
	AddProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, userID string, id int64) error

	ListReferences(ctx context.Context, userID string) ([]Reference, error)
	AddReference(ctx context.Context, ref *Reference) error
	DeleteReference(ctx context.Context, userID string, id int64) error

	GetMatric(ctx context.Context, userID string) (*MatricRecord, error)
	UpsertMatric(ctx context.Context, record *MatricRecord) error
}

type ProfileUsecase interface {
	GetMasterProfile(ctx context.Context, userID string) (*MasterProfile, error)
	UpdateBasicInfo(ctx context.Context, profile *Profile) error

	AddExperience(ctx context.Context, exp *WorkExperience) error
	UpdateExperience(ctx context.Context, exp *WorkExperience) error
	DeleteExperience(ctx context.Context, userID string, id int64) error

	AddProject(ctx context.Context, project *Project) error
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, userID string, id int64) error

	AddReference(ctx context.Context, ref *Reference) error
	DeleteReference(ctx context.Context, userID string, id int64) error

	UpsertMatric(ctx context.Context, record *MatricRecord) error

	AddSkill(ctx context.Context, userID string, skill Skill) error
	UpdateSkill(ctx context.Context, userID string, skill Skill) error
	DeleteSkill(ctx context.Context, userID string, id int64, name string) error

	AddLanguage(ctx context.Context, userID string, lang Language) error
	DeleteLanguage(ctx context.Context, userID string, id int64, language string) error

	// SaveMasterCVText stores the raw pasted "master CV" blob in its own slot
	SaveMasterCVText(ctx context.Context, userID, text string) error
}
